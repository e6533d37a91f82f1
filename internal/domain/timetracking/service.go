package timetracking

import "context"

// Service defines the time tracking operations
type Service interface {
	Punch(ctx context.Context, req CreatePunchRequest) (PunchResponse, error)
	List(ctx context.Context, req ListPunchRequest) ([]PunchResponse, error)
}
