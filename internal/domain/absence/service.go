package absence

import "context"

// Service defines the absence justification operations
type Service interface {
	Create(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)
	List(ctx context.Context) ([]AbsenceResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (AbsenceResponse, error)
}
