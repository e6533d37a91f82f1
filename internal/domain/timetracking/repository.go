package timetracking

import (
	"context"
	"time"
)

// Repository defines the data access contract for punch events.
// List results are always ordered ascending by timestamp; the
// aggregation engine depends on that ordering.
type Repository interface {
	Create(ctx context.Context, p PunchEvent) (PunchEvent, error)
	ListForEmployee(ctx context.Context, employeeID, companyID string, from, to time.Time) ([]PunchEvent, error)
	ListForCompany(ctx context.Context, companyID string, from, to time.Time) ([]PunchEvent, error)
}
