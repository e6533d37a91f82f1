package absence

import (
	"context"
	"time"
)

// Repository defines the data access contract for absences
type Repository interface {
	Create(ctx context.Context, a Absence) (Absence, error)
	GetByID(ctx context.Context, id string, companyID string) (Absence, error)
	ListForEmployee(ctx context.Context, employeeID, companyID string) ([]Absence, error)
	ListForCompany(ctx context.Context, companyID string) ([]Absence, error)
	ListForCompanyInPeriod(ctx context.Context, companyID string, from, to time.Time) ([]Absence, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Absence, error)
}
