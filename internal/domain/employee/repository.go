package employee

import "context"

// Repository defines the data access contract for employees
type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByCompany(ctx context.Context, companyID string) ([]Employee, error)
	Delete(ctx context.Context, id string, companyID string) error
}
