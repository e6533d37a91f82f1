package company

import "context"

// Repository defines the data access contract for companies
type Repository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
}
