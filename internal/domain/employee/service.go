package employee

import "context"

// Service defines the employee directory operations
type Service interface {
	RegisterCompany(ctx context.Context, req RegisterCompanyRequest) error
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}
