package employee

import (
	"context"
	"fmt"

	"github.com/pontohr/backend-go/internal/domain/company"
	"github.com/pontohr/backend-go/internal/domain/employee"
	"github.com/pontohr/backend-go/internal/pkg/authctx"
	"github.com/pontohr/backend-go/internal/pkg/database"
	"github.com/pontohr/backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.Repository
	companyRepo  company.Repository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.Repository, companyRepo company.Repository) employee.Service {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// RegisterCompany implements employee.Service. The company and its first
// admin account are created atomically; a half-registered company must never
// be observable.
func (s *EmployeeServiceImpl) RegisterCompany(ctx context.Context, req employee.RegisterCompanyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.ErrEmailExists
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		comp := company.Company{Name: req.CompanyName}
		if req.CompanyAddress != "" {
			comp.Address = &req.CompanyAddress
		}
		if req.CompanyTaxID != "" {
			comp.TaxID = &req.CompanyTaxID
		}

		created, err := s.companyRepo.Create(txCtx, comp)
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		admin := employee.Employee{
			CompanyID:    created.ID,
			FullName:     req.AdminName,
			Email:        req.Email,
			PasswordHash: passwordHash,
			Role:         employee.RoleAdmin,
		}
		if _, err := s.employeeRepo.Create(txCtx, admin); err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}

		return nil
	})
}

// Register implements employee.Service. Only management can add employees,
// and only an admin may grant the hr or admin role.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	act, err := authctx.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !act.Role.IsManagement() {
		return employee.EmployeeResponse{}, employee.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	role := employee.Role(req.Role)
	if req.Role == "" {
		role = employee.RoleEmployee
	}
	if role != employee.RoleEmployee && act.Role != employee.RoleAdmin {
		return employee.EmployeeResponse{}, employee.ErrHRCreationDenied
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID:    act.CompanyID,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Position:     req.Position,
		Department:   req.Department,
		Role:         role,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// List implements employee.Service. Management sees the whole company;
// everyone else sees only themselves.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	act, err := authctx.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !act.Role.IsManagement() {
		emp, err := s.employeeRepo.GetByID(ctx, act.EmployeeID, act.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to get employee: %w", err)
		}
		return []employee.EmployeeResponse{employee.ToResponse(emp)}, nil
	}

	employees, err := s.employeeRepo.ListByCompany(ctx, act.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Delete implements employee.Service. Self-deletion is rejected, and admin
// accounts can only be removed by another admin.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	act, err := authctx.FromContext(ctx)
	if err != nil {
		return err
	}

	if !act.Role.IsManagement() {
		return employee.ErrUnauthorized
	}

	if employeeID == act.EmployeeID {
		return employee.ErrCannotDeleteSelf
	}

	target, err := s.employeeRepo.GetByID(ctx, employeeID, act.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if target.Role == employee.RoleAdmin && act.Role != employee.RoleAdmin {
		return employee.ErrCannotDeleteAdmin
	}

	if err := s.employeeRepo.Delete(ctx, employeeID, act.CompanyID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
