package authctx

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontohr/backend-go/internal/domain/employee"
)

// Actor is the authenticated employee behind a request, extracted from the
// verified JWT claims.
type Actor struct {
	EmployeeID string
	CompanyID  string
	Role       employee.Role
}

// FromContext extracts the acting employee from JWT claims.
func FromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Actor{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return Actor{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Actor{}, fmt.Errorf("role claim is missing or invalid")
	}

	return Actor{EmployeeID: employeeID, CompanyID: companyID, Role: employee.Role(role)}, nil
}
