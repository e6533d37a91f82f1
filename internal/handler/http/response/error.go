package response

import (
	"errors"
	"net/http"

	"github.com/pontohr/backend-go/internal/domain/absence"
	"github.com/pontohr/backend-go/internal/domain/auth"
	"github.com/pontohr/backend-go/internal/domain/company"
	"github.com/pontohr/backend-go/internal/domain/employee"
	"github.com/pontohr/backend-go/internal/domain/report"
	"github.com/pontohr/backend-go/internal/domain/timetracking"
	"github.com/pontohr/backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrEmployeeNotFound):
		NotFound(w, "No employee registered with this email")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrHRCreationDenied):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrCannotDeleteAdmin):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Insufficient permissions")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Time tracking domain errors
	case errors.Is(err, timetracking.ErrInvalidKind):
		BadRequest(w, err.Error(), nil)

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, absence.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrUpstreamFetch):
		BadGateway(w, "Failed to fetch report source data")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
