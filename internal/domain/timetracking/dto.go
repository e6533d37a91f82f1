package timetracking

import (
	"time"

	"github.com/pontohr/backend-go/internal/pkg/validator"
)

// ========================================
// TIME TRACKING DTOs
// ========================================

type CreatePunchRequest struct {
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"` // RFC3339, defaults to now when empty
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidKind(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be 'in' or 'out'",
		})
	}

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedTimestamp returns the requested timestamp, or now when absent.
func (r *CreatePunchRequest) ParsedTimestamp() time.Time {
	if r.Timestamp == "" {
		return time.Now()
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t
}

type ListPunchRequest struct {
	Month      int
	Year       int
	EmployeeID string // management only; ignored for employee role
}

type PunchResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Kind         string    `json:"kind"`
	Timestamp    time.Time `json:"timestamp"`
}

func ToResponse(p PunchEvent) PunchResponse {
	return PunchResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Kind:         string(p.Kind),
		Timestamp:    p.Timestamp,
	}
}
