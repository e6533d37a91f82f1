package absence

import (
	"mime/multipart"
	"time"

	"github.com/pontohr/backend-go/internal/pkg/validator"
)

// ========================================
// ABSENCE DTOs
// ========================================

type CreateAbsenceRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason"`

	// Optional supporting document
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.FileHeader != nil && r.FileHeader.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "document",
			Message: "supporting document size must not exceed 10MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the requested absence date. Validate must pass first.
func (r *CreateAbsenceRequest) ParsedDate() time.Time {
	t, _ := validator.IsValidDate(r.Date)
	return t
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		return ErrInvalidStatus
	}
	return nil
}

type AbsenceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Reason       string  `json:"reason"`
	DocumentURL  *string `json:"document_url,omitempty"`
	Status       string  `json:"status"`
}

func ToResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		Reason:       a.Reason,
		DocumentURL:  a.DocumentURL,
		Status:       string(a.Status),
	}
}
