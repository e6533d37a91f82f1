package absence

import "time"

type Absence struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	Date        time.Time
	Reason      string
	DocumentURL *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for listings
	EmployeeName *string
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)
