package timetracking

import "time"

// PunchEvent is an immutable clock-in/clock-out fact. Events are never
// mutated after creation; ordering by timestamp is significant.
type PunchEvent struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Kind       Kind
	Timestamp  time.Time
	CreatedAt  time.Time

	// Joined for listings
	EmployeeName *string
}

type Kind string

const (
	KindIn  Kind = "in"
	KindOut Kind = "out"
)

func IsValidKind(k string) bool {
	return Kind(k) == KindIn || Kind(k) == KindOut
}
