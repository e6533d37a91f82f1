package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	CompanyID    string
	FullName     string
	Email        string
	PasswordHash string
	Position     string
	Department   string
	Role         Role
	BaseSalary   *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// IsManagement reports whether the role may see company-wide data.
func (r Role) IsManagement() bool {
	return r == RoleAdmin || r == RoleHR
}

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}
