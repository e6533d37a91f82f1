package company

import "time"

type Company struct {
	ID        string
	Name      string
	Address   *string
	TaxID     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
