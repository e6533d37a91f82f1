package report

// MonthlyReportRequest identifies the report period. The actor's role and
// identity come from the JWT claims, not from the request body.
type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	if r.Month < 1 || r.Month > 12 {
		return ErrInvalidPeriod
	}
	if r.Year < 1 {
		return ErrInvalidPeriod
	}
	return nil
}
