package report

import "time"

// Punch is one clock event as it appears inside a report day.
type Punch struct {
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkDay is derived per (employee, calendar date). It is never persisted;
// it only exists during a single report computation.
type WorkDay struct {
	Date          string  `json:"date"` // YYYY-MM-DD in the report timezone
	Punches       []Punch `json:"punches"`
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// MonthlyBalance carries the hour-bank figures for one employee and period,
// each rendered as signed zero-padded HH:MM.
type MonthlyBalance struct {
	InitialBalance  string `json:"initial_balance"`
	OvertimeBalance string `json:"overtime_balance"`
	MonthlyCredits  string `json:"monthly_credits"`
	MonthlyDebits   string `json:"monthly_debits"`
}

type EmployeeMonthlyReport struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Position     string `json:"position"`
	Department   string `json:"department"`

	Days          []WorkDay      `json:"days"`
	TotalHours    float64        `json:"total_hours"`
	TotalOvertime float64        `json:"total_overtime"`
	Warnings      []string       `json:"warnings"`
	Balance       MonthlyBalance `json:"balance"`
}

type DepartmentStats struct {
	EmployeeCount int     `json:"employee_count"`
	TotalHours    float64 `json:"total_hours"`
	TotalOvertime float64 `json:"total_overtime"`
	Absences      int     `json:"absences"`
}

type CompanyMonthlyReport struct {
	TotalEmployees int     `json:"total_employees"`
	TotalHours     float64 `json:"total_hours"`
	TotalOvertime  float64 `json:"total_overtime"`
	AbsenceCount   int     `json:"absence_count"`

	Departments map[string]DepartmentStats `json:"departments"`
}

// ReportModel is the contract handed to the report formatter. The formatter
// must not alter any computed figure.
type ReportModel struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address,omitempty"`
	CompanyTaxID   string `json:"company_tax_id,omitempty"`

	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees []EmployeeMonthlyReport `json:"employees"`
	Company   *CompanyMonthlyReport   `json:"company,omitempty"`

	// Concatenated across employees: incomplete-entry warnings first,
	// excessive-hours warnings second. The order is an observable output.
	Warnings []string `json:"warnings"`
}
