package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pontohr/backend-go/internal/domain/absence"
	"github.com/pontohr/backend-go/internal/domain/company"
	"github.com/pontohr/backend-go/internal/domain/employee"
	"github.com/pontohr/backend-go/internal/domain/report"
	"github.com/pontohr/backend-go/internal/domain/timetracking"
	"github.com/pontohr/backend-go/internal/pkg/authctx"
)

type ReportServiceImpl struct {
	companyRepo  company.Repository
	employeeRepo employee.Repository
	punchRepo    timetracking.Repository
	absenceRepo  absence.Repository
	location     *time.Location
}

func NewReportService(
	companyRepo company.Repository,
	employeeRepo employee.Repository,
	punchRepo timetracking.Repository,
	absenceRepo absence.Repository,
	location *time.Location,
) report.Service {
	if location == nil {
		location = time.Local
	}
	return &ReportServiceImpl{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		absenceRepo:  absenceRepo,
		location:     location,
	}
}

// GenerateMonthlyReport builds the report model for the requested period.
// The period is validated before anything is fetched; an empty period is not
// an error and produces a report with zero totals and no warnings.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.ReportModel, error) {
	if err := req.Validate(); err != nil {
		return report.ReportModel{}, err
	}

	act, err := authctx.FromContext(ctx)
	if err != nil {
		return report.ReportModel{}, err
	}

	from, to := periodBounds(req.Month, req.Year, s.location)

	comp, err := s.companyRepo.GetByID(ctx, act.CompanyID)
	if err != nil {
		return report.ReportModel{}, fmt.Errorf("%w: company: %v", report.ErrUpstreamFetch, err)
	}

	model := report.ReportModel{
		CompanyName: comp.Name,
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: from.Format("2006-01-02"),
		PeriodEnd:   to.Format("2006-01-02"),
		GeneratedAt: time.Now().In(s.location).Format(time.RFC3339),
	}
	if comp.Address != nil {
		model.CompanyAddress = *comp.Address
	}
	if comp.TaxID != nil {
		model.CompanyTaxID = *comp.TaxID
	}

	if act.Role.IsManagement() {
		if err := s.buildCompanyWide(ctx, act.CompanyID, from, to, &model); err != nil {
			return report.ReportModel{}, err
		}
	} else {
		if err := s.buildSingleEmployee(ctx, act, from, to, &model); err != nil {
			return report.ReportModel{}, err
		}
	}

	return model, nil
}

func (s *ReportServiceImpl) buildSingleEmployee(ctx context.Context, act authctx.Actor, from, to time.Time, model *report.ReportModel) error {
	emp, err := s.employeeRepo.GetByID(ctx, act.EmployeeID, act.CompanyID)
	if err != nil {
		return fmt.Errorf("%w: employee: %v", report.ErrUpstreamFetch, err)
	}

	events, err := s.punchRepo.ListForEmployee(ctx, act.EmployeeID, act.CompanyID, from, to)
	if err != nil {
		return fmt.Errorf("%w: punch events: %v", report.ErrUpstreamFetch, err)
	}

	agg := aggregateMonth(emp.ID, emp.FullName, emp.Position, emp.Department, events, s.location)

	model.Employees = []report.EmployeeMonthlyReport{agg.Report}
	model.Warnings = agg.Report.Warnings
	return nil
}

func (s *ReportServiceImpl) buildCompanyWide(ctx context.Context, companyID string, from, to time.Time, model *report.ReportModel) error {
	employees, err := s.employeeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("%w: employees: %v", report.ErrUpstreamFetch, err)
	}

	events, err := s.punchRepo.ListForCompany(ctx, companyID, from, to)
	if err != nil {
		return fmt.Errorf("%w: punch events: %v", report.ErrUpstreamFetch, err)
	}

	absences, err := s.absenceRepo.ListForCompanyInPeriod(ctx, companyID, from, to)
	if err != nil {
		return fmt.Errorf("%w: absences: %v", report.ErrUpstreamFetch, err)
	}

	// Partition the company's events per employee; per-employee ascending
	// order is preserved because the source is globally ordered.
	byEmployee := make(map[string][]timetracking.PunchEvent)
	for _, e := range events {
		byEmployee[e.EmployeeID] = append(byEmployee[e.EmployeeID], e)
	}

	companyReport := report.CompanyMonthlyReport{
		TotalEmployees: len(employees),
		AbsenceCount:   len(absences),
		Departments:    make(map[string]report.DepartmentStats),
	}

	departmentOf := make(map[string]string, len(employees))

	var incomplete, excessive []string
	for _, emp := range employees {
		departmentOf[emp.ID] = emp.Department

		agg := aggregateMonth(emp.ID, emp.FullName, emp.Position, emp.Department, byEmployee[emp.ID], s.location)
		model.Employees = append(model.Employees, agg.Report)
		incomplete = append(incomplete, agg.IncompleteWarnings...)
		excessive = append(excessive, agg.ExcessiveWarnings...)

		companyReport.TotalHours += agg.Report.TotalHours
		companyReport.TotalOvertime += agg.Report.TotalOvertime

		stats := companyReport.Departments[emp.Department]
		stats.EmployeeCount++
		stats.TotalHours += agg.Report.TotalHours
		stats.TotalOvertime += agg.Report.TotalOvertime
		companyReport.Departments[emp.Department] = stats
	}

	// Absences are counted per company for the headline figure; the
	// department breakdown attributes each record through its employee.
	for _, a := range absences {
		if dept, ok := departmentOf[a.EmployeeID]; ok {
			stats := companyReport.Departments[dept]
			stats.Absences++
			companyReport.Departments[dept] = stats
		}
	}

	model.Company = &companyReport
	model.Warnings = append(incomplete, excessive...)
	return nil
}
