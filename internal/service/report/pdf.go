package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"
	"github.com/pontohr/backend-go/internal/domain/report"
)

// RenderPDF renders the report model as a PDF document. The formatter only
// lays out figures already present in the model; it never recomputes them.
func (s *ReportServiceImpl) RenderPDF(model report.ReportModel) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "TIME AND ATTENDANCE REPORT", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Company: %s    Period: %02d/%d", model.CompanyName, model.PeriodMonth, model.PeriodYear), "", 1, "L", false, 0, "")
	if model.CompanyAddress != "" || model.CompanyTaxID != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Address: %s    Tax ID: %s", model.CompanyAddress, model.CompanyTaxID), "", 1, "L", false, 0, "")
	}
	pdf.Line(10, pdf.GetY()+1, 200, pdf.GetY()+1)
	pdf.Ln(4)

	for _, emp := range model.Employees {
		s.renderEmployee(pdf, emp)
	}

	if model.Company != nil {
		s.renderCompanySummary(pdf, *model.Company)
	}

	if len(model.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(0, 7, "Warnings", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, w := range model.Warnings {
			pdf.CellFormat(0, 5, w, "", 1, "L", false, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "I CONFIRM THE ATTENDANCE ABOVE", "", 1, "L", false, 0, "")
	pdf.Ln(8)
	pdf.CellFormat(95, 6, "Manager", "T", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Employee", "T", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 10, fmt.Sprintf("Generated: %s", model.GeneratedAt), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ReportServiceImpl) renderEmployee(pdf *gofpdf.Fpdf, emp report.EmployeeMonthlyReport) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Employee: %s    Position: %s    Department: %s", emp.EmployeeName, emp.Position, emp.Department), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, day := range emp.Days {
		pdf.CellFormat(0, 5, fmt.Sprintf("Day: %s", day.Date), "", 1, "L", false, 0, "")
		for i, punch := range day.Punches {
			label := "Clock out:"
			if i%2 == 0 {
				label = "Clock in:"
			}
			pdf.CellFormat(0, 5, fmt.Sprintf("    %s %s", label, punch.Timestamp.Format("15:04:05")), "", 1, "L", false, 0, "")
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("    Day total: %.2fh", day.TotalHours), "", 1, "L", false, 0, "")
		if day.OvertimeHours > 0 {
			pdf.CellFormat(0, 5, fmt.Sprintf("    Overtime: %.2fh", day.OvertimeHours), "", 1, "L", false, 0, "")
		}
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total hours: %.2fh    Total overtime: %.2fh", emp.TotalHours, emp.TotalOvertime), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf(
		"Initial balance: %s    Overtime bank: %s    Monthly credits: %s    Monthly debits: %s",
		emp.Balance.InitialBalance, emp.Balance.OvertimeBalance, emp.Balance.MonthlyCredits, emp.Balance.MonthlyDebits,
	), "", 1, "L", false, 0, "")

	pdf.Line(10, pdf.GetY()+1, 200, pdf.GetY()+1)
	pdf.Ln(3)
}

func (s *ReportServiceImpl) renderCompanySummary(pdf *gofpdf.Fpdf, c report.CompanyMonthlyReport) {
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Company summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf(
		"Employees: %d    Total hours: %.2fh    Total overtime: %.2fh    Absences: %d",
		c.TotalEmployees, c.TotalHours, c.TotalOvertime, c.AbsenceCount,
	), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(60, 6, "Department", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Employees", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, "Hours", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, "Overtime", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Absences", "B", 1, "R", false, 0, "")

	names := make([]string, 0, len(c.Departments))
	for name := range c.Departments {
		names = append(names, name)
	}
	sort.Strings(names)

	pdf.SetFont("Arial", "", 9)
	for _, name := range names {
		stats := c.Departments[name]
		pdf.CellFormat(60, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", stats.EmployeeCount), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", stats.TotalHours), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", stats.TotalOvertime), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", stats.Absences), "", 1, "R", false, 0, "")
	}
}
