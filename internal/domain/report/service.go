package report

import "context"

// Service defines the report generation contract. Admin/hr actors receive a
// company-wide report; employee actors receive only their own data.
type Service interface {
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (ReportModel, error)
	RenderPDF(model ReportModel) ([]byte, error)
}
