package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pontohr/backend-go/internal/domain/report"
	"github.com/pontohr/backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	MonthlyPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func monthlyRequestFromQuery(r *http.Request) (report.MonthlyReportRequest, error) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return report.MonthlyReportRequest{}, report.ErrInvalidPeriod
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return report.MonthlyReportRequest{}, report.ErrInvalidPeriod
	}
	return report.MonthlyReportRequest{Month: month, Year: year}, nil
}

// Monthly implements ReportHandler. It returns the report model as JSON.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyRequestFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	model, err := h.reportService.GenerateMonthlyReport(r.Context(), req)
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, model)
}

// MonthlyPDF implements ReportHandler. It renders the same model as a PDF
// download.
func (h *ReportHandlerImpl) MonthlyPDF(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyRequestFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	model, err := h.reportService.GenerateMonthlyReport(r.Context(), req)
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	pdfBytes, err := h.reportService.RenderPDF(model)
	if err != nil {
		slog.Error("Monthly report render error", "error", err)
		response.InternalServerError(w, "Failed to render report PDF")
		return
	}

	filename := fmt.Sprintf("attendance-report-%04d-%02d.pdf", model.PeriodYear, model.PeriodMonth)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		slog.Error("Failed to write report PDF", "error", err)
	}
}
