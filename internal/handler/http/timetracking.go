package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pontohr/backend-go/internal/domain/timetracking"
	"github.com/pontohr/backend-go/internal/handler/http/response"
)

type TimeTrackingHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type TimeTrackingHandlerImpl struct {
	timeTrackingService timetracking.Service
}

func NewTimeTrackingHandler(timeTrackingService timetracking.Service) TimeTrackingHandler {
	return &TimeTrackingHandlerImpl{timeTrackingService: timeTrackingService}
}

// Punch implements TimeTrackingHandler.
func (h *TimeTrackingHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req timetracking.CreatePunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.timeTrackingService.Punch(r.Context(), req)
	if err != nil {
		slog.Error("Punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", created)
}

// List implements TimeTrackingHandler. Month, year and employee_id come from
// query parameters; month and year default to the current month.
func (h *TimeTrackingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := timetracking.ListPunchRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		month, err := strconv.Atoi(monthParam)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		req.Month = month
	}

	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		req.Year = year
	}

	punches, err := h.timeTrackingService.List(r.Context(), req)
	if err != nil {
		slog.Error("List punches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, punches)
}
