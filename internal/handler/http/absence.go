package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pontohr/backend-go/internal/domain/absence"
	"github.com/pontohr/backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.Service
}

func NewAbsenceHandler(absenceService absence.Service) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

const maxAbsenceFormSize = 12 << 20 // fields plus a 10MB document

// Create implements AbsenceHandler. The request is either plain JSON or a
// multipart form carrying an optional supporting document.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxAbsenceFormSize); err != nil {
			slog.Error("Create absence multipart parse error", "error", err)
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}

		req.Date = r.FormValue("date")
		req.Reason = r.FormValue("reason")

		file, header, err := r.FormFile("document")
		switch {
		case err == nil:
			defer file.Close()
			req.File = file
			req.FileHeader = header
		case errors.Is(err, http.ErrMissingFile):
			// Document is optional.
		default:
			slog.Error("Create absence document read error", "error", err)
			response.BadRequest(w, "Invalid document upload", nil)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Create absence decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	created, err := h.absenceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence justification filed successfully", created)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	absences, err := h.absenceService.List(r.Context())
	if err != nil {
		slog.Error("List absences service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, absences)
}

// UpdateStatus implements AbsenceHandler.
func (h *AbsenceHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Absence id is required", nil)
		return
	}

	var req absence.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.absenceService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence status updated successfully", updated)
}
