package absence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pontohr/backend-go/internal/domain/absence"
	"github.com/pontohr/backend-go/internal/domain/employee"
	"github.com/pontohr/backend-go/internal/pkg/authctx"
	"github.com/pontohr/backend-go/internal/pkg/email"
	"github.com/pontohr/backend-go/internal/service/file"
)

type AbsenceServiceImpl struct {
	absenceRepo  absence.Repository
	employeeRepo employee.Repository
	fileService  file.FileService
	emailService email.EmailService
}

func NewAbsenceService(
	absenceRepo absence.Repository,
	employeeRepo employee.Repository,
	fileService file.FileService,
	emailService email.EmailService,
) absence.Service {
	return &AbsenceServiceImpl{
		absenceRepo:  absenceRepo,
		employeeRepo: employeeRepo,
		fileService:  fileService,
		emailService: emailService,
	}
}

// Create implements absence.Service. A justification is always filed by the
// acting employee and starts out pending.
func (s *AbsenceServiceImpl) Create(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	act, err := authctx.FromContext(ctx)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	record := absence.Absence{
		EmployeeID: act.EmployeeID,
		CompanyID:  act.CompanyID,
		Date:       req.ParsedDate(),
		Reason:     req.Reason,
		Status:     absence.StatusPending,
	}

	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadAbsenceDocument(ctx, act.EmployeeID, req.File, req.FileHeader.Filename)
		if err != nil {
			return absence.AbsenceResponse{}, err
		}
		url, err := s.fileService.GetFileURL(ctx, path)
		if err != nil {
			return absence.AbsenceResponse{}, fmt.Errorf("failed to resolve document URL: %w", err)
		}
		record.DocumentURL = &url
	}

	created, err := s.absenceRepo.Create(ctx, record)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return absence.ToResponse(created), nil
}

// List implements absence.Service. Management sees every justification in
// the company; employees only their own.
func (s *AbsenceServiceImpl) List(ctx context.Context) ([]absence.AbsenceResponse, error) {
	act, err := authctx.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var records []absence.Absence
	if act.Role.IsManagement() {
		records, err = s.absenceRepo.ListForCompany(ctx, act.CompanyID)
	} else {
		records, err = s.absenceRepo.ListForEmployee(ctx, act.EmployeeID, act.CompanyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	responses := make([]absence.AbsenceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, absence.ToResponse(r))
	}
	return responses, nil
}

// UpdateStatus implements absence.Service. Only management decides, and the
// employee is notified of the outcome by email.
func (s *AbsenceServiceImpl) UpdateStatus(ctx context.Context, id string, req absence.UpdateStatusRequest) (absence.AbsenceResponse, error) {
	act, err := authctx.FromContext(ctx)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	if !act.Role.IsManagement() {
		return absence.AbsenceResponse{}, employee.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	// Scope check before the write; UpdateStatus itself is keyed by id only.
	existing, err := s.absenceRepo.GetByID(ctx, id, act.CompanyID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	updated, err := s.absenceRepo.UpdateStatus(ctx, existing.ID, absence.Status(req.Status))
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to update absence status: %w", err)
	}
	updated.EmployeeName = existing.EmployeeName

	s.notifyDecision(ctx, updated)

	return absence.ToResponse(updated), nil
}

// notifyDecision emails the employee about the decision. Delivery problems
// are logged, never surfaced; the status change already happened.
func (s *AbsenceServiceImpl) notifyDecision(ctx context.Context, a absence.Absence) {
	emp, err := s.employeeRepo.GetByID(ctx, a.EmployeeID, a.CompanyID)
	if err != nil {
		slog.Error("failed to load employee for absence decision email", "absence_id", a.ID, "error", err)
		return
	}

	if err := s.emailService.SendAbsenceDecision(emp.Email, emp.FullName, a.Date.Format("2006-01-02"), string(a.Status), a.Reason); err != nil {
		slog.Error("failed to send absence decision email", "absence_id", a.ID, "error", err)
	}
}
