package timetracking

import (
	"context"
	"fmt"
	"time"

	"github.com/pontohr/backend-go/internal/domain/timetracking"
	"github.com/pontohr/backend-go/internal/pkg/authctx"
	"github.com/pontohr/backend-go/internal/pkg/validator"
)

type TimeTrackingServiceImpl struct {
	punchRepo timetracking.Repository
	location  *time.Location
}

func NewTimeTrackingService(punchRepo timetracking.Repository, location *time.Location) timetracking.Service {
	if location == nil {
		location = time.Local
	}
	return &TimeTrackingServiceImpl{
		punchRepo: punchRepo,
		location:  location,
	}
}

// Punch implements timetracking.Service. Punches are always recorded for the
// acting employee; nobody clocks in on someone else's behalf.
func (s *TimeTrackingServiceImpl) Punch(ctx context.Context, req timetracking.CreatePunchRequest) (timetracking.PunchResponse, error) {
	act, err := authctx.FromContext(ctx)
	if err != nil {
		return timetracking.PunchResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return timetracking.PunchResponse{}, err
	}

	created, err := s.punchRepo.Create(ctx, timetracking.PunchEvent{
		EmployeeID: act.EmployeeID,
		CompanyID:  act.CompanyID,
		Kind:       timetracking.Kind(req.Kind),
		Timestamp:  req.ParsedTimestamp(),
	})
	if err != nil {
		return timetracking.PunchResponse{}, fmt.Errorf("failed to create punch event: %w", err)
	}

	return timetracking.ToResponse(created), nil
}

// List implements timetracking.Service. Month and year select the period;
// when both are zero the current month is used. Management may list another
// employee's punches or the whole company; an employee only sees their own.
func (s *TimeTrackingServiceImpl) List(ctx context.Context, req timetracking.ListPunchRequest) ([]timetracking.PunchResponse, error) {
	act, err := authctx.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	month, year := req.Month, req.Year
	if month == 0 && year == 0 {
		now := time.Now().In(s.location)
		month, year = int(now.Month()), now.Year()
	}
	if month < 1 || month > 12 || year < 1 {
		return nil, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be between 1 and 12 and year must be a valid year",
		}}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 1, 0).Add(-time.Second)

	var events []timetracking.PunchEvent
	switch {
	case !act.Role.IsManagement():
		events, err = s.punchRepo.ListForEmployee(ctx, act.EmployeeID, act.CompanyID, from, to)
	case req.EmployeeID != "":
		events, err = s.punchRepo.ListForEmployee(ctx, req.EmployeeID, act.CompanyID, from, to)
	default:
		events, err = s.punchRepo.ListForCompany(ctx, act.CompanyID, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}

	responses := make([]timetracking.PunchResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, timetracking.ToResponse(e))
	}
	return responses, nil
}
