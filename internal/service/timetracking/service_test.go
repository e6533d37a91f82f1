package timetracking

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontohr/backend-go/internal/domain/employee"
	"github.com/pontohr/backend-go/internal/domain/timetracking"
	"github.com/pontohr/backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepo struct {
	events []timetracking.PunchEvent

	lastEmployeeID string
	lastCompanyID  string
	lastFrom       time.Time
	lastTo         time.Time
	companyCalls   int
}

func (f *fakePunchRepo) Create(ctx context.Context, p timetracking.PunchEvent) (timetracking.PunchEvent, error) {
	p.ID = "punch-1"
	f.events = append(f.events, p)
	return p, nil
}

func (f *fakePunchRepo) ListForEmployee(ctx context.Context, employeeID, companyID string, from, to time.Time) ([]timetracking.PunchEvent, error) {
	f.lastEmployeeID = employeeID
	f.lastCompanyID = companyID
	f.lastFrom = from
	f.lastTo = to
	return f.events, nil
}

func (f *fakePunchRepo) ListForCompany(ctx context.Context, companyID string, from, to time.Time) ([]timetracking.PunchEvent, error) {
	f.companyCalls++
	f.lastCompanyID = companyID
	f.lastFrom = from
	f.lastTo = to
	return f.events, nil
}

func contextWithClaims(t *testing.T, employeeID, companyID string, role employee.Role) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"company_id":  companyID,
		"role":        string(role),
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestPunch_RecordsActingEmployee(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewTimeTrackingService(repo, time.UTC)
	ctx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	resp, err := svc.Punch(ctx, timetracking.CreatePunchRequest{
		Kind:      "in",
		Timestamp: "2024-03-04T09:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "in", resp.Kind)
	require.Len(t, repo.events, 1)
	assert.Equal(t, "co-1", repo.events[0].CompanyID)
	assert.Equal(t, "2024-03-04T09:00:00Z", repo.events[0].Timestamp.Format(time.RFC3339))
}

func TestPunch_DefaultsToNow(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewTimeTrackingService(repo, time.UTC)
	ctx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	before := time.Now()
	resp, err := svc.Punch(ctx, timetracking.CreatePunchRequest{Kind: "out"})
	require.NoError(t, err)

	assert.False(t, resp.Timestamp.Before(before))
	assert.False(t, resp.Timestamp.After(time.Now()))
}

func TestPunch_InvalidKind(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewTimeTrackingService(repo, time.UTC)
	ctx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	_, err := svc.Punch(ctx, timetracking.CreatePunchRequest{Kind: "lunch"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Empty(t, repo.events)
}

func TestList_EmployeeScopedToSelf(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewTimeTrackingService(repo, time.UTC)
	ctx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	// employee_id in the request is ignored for the employee role
	_, err := svc.List(ctx, timetracking.ListPunchRequest{Month: 3, Year: 2024, EmployeeID: "emp-2"})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", repo.lastEmployeeID)
	assert.Equal(t, "co-1", repo.lastCompanyID)
	assert.Equal(t, "2024-03-01T00:00:00Z", repo.lastFrom.Format(time.RFC3339))
	assert.Equal(t, "2024-03-31T23:59:59Z", repo.lastTo.Format(time.RFC3339))
}

func TestList_ManagementCompanyWide(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewTimeTrackingService(repo, time.UTC)
	ctx := contextWithClaims(t, "hr-1", "co-1", employee.RoleHR)

	_, err := svc.List(ctx, timetracking.ListPunchRequest{Month: 3, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.companyCalls)
}

func TestList_ManagementTargetsEmployee(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewTimeTrackingService(repo, time.UTC)
	ctx := contextWithClaims(t, "hr-1", "co-1", employee.RoleHR)

	_, err := svc.List(ctx, timetracking.ListPunchRequest{Month: 3, Year: 2024, EmployeeID: "emp-2"})
	require.NoError(t, err)
	assert.Equal(t, "emp-2", repo.lastEmployeeID)
	assert.Equal(t, 0, repo.companyCalls)
}

func TestList_InvalidPeriod(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewTimeTrackingService(repo, time.UTC)
	ctx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	_, err := svc.List(ctx, timetracking.ListPunchRequest{Month: 13, Year: 2024})
	assert.Error(t, err)
}
