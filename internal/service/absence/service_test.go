package absence

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontohr/backend-go/internal/domain/absence"
	"github.com/pontohr/backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAbsenceRepo struct {
	records map[string]absence.Absence
	nextID  int
}

func newFakeAbsenceRepo() *fakeAbsenceRepo {
	return &fakeAbsenceRepo{records: make(map[string]absence.Absence)}
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	f.nextID++
	a.ID = "abs-" + string(rune('0'+f.nextID))
	f.records[a.ID] = a
	return a, nil
}

func (f *fakeAbsenceRepo) GetByID(ctx context.Context, id string, companyID string) (absence.Absence, error) {
	a, ok := f.records[id]
	if !ok || a.CompanyID != companyID {
		return absence.Absence{}, absence.ErrAbsenceNotFound
	}
	return a, nil
}

func (f *fakeAbsenceRepo) ListForEmployee(ctx context.Context, employeeID, companyID string) ([]absence.Absence, error) {
	var out []absence.Absence
	for _, a := range f.records {
		if a.EmployeeID == employeeID && a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAbsenceRepo) ListForCompany(ctx context.Context, companyID string) ([]absence.Absence, error) {
	var out []absence.Absence
	for _, a := range f.records {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAbsenceRepo) ListForCompanyInPeriod(ctx context.Context, companyID string, from, to time.Time) ([]absence.Absence, error) {
	return f.ListForCompany(ctx, companyID)
}

func (f *fakeAbsenceRepo) UpdateStatus(ctx context.Context, id string, status absence.Status) (absence.Absence, error) {
	a, ok := f.records[id]
	if !ok {
		return absence.Absence{}, absence.ErrAbsenceNotFound
	}
	a.Status = status
	f.records[id] = a
	return a, nil
}

type fakeEmployeeRepo struct{}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	return employee.Employee{
		ID:        id,
		CompanyID: companyID,
		FullName:  "Alice",
		Email:     "alice@example.com",
	}, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) ListByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

type fakeFileService struct {
	uploads int
}

func (f *fakeFileService) UploadAbsenceDocument(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	f.uploads++
	return "absences/" + employeeID + "/doc.pdf", nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	return nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, path string) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

type sentEmail struct {
	To     string
	Status string
}

type fakeEmailService struct {
	sent []sentEmail
}

func (f *fakeEmailService) SendAbsenceDecision(to, employeeName, date, status, reason string) error {
	f.sent = append(f.sent, sentEmail{To: to, Status: status})
	return nil
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

func newAbsenceFixture(t *testing.T) (absence.Service, *fakeAbsenceRepo, *fakeEmailService) {
	t.Helper()
	repo := newFakeAbsenceRepo()
	emailSvc := &fakeEmailService{}
	svc := NewAbsenceService(repo, &fakeEmployeeRepo{}, &fakeFileService{}, emailSvc)
	return svc, repo, emailSvc
}

func TestCreate_StartsPending(t *testing.T) {
	svc, _, _ := newAbsenceFixture(t)
	ctx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	resp, err := svc.Create(ctx, absence.CreateAbsenceRequest{
		Date:   "2024-03-05",
		Reason: "medical appointment",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2024-03-05", resp.Date)
	assert.Equal(t, string(absence.StatusPending), resp.Status)
	assert.Nil(t, resp.DocumentURL)
}

func TestCreate_InvalidDate(t *testing.T) {
	svc, repo, _ := newAbsenceFixture(t)
	ctx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	_, err := svc.Create(ctx, absence.CreateAbsenceRequest{
		Date:   "05/03/2024",
		Reason: "medical appointment",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.records)
}

func TestUpdateStatus_SendsDecisionEmail(t *testing.T) {
	svc, repo, emailSvc := newAbsenceFixture(t)
	employeeCtx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	created, err := svc.Create(employeeCtx, absence.CreateAbsenceRequest{
		Date:   "2024-03-05",
		Reason: "medical appointment",
	})
	require.NoError(t, err)

	hrCtx := contextWithClaims(t, "hr-1", "co-1", employee.RoleHR)
	updated, err := svc.UpdateStatus(hrCtx, created.ID, absence.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)

	assert.Equal(t, "approved", updated.Status)
	assert.Equal(t, absence.StatusApproved, repo.records[created.ID].Status)

	require.Len(t, emailSvc.sent, 1)
	assert.Equal(t, "alice@example.com", emailSvc.sent[0].To)
	assert.Equal(t, "approved", emailSvc.sent[0].Status)
}

func TestUpdateStatus_EmployeeRoleForbidden(t *testing.T) {
	svc, _, emailSvc := newAbsenceFixture(t)
	ctx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	created, err := svc.Create(ctx, absence.CreateAbsenceRequest{
		Date:   "2024-03-05",
		Reason: "medical appointment",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, absence.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, employee.ErrUnauthorized)
	assert.Empty(t, emailSvc.sent)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newAbsenceFixture(t)
	ctx := contextWithClaims(t, "hr-1", "co-1", employee.RoleHR)

	_, err := svc.UpdateStatus(ctx, "abs-1", absence.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, absence.ErrInvalidStatus)
}

func TestUpdateStatus_OtherCompanyNotFound(t *testing.T) {
	svc, _, _ := newAbsenceFixture(t)
	employeeCtx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)

	created, err := svc.Create(employeeCtx, absence.CreateAbsenceRequest{
		Date:   "2024-03-05",
		Reason: "medical appointment",
	})
	require.NoError(t, err)

	otherCtx := contextWithClaims(t, "hr-9", "co-9", employee.RoleHR)
	_, err = svc.UpdateStatus(otherCtx, created.ID, absence.UpdateStatusRequest{Status: "rejected"})
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}

func TestList_EmployeeScopedToSelf(t *testing.T) {
	svc, repo, _ := newAbsenceFixture(t)
	repo.records["abs-x"] = absence.Absence{ID: "abs-x", EmployeeID: "emp-2", CompanyID: "co-1", Status: absence.StatusPending}
	repo.records["abs-y"] = absence.Absence{ID: "abs-y", EmployeeID: "emp-1", CompanyID: "co-1", Status: absence.StatusPending}

	ctx := contextWithClaims(t, "emp-1", "co-1", employee.RoleEmployee)
	absences, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, absences, 1)
	assert.Equal(t, "abs-y", absences[0].ID)
}
