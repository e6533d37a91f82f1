package auth

import (
	"context"
	"testing"

	"github.com/pontohr/backend-go/internal/domain/auth"
	"github.com/pontohr/backend-go/internal/domain/employee"
	"github.com/pontohr/backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeEmployeeRepo) ListByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

func newAuthFixture(t *testing.T) (auth.Service, *fakeEmployeeRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			ID:           "emp-1",
			CompanyID:    "co-1",
			FullName:     "Alice",
			Email:        "alice@example.com",
			PasswordHash: string(hash),
			Position:     "Analyst",
			Department:   "Engineering",
			Role:         employee.RoleEmployee,
		},
	}}

	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(repo, jwtSvc), repo
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "employee", resp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginWithGoogleEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.LoginWithGoogleEmail(context.Background(), "alice@example.com", true)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestLoginWithGoogleEmail_Unverified(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.LoginWithGoogleEmail(context.Background(), "alice@example.com", false)
	assert.ErrorIs(t, err, auth.ErrEmailNotVerified)
}

func TestLoginWithGoogleEmail_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.LoginWithGoogleEmail(context.Background(), "nobody@example.com", true)
	assert.ErrorIs(t, err, auth.ErrEmployeeNotFound)
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	first, err := svc.Login(ctx, auth.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "emp-1", refreshed.EmployeeID)

	// The presented refresh token was revoked by the rotation.
	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.RefreshToken))

	_, err = svc.Refresh(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}
