package auth

import (
	"context"
	"testing"

	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
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

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func newTestAuthService(t *testing.T, password string) auth.AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{employees: []employee.Employee{{
		ID:           "emp-1",
		Name:         "Aysel Aliyeva",
		Email:        "aysel@example.com",
		PasswordHash: string(hash),
		RoleID:       2,
	}}}
	return NewAuthService(repo, jwt.NewJWTService(testSecret, testAccessExp))
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	response, err := svc.Login(ctx, auth.LoginRequest{Email: "aysel@example.com", Password: "password123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Greater(t, response.AccessTokenExpiresIn, int64(0))
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "aysel@example.com", Password: "wrongpassword"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})

	// Unknown email and bad password are indistinguishable to the caller.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_MalformedRequest(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: ""})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}
