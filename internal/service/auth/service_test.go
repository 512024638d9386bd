package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/jwt"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/validator"
)

type stubEmployeeRepo struct {
	emp      employee.Employee
	err      error
	gotEmail string
	gotCNP   string
}

func (s *stubEmployeeRepo) GetActiveByID(context.Context, int) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetActiveManager(context.Context, int) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrManagerNotFound
}

func (s *stubEmployeeRepo) GetByEmailAndCNP(_ context.Context, email, cnp string) (employee.Employee, error) {
	s.gotEmail = email
	s.gotCNP = cnp
	return s.emp, s.err
}

func (s *stubEmployeeRepo) ListDirectReports(context.Context, int) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) FindDirectReportByName(context.Context, int, string, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) BonusTotals(context.Context, time.Time) (map[int]decimal.Decimal, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) VacationDaysTaken(context.Context, time.Time, time.Time) (map[int]int, error) {
	return nil, nil
}

func TestLogin(t *testing.T) {
	repo := &stubEmployeeRepo{
		emp: employee.Employee{
			EmpID:     3,
			FirstName: "Radu",
			LastName:  "Manager",
			Email:     "radu.manager@example.com",
			Role:      employee.RoleManager,
		},
	}
	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", 120))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email: "  Radu.Manager@Example.com ",
		CNP:   " 1800101123456 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "radu.manager@example.com", repo.gotEmail)
	assert.Equal(t, "1800101123456", repo.gotCNP)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, 3, resp.EmpID)
	assert.Equal(t, "MANAGER", resp.Role)
	assert.Equal(t, int64(120*60), resp.ExpiresIn)
	assert.Equal(t, "Radu Manager", resp.Name)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewAuthService(&stubEmployeeRepo{}, jwt.NewJWTService("test-secret", 120))

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := &stubEmployeeRepo{err: employee.ErrEmployeeNotFound}
	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", 120))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email: "nobody@example.com",
		CNP:   "1800101123456",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_RepositoryError(t *testing.T) {
	repo := &stubEmployeeRepo{err: errors.New("connection refused")}
	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", 120))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email: "radu.manager@example.com",
		CNP:   "1800101123456",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
