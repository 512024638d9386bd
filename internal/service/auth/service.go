package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/jwt"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/validator"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService. The credential pair is the employee's
// email and CNP; only active employees can log in.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	cnp := strings.TrimSpace(req.CNP)

	var errs validator.ValidationErrors
	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}
	if validator.IsEmpty(cnp) {
		errs = append(errs, validator.ValidationError{Field: "cnp", Message: "cnp is required"})
	}
	if len(errs) > 0 {
		return auth.LoginResponse{}, errs
	}

	emp, err := a.employeeRepo.GetByEmailAndCNP(ctx, email, cnp)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up credentials: %w", err)
	}

	token, expiresIn, err := a.jwtService.GenerateAccessToken(emp)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		EmpID:       emp.EmpID,
		Role:        string(emp.Role),
		ExpiresIn:   expiresIn,
		Name:        emp.FullName(),
	}, nil
}
