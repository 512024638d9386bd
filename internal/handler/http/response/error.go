package response

import (
	"errors"
	"net/http"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
	"github.com/slipsalary/payroll-backend-go/internal/domain/payroll"
	"github.com/slipsalary/payroll-backend-go/internal/domain/payslip"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is an
// internal error with the underlying message carried as detail.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrMissingBearerToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUserNotFound):
		Unauthorized(w, err.Error())

	case errors.Is(err, auth.ErrManagerRoleRequired),
		errors.Is(err, auth.ErrManagerDataMismatch):
		Forbidden(w, err.Error())

	// Report artifact lookups
	case errors.Is(err, payroll.ErrNoReportFound):
		NotFound(w, "No aggregated CSV found for manager")
	case errors.Is(err, payslip.ErrNoPayslipsFound):
		NotFound(w, "No PDF files found for manager_id")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, err.Error())

	// Default
	default:
		InternalError(w, err.Error())
	}
}
