package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
	"github.com/slipsalary/payroll-backend-go/internal/handler/http/response"
)

// RequireManager verifies the authenticated employee against the store on
// every call: it must still be active and hold the MANAGER role. An optional
// manager_id query or body parameter must equal the authenticated id. The
// resolved identity is attached to the request context for the handlers.
func RequireManager(employeeRepo employee.EmployeeRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			sub, _ := claims["sub"].(string)
			empID, err := strconv.Atoi(sub)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			emp, err := employeeRepo.GetActiveByID(r.Context(), empID)
			if err != nil {
				response.HandleError(w, auth.ErrUserNotFound)
				return
			}
			if emp.Role != employee.RoleManager {
				response.HandleError(w, auth.ErrManagerRoleRequired)
				return
			}

			param, ok := managerIDParam(r)
			if ok && param != emp.EmpID {
				response.HandleError(w, auth.ErrManagerDataMismatch)
				return
			}

			ctx := auth.WithIdentity(r.Context(), auth.Identity{
				EmpID:     emp.EmpID,
				FirstName: emp.FirstName,
				LastName:  emp.LastName,
				Email:     emp.Email,
				Role:      emp.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// managerIDParam reads an optional manager_id from the query string or a
// JSON body. The body is restored so the handler can still read it.
func managerIDParam(r *http.Request) (int, bool) {
	if v := r.URL.Query().Get("manager_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return id, true
	}

	if r.Body == nil {
		return 0, false
	}
	body, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return 0, false
	}

	var payload struct {
		ManagerID *json.Number `json:"manager_id"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.ManagerID == nil {
		return 0, false
	}
	id, err := strconv.Atoi(payload.ManagerID.String())
	if err != nil {
		return 0, false
	}
	return id, true
}
