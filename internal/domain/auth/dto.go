package auth

import (
	"context"

	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
)

type LoginRequest struct {
	Email string `json:"email"`
	CNP   string `json:"cnp"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	EmpID       int    `json:"emp_id"`
	Role        string `json:"role"`
	ExpiresIn   int64  `json:"expires_in"`
	Name        string `json:"name"`
}

// Identity is the authenticated manager resolved by the middleware. It is
// threaded explicitly through the services instead of living in a global.
type Identity struct {
	EmpID     int
	FirstName string
	LastName  string
	Email     string
	Role      employee.Role
}

func (i Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}

type identityContextKey struct{}

// WithIdentity stores the authenticated identity on the request context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext retrieves the identity set by the manager guard.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}
