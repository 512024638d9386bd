package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 120)

	emp := employee.Employee{
		EmpID:     3,
		FirstName: "Radu",
		LastName:  "Manager",
		Email:     "radu.manager@example.com",
		Role:      employee.RoleManager,
	}

	tokenString, expiresIn, err := svc.GenerateAccessToken(emp)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Equal(t, int64(120*60), expiresIn)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3", claims["sub"])
	assert.Equal(t, "MANAGER", claims["role"])
	assert.Equal(t, "Radu Manager", claims["name"])
	assert.Equal(t, "radu.manager@example.com", claims["email"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateAccessToken_UniqueJTI(t *testing.T) {
	svc := NewJWTService("test-secret", 120)
	emp := employee.Employee{EmpID: 1, Role: employee.RoleEmployee}

	first, _, err := svc.GenerateAccessToken(emp)
	require.NoError(t, err)
	second, _, err := svc.GenerateAccessToken(emp)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecode_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("right-secret", 120)
	verifier := NewJWTService("wrong-secret", 120)

	tokenString, _, err := issuer.GenerateAccessToken(employee.Employee{EmpID: 1})
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
