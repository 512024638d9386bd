package jwt

import (
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
)

type Service interface {
	// GenerateAccessToken issues an HS256 access token for the employee and
	// returns it together with its lifetime in seconds.
	GenerateAccessToken(emp employee.Employee) (token string, expiresIn int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenTTL  time.Duration
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, tokenTTLMinutes int) Service {
	return &JWTService{
		tokenTTL:  time.Duration(tokenTTLMinutes) * time.Minute,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(10*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(emp employee.Employee) (string, int64, error) {
	now := time.Now()

	claims := map[string]interface{}{
		"sub":   strconv.Itoa(emp.EmpID),
		"role":  string(emp.Role),
		"name":  emp.FullName(),
		"email": emp.Email,
		"type":  "access",
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(j.tokenTTL).Unix(),
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, int64(j.tokenTTL.Seconds()), nil
}
