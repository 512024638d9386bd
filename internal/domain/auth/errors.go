package auth

import "errors"

var (
	ErrMissingBearerToken  = errors.New("missing bearer token")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found or inactive")
	ErrManagerRoleRequired = errors.New("manager role required")
	ErrManagerDataMismatch = errors.New("manager can only access their own data")
)
