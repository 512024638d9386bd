package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrManagerNotFound  = errors.New("inexistent or inactive manager")
)
