package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	// ErrEmployeeReference is returned by any repository whose row points at
	// an employee that does not exist.
	ErrEmployeeReference = errors.New("employee does not exist")
)
