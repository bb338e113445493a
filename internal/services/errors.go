package services

import "errors"

var (
	ErrAttendantRequired = errors.New("attendant name is required")
	ErrRecordNotFound    = errors.New("invalid id")
	ErrDuplicateUser     = errors.New("user already exists")
	ErrForbidden         = errors.New("permission denied")
	ErrEmptyField        = errors.New("all fields are required")
)
