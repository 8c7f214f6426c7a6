package services

import "errors"

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTaskNotFound       = errors.New("task not found")
)
