package project

import "errors"

// Domain errors for the project service
var (
	// Validation errors
	ErrEmptyName         = errors.New("project name cannot be empty")
	ErrNameTooLong       = errors.New("project name cannot exceed 128 characters")
	ErrInvalidProjectID  = errors.New("invalid project ID")
	ErrInvalidDifficulty = errors.New("difficulty must be between 1 and 5")
	ErrInvalidHours      = errors.New("hours must be a positive amount")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
)
