package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Project ID that doesn't match any row, whether on show,
	// update, or delete.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty project names, hours that don't parse as a decimal,
	// difficulty outside 1-5, or any other input that fails service
	// validation rules.
	ExitValidation = 4
)
