package database

import "fmt"

// StoreError is the single error kind the store returns. Every failure,
// whether it happened beginning the transaction, executing a statement,
// reading the generated key, or committing, comes back as a StoreError
// wrapping the underlying cause. Callers that care about the low-level
// reason can errors.Unwrap or errors.As their way down; callers that
// don't can treat any StoreError as "persistence failed".
type StoreError struct {
	Op  string // the store operation that failed, e.g. "insert project"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
