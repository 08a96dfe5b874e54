package models

// Step represents one instruction in a project's build sequence.
// Order is the 1-based position the step should be performed in;
// it drives the ORDER BY when steps are fetched, independent of
// insertion order or ID.
type Step struct {
	ID        int
	ProjectID int
	Text      string
	Order     int
}
