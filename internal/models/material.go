package models

import "github.com/shopspring/decimal"

// Material represents a single supply line item belonging to a project
type Material struct {
	ID          int
	ProjectID   int
	Name        string
	NumRequired *int             // nil when the quantity is open-ended
	Cost        *decimal.Decimal // unit cost, nil if not priced yet
}
