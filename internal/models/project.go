package models

import "github.com/shopspring/decimal"

// Project represents a DIY project: the top-level unit of work in Obra.
// Hours are decimals rather than floats so values like 1.25 survive a
// round trip through the database unchanged.
type Project struct {
	ID             int
	Name           string
	EstimatedHours decimal.Decimal
	ActualHours    *decimal.Decimal // nil until work has been logged
	Difficulty     *int             // 1 (easy) to 5 (hard), nil if unrated
	Notes          string           // markdown

	// Child collections. Only FetchByID populates these; list views
	// leave them nil.
	Materials  []*Material
	Steps      []*Step
	Categories []*Category
}

// GetID implements the quiet-output contract used by the CLI formatter.
func (p *Project) GetID() int {
	return p.ID
}
