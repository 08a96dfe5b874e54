package database

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// nullInt64ToPtr converts sql.NullInt64 to *int.
// Returns nil if the value is not valid.
func nullInt64ToPtr(nv sql.NullInt64) *int {
	if nv.Valid {
		val := int(nv.Int64)
		return &val
	}
	return nil
}

// nullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// nullDecimalToPtr converts decimal.NullDecimal to *decimal.Decimal.
// Returns nil if the value is not valid.
func nullDecimalToPtr(nd decimal.NullDecimal) *decimal.Decimal {
	if nd.Valid {
		val := nd.Decimal
		return &val
	}
	return nil
}

// stringToNull converts a string to sql.NullString, mapping the empty
// string to NULL so optional text columns stay NULL instead of storing "".
func stringToNull(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
