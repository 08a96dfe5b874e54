package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ParseDecimal parses an hour or cost amount like "12.5". Exact decimal
// arithmetic end to end: the string goes straight into a decimal.Decimal,
// never through a float.
func ParseDecimal(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal amount '%s' (e.g. 12.5)", value)
	}
	return d, nil
}

// ParseDifficulty parses a difficulty rating, which must be an integer
// between 1 (easy) and 5 (hard)
func ParseDifficulty(value string) (int, error) {
	difficulty, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid difficulty '%s' (must be a number 1-5)", value)
	}
	if difficulty < 1 || difficulty > 5 {
		return 0, fmt.Errorf("invalid difficulty %d (must be between 1 and 5)", difficulty)
	}
	return difficulty, nil
}

// ParseProjectIDArg resolves a project ID given either as the first
// positional argument or as the --id flag. Commands accept both:
// "obra project show 3" and "obra project show --id=3".
func ParseProjectIDArg(cmd *cobra.Command, args []string) (int, error) {
	if len(args) > 0 {
		id, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return 0, fmt.Errorf("invalid project ID '%s'", args[0])
		}
		return id, nil
	}

	id, err := cmd.Flags().GetInt("id")
	if err != nil {
		return 0, fmt.Errorf("failed to parse id flag: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("project ID must be a positive integer")
	}
	return id, nil
}

// DecimalFlag reads a decimal-valued string flag, returning nil when the
// flag was not set. Update commands use this to distinguish "leave the
// column alone" from "set it".
func DecimalFlag(cmd *cobra.Command, name string) (*decimal.Decimal, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", name, err)
	}
	d, err := ParseDecimal(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DifficultyFlag reads the difficulty flag, returning nil when it was not
// set
func DifficultyFlag(cmd *cobra.Command, name string) (*int, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", name, err)
	}
	difficulty, err := ParseDifficulty(value)
	if err != nil {
		return nil, err
	}
	return &difficulty, nil
}
