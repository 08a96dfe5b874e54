package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable.
// Quiet mode prints only the entity's ID, for shell capture like
// ID=$(obra project create ... --quiet).
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs a successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Entities that know their ID print just that
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Quiet mode suppresses human-readable errors; scripts read the
	// exit code instead
	if f.Quiet {
		return nil
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output. Commands with a
// richer rendering (cards, tables) print those themselves and skip this.
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	fmt.Printf("%+v\n", data)
	return nil
}
