package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

// ============================================================================
// Fixtures
// ============================================================================

type resultWithID struct {
	ID   int
	Name string
}

func (r resultWithID) GetID() int {
	return r.ID
}

type resultWithPtrID struct {
	ID    int
	Notes string
}

func (r *resultWithPtrID) GetID() int {
	return r.ID
}

type resultWithoutID struct {
	Name  string
	Count int
}

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	_ = w.Close()
	os.Stdout = oldStdout

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func captureStderr(t *testing.T, fn func() error) string {
	t.Helper()

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	err := fn()

	_ = w.Close()
	os.Stderr = oldStderr

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func decodeJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	return result
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		validate func(t *testing.T, result map[string]interface{})
	}{
		{
			name: "map data",
			data: map[string]interface{}{"name": "Birdhouse", "estimated_hours": "3.5"},
			validate: func(t *testing.T, result map[string]interface{}) {
				dataMap := result["data"].(map[string]interface{})
				if dataMap["name"] != "Birdhouse" {
					t.Errorf("Expected data.name to be 'Birdhouse', got %v", dataMap["name"])
				}
			},
		},
		{
			name: "struct with ID",
			data: resultWithID{ID: 123, Name: "Garden Bed"},
			validate: func(t *testing.T, result map[string]interface{}) {
				dataMap := result["data"].(map[string]interface{})
				if dataMap["Name"] != "Garden Bed" {
					t.Errorf("Expected data.Name to be 'Garden Bed', got %v", dataMap["Name"])
				}
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, result map[string]interface{}) {
				if result["data"] != "simple string" {
					t.Errorf("Expected data to be 'simple string', got %v", result["data"])
				}
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, result map[string]interface{}) {
				if result["data"] != nil {
					t.Errorf("Expected data to be nil, got %v", result["data"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true, Quiet: false}
			output := captureStdout(t, func() error {
				return formatter.Success(tt.data)
			})

			result := decodeJSON(t, output)
			if !result["success"].(bool) {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result)
		})
	}
}

func TestOutputFormatter_Success_Quiet_WithID(t *testing.T) {
	tests := []struct {
		name       string
		data       interface{}
		wantOutput string
	}{
		{
			name:       "value receiver",
			data:       resultWithID{ID: 42, Name: "Planter Box"},
			wantOutput: "42",
		},
		{
			name:       "pointer receiver",
			data:       &resultWithPtrID{ID: 99, Notes: "sand before staining"},
			wantOutput: "99",
		},
		{
			name:       "pointer to value receiver",
			data:       &resultWithID{ID: 55, Name: "Shelf"},
			wantOutput: "55",
		},
		{
			name:       "ID is zero",
			data:       resultWithID{ID: 0, Name: "Unsaved"},
			wantOutput: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: false, Quiet: true}
			output := captureStdout(t, func() error {
				return formatter.Success(tt.data)
			})

			if got := strings.TrimSpace(output); got != tt.wantOutput {
				t.Errorf("Expected output '%s', got '%s'", tt.wantOutput, got)
			}
		})
	}
}

func TestOutputFormatter_Success_Quiet_WithoutID(t *testing.T) {
	// No GetID to extract, so quiet mode falls through to the default
	// pretty printer
	tests := []struct {
		name          string
		data          interface{}
		shouldContain string
	}{
		{
			name:          "struct without GetID",
			data:          resultWithoutID{Name: "Workbench", Count: 3},
			shouldContain: "Workbench",
		},
		{
			name:          "string",
			data:          "plain string output",
			shouldContain: "plain string output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: false, Quiet: true}
			output := captureStdout(t, func() error {
				return formatter.Success(tt.data)
			})

			if !strings.Contains(output, tt.shouldContain) {
				t.Errorf("Expected output to contain '%s', got '%s'", tt.shouldContain, output)
			}
		})
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name          string
		data          interface{}
		shouldContain string
	}{
		{
			name:          "struct with fields",
			data:          resultWithID{ID: 42, Name: "Compost Bin"},
			shouldContain: "Compost Bin",
		},
		{
			name:          "map",
			data:          map[string]interface{}{"difficulty": 4},
			shouldContain: "difficulty",
		},
		{
			name:          "slice",
			data:          []string{"Woodworking", "Gardening"},
			shouldContain: "Woodworking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: false, Quiet: false}
			output := captureStdout(t, func() error {
				return formatter.Success(tt.data)
			})

			if !strings.Contains(output, tt.shouldContain) {
				t.Errorf("Expected output to contain '%s', got '%s'", tt.shouldContain, output)
			}
		})
	}
}

// ============================================================================
// Error and ErrorWithSuggestion
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
	}{
		{
			name:    "standard error",
			code:    "PROJECT_NOT_FOUND",
			message: "project not found",
		},
		{
			name:    "empty code",
			code:    "",
			message: "error without code",
		},
		{
			name:    "special characters in message",
			code:    "SPECIAL_CHAR",
			message: "error with \"quotes\" and \n newlines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true, Quiet: false}
			output := captureStdout(t, func() error {
				return formatter.Error(tt.code, tt.message)
			})

			result := decodeJSON(t, output)
			if result["success"].(bool) {
				t.Error("Expected success to be false")
			}

			errorData := result["error"].(map[string]interface{})
			if errorData["code"] != tt.code {
				t.Errorf("Expected error code '%s', got '%s'", tt.code, errorData["code"])
			}
			if errorData["message"] != tt.message {
				t.Errorf("Expected message '%s', got '%s'", tt.message, errorData["message"])
			}
			if _, hasSuggestion := errorData["suggestion"]; hasSuggestion {
				t.Error("Expected no suggestion field in Error() output")
			}
		})
	}
}

func TestOutputFormatter_Error_Quiet(t *testing.T) {
	formatter := &OutputFormatter{JSON: false, Quiet: true}
	output := captureStderr(t, func() error {
		return formatter.Error("INVALID_HOURS", "this should be suppressed")
	})

	if output != "" {
		t.Errorf("Expected no output in quiet mode, got '%s'", output)
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
	}{
		{
			name:    "standard error",
			code:    "INVALID_PROJECT_ID",
			message: "project ID must be a positive integer",
		},
		{
			name:    "unicode in message",
			code:    "UNICODE_ERROR",
			message: "Error with unicode: 你好 мир",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: false, Quiet: false}
			output := captureStderr(t, func() error {
				return formatter.Error(tt.code, tt.message)
			})

			if !strings.Contains(output, tt.message) {
				t.Errorf("Expected output to contain error message '%s', got '%s'", tt.message, output)
			}
			if !strings.Contains(output, "Error:") {
				t.Errorf("Expected output to contain 'Error:', got '%s'", output)
			}
			if strings.Contains(output, "Suggestion:") {
				t.Errorf("Expected no suggestion in Error() output, got '%s'", output)
			}
		})
	}
}

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
		hasSuggest bool
	}{
		{
			name:       "with suggestion",
			code:       "INVALID_PROJECT_ID",
			message:    "invalid project ID",
			suggestion: "Provide the ID as a number, e.g., 'obra project show 3'",
			hasSuggest: true,
		},
		{
			name:       "without suggestion",
			code:       "NO_SUGGEST",
			message:    "error without suggestion",
			suggestion: "",
			hasSuggest: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true, Quiet: false}
			output := captureStdout(t, func() error {
				return formatter.ErrorWithSuggestion(tt.code, tt.message, tt.suggestion)
			})

			result := decodeJSON(t, output)
			if result["success"].(bool) {
				t.Error("Expected success to be false")
			}

			errorData := result["error"].(map[string]interface{})
			if errorData["code"] != tt.code {
				t.Errorf("Expected error code '%s', got '%s'", tt.code, errorData["code"])
			}

			if tt.hasSuggest {
				if errorData["suggestion"] != tt.suggestion {
					t.Errorf("Expected suggestion '%s', got '%v'", tt.suggestion, errorData["suggestion"])
				}
			} else {
				if _, exists := errorData["suggestion"]; exists {
					t.Error("Expected no suggestion field when suggestion is empty")
				}
			}
		})
	}
}

func TestOutputFormatter_ErrorWithSuggestion_Quiet(t *testing.T) {
	tests := []struct {
		name       string
		suggestion string
	}{
		{
			name:       "with suggestion",
			suggestion: "try this",
		},
		{
			name:       "without suggestion",
			suggestion: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: false, Quiet: true}
			output := captureStderr(t, func() error {
				return formatter.ErrorWithSuggestion("ERR", "message", tt.suggestion)
			})

			if output != "" {
				t.Errorf("Expected no output in quiet mode, got '%s'", output)
			}
		})
	}
}

func TestOutputFormatter_ErrorWithSuggestion_HumanReadable(t *testing.T) {
	tests := []struct {
		name             string
		code             string
		message          string
		suggestion       string
		shouldContain    []string
		shouldNotContain string
	}{
		{
			name:          "with suggestion",
			code:          "NO_UPDATES",
			message:       "no fields to update",
			suggestion:    "Pass at least one of --name, --hours, --actual-hours, --difficulty, --notes",
			shouldContain: []string{"no fields to update", "--difficulty", "Error:", "Suggestion:"},
		},
		{
			name:             "without suggestion",
			code:             "NO_SUGGEST",
			message:          "error without suggestion",
			suggestion:       "",
			shouldContain:    []string{"error without suggestion", "Error:"},
			shouldNotContain: "Suggestion:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: false, Quiet: false}
			output := captureStderr(t, func() error {
				return formatter.ErrorWithSuggestion(tt.code, tt.message, tt.suggestion)
			})

			for _, expected := range tt.shouldContain {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain '%s', got '%s'", expected, output)
				}
			}
			if tt.shouldNotContain != "" && strings.Contains(output, tt.shouldNotContain) {
				t.Errorf("Expected output to NOT contain '%s', got '%s'", tt.shouldNotContain, output)
			}
		})
	}
}

// ============================================================================
// Mode precedence
// ============================================================================

func TestOutputFormatter_ModePrecedence(t *testing.T) {
	t.Run("Quiet takes precedence over JSON when GetID exists", func(t *testing.T) {
		formatter := &OutputFormatter{JSON: true, Quiet: true}
		output := captureStdout(t, func() error {
			return formatter.Success(resultWithID{ID: 42, Name: "Trellis"})
		})

		if got := strings.TrimSpace(output); got != "42" {
			t.Errorf("Expected output '42' when Quiet=true with GetID(), got: %s", got)
		}
	})

	t.Run("Quiet without GetID falls through to JSON", func(t *testing.T) {
		formatter := &OutputFormatter{JSON: true, Quiet: true}
		output := captureStdout(t, func() error {
			return formatter.Success(resultWithoutID{Name: "Trellis", Count: 1})
		})

		result := decodeJSON(t, output)
		if !result["success"].(bool) {
			t.Error("Expected success to be true")
		}
	})

	t.Run("JSON takes precedence over Quiet for Error", func(t *testing.T) {
		formatter := &OutputFormatter{JSON: true, Quiet: true}
		output := captureStdout(t, func() error {
			return formatter.Error("TEST", "message")
		})

		result := decodeJSON(t, output)
		if result["success"].(bool) {
			t.Error("Expected success to be false")
		}
	})
}

func TestOutputFormatter_NilData(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		quiet bool
	}{
		{"JSON mode", true, false},
		{"Quiet mode", false, true},
		{"Human mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: tt.json, Quiet: tt.quiet}
			output := captureStdout(t, func() error {
				return formatter.Success(nil)
			})

			if tt.json {
				result := decodeJSON(t, output)
				if !result["success"].(bool) {
					t.Error("Expected success to be true")
				}
			}
		})
	}
}
