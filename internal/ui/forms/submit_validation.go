package forms

import (
	"strings"

	"github.com/Its-donkey/ai-directory/internal/ui/model"
)

// ConsentMessage is raised when the terms checkbox is left unticked.
const ConsentMessage = "Please confirm the terms before submitting."

// ErrorBorderColor marks a required field that failed validation.
const ErrorBorderColor = "#ef4444"

// ValidationResult lists every problem found in one pass.
type ValidationResult struct {
	// Invalid holds the required fields that were empty, in form order.
	Invalid        []string
	ConsentMissing bool
}

// Valid reports whether the submission may proceed.
func (r ValidationResult) Valid() bool {
	return len(r.Invalid) == 0 && !r.ConsentMissing
}

// HasError reports whether field failed.
func (r ValidationResult) HasError(field string) bool {
	for _, name := range r.Invalid {
		if name == field {
			return true
		}
	}
	return false
}

// ValidateSubmitForm checks every required field and the consent flag. All
// fields are checked even after a failure. Whitespace-only values count as
// empty.
func ValidateSubmitForm(values map[string]string, consent bool) ValidationResult {
	var result ValidationResult
	for _, field := range model.RequiredFields {
		if strings.TrimSpace(values[field]) == "" {
			result.Invalid = append(result.Invalid, field)
		}
	}
	result.ConsentMissing = !consent
	return result
}
