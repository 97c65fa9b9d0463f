package forms

import (
	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
)

// recordFields lists every field read from the form, required or not.
var recordFields = append(append([]string(nil), model.RequiredFields...), model.FieldTags)

// readFields collects the current raw value of every record field. Missing
// elements read as "".
func readFields(doc dom.Document, hooks model.Hooks) map[string]string {
	values := make(map[string]string, len(recordFields))
	for _, field := range recordFields {
		if el := doc.ByID(hooks.FieldID(field)); el != nil {
			values[field] = el.Value()
		} else {
			values[field] = ""
		}
	}
	return values
}

// markFieldError sets or clears the error border on a required field.
func markFieldError(doc dom.Document, hooks model.Hooks, field string, hasError bool) {
	el := doc.ByID(hooks.FieldID(field))
	if el == nil {
		return
	}
	if hasError {
		el.SetStyle("border-color", ErrorBorderColor)
	} else {
		el.SetStyle("border-color", "")
	}
}

// consentGiven reports whether the terms checkbox is ticked. A missing
// checkbox counts as unticked.
func consentGiven(doc dom.Document, hooks model.Hooks) bool {
	el := doc.ByID(hooks.Consent)
	return el != nil && el.Checked()
}
