package model

import "testing"

func TestWithDefaultsKeepsOverrides(t *testing.T) {
	h := Hooks{
		Form:   "listingForm",
		Fields: map[string]string{FieldListingName: "toolName", FieldTags: ""},
	}.WithDefaults()
	if h.Form != "listingForm" {
		t.Fatalf("override lost: %q", h.Form)
	}
	if h.ThemeToggle != "themeToggle" || h.Reveal != ".fade-in" {
		t.Fatalf("defaults not applied: %+v", h)
	}
	if h.FieldID(FieldListingName) != "toolName" {
		t.Fatalf("field override lost: %q", h.FieldID(FieldListingName))
	}
	if h.FieldID(FieldTags) != "tags" {
		t.Fatalf("empty field override should fall back, got %q", h.FieldID(FieldTags))
	}
}

func TestFieldIDFallsBackWithoutMap(t *testing.T) {
	var h Hooks
	if h.FieldID(FieldSubmitterEmail) != "userEmail" {
		t.Fatalf("unexpected id %q", h.FieldID(FieldSubmitterEmail))
	}
}

func TestRecordFields(t *testing.T) {
	r := SubmissionRecord{ID: "1", ListingURL: "https://x.example", SubmittedAt: "2024-01-01T00:00:00.000Z"}
	fields := r.Fields()
	if fields[FieldListingURL] != "https://x.example" || fields["submittedAt"] != r.SubmittedAt || fields["id"] != "1" {
		t.Fatalf("unexpected fields %+v", fields)
	}
	if len(fields) != 10 {
		t.Fatalf("expected 10 fields, got %d", len(fields))
	}
}
