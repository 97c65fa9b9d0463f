package model

// ThemePreference is the persisted colour scheme.
type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)

// ThemeStorageKey identifies the localStorage entry holding the preference.
const ThemeStorageKey = "theme"

// Class names toggled by the page controllers.
const (
	DarkModeClass = "dark-mode"
	ActiveClass   = "active"
	VisibleClass  = "visible"
)

// Theme toggle glyphs. The icon advertises the mode a click switches to.
const (
	IconSwitchToLight = "☀️"
	IconSwitchToDark  = "🌙"
)

// Field names used in submission records and validation results.
const (
	FieldSubmitterName  = "submitterName"
	FieldSubmitterEmail = "submitterEmail"
	FieldListingName    = "listingName"
	FieldListingURL     = "listingUrl"
	FieldCategory       = "category"
	FieldPricingModel   = "pricingModel"
	FieldDescription    = "description"
	FieldTags           = "tags"
)

// RequiredFields lists the fields that must be non-empty, in form order.
var RequiredFields = []string{
	FieldSubmitterName,
	FieldSubmitterEmail,
	FieldListingName,
	FieldListingURL,
	FieldCategory,
	FieldPricingModel,
	FieldDescription,
}

// SubmissionRecord is the payload built from a valid listing submission.
type SubmissionRecord struct {
	ID             string `json:"id"`
	SubmitterName  string `json:"submitterName"`
	SubmitterEmail string `json:"submitterEmail"`
	ListingName    string `json:"listingName"`
	ListingURL     string `json:"listingUrl"`
	Category       string `json:"category"`
	PricingModel   string `json:"pricingModel"`
	Description    string `json:"description"`
	Tags           string `json:"tags"`
	SubmittedAt    string `json:"submittedAt"`
}

// Fields flattens the record for structured log output.
func (r SubmissionRecord) Fields() map[string]any {
	return map[string]any{
		"id":                r.ID,
		FieldSubmitterName:  r.SubmitterName,
		FieldSubmitterEmail: r.SubmitterEmail,
		FieldListingName:    r.ListingName,
		FieldListingURL:     r.ListingURL,
		FieldCategory:       r.Category,
		FieldPricingModel:   r.PricingModel,
		FieldDescription:    r.Description,
		FieldTags:           r.Tags,
		"submittedAt":       r.SubmittedAt,
	}
}
