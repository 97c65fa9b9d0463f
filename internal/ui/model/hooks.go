package model

// Hooks names the elements each page controller binds to. Ids are bare
// element ids; selectors are CSS selectors.
type Hooks struct {
	ThemeToggle string `koanf:"theme_toggle" json:"themeToggle"`

	NavToggle string `koanf:"nav_toggle" json:"navToggle"`
	NavLinks  string `koanf:"nav_links" json:"navLinks"`

	DropdownRoot    string `koanf:"dropdown_root" json:"dropdownRoot"`
	DropdownTrigger string `koanf:"dropdown_trigger" json:"dropdownTrigger"`
	DropdownItems   string `koanf:"dropdown_items" json:"dropdownItems"`

	Form    string            `koanf:"form" json:"form"`
	Fields  map[string]string `koanf:"fields" json:"fields"`
	Consent string            `koanf:"consent" json:"consent"`

	Modal        string `koanf:"modal" json:"modal"`
	ModalClose   string `koanf:"modal_close" json:"modalClose"`
	ModalConfirm string `koanf:"modal_confirm" json:"modalConfirm"`

	Reveal string `koanf:"reveal" json:"reveal"`
}

// DefaultHooks matches the directory site's markup.
func DefaultHooks() Hooks {
	return Hooks{
		ThemeToggle:     "themeToggle",
		NavToggle:       "navToggle",
		NavLinks:        "navLinks",
		DropdownRoot:    ".dropdown",
		DropdownTrigger: ".dropbtn",
		DropdownItems:   ".dropdown-menu a",
		Form:            "submitForm",
		Fields: map[string]string{
			FieldSubmitterName:  "userName",
			FieldSubmitterEmail: "userEmail",
			FieldListingName:    "aiName",
			FieldListingURL:     "aiUrl",
			FieldCategory:       "category",
			FieldPricingModel:   "pricing",
			FieldDescription:    "description",
			FieldTags:           "tags",
		},
		Consent:      "terms",
		Modal:        "successModal",
		ModalClose:   "modalClose",
		ModalConfirm: "modalBtn",
		Reveal:       ".fade-in",
	}
}

// FieldID returns the element id bound to a record field, falling back to the
// default markup when the field is not overridden.
func (h Hooks) FieldID(field string) string {
	if id := h.Fields[field]; id != "" {
		return id
	}
	return DefaultHooks().Fields[field]
}

// WithDefaults fills every empty hook from DefaultHooks.
func (h Hooks) WithDefaults() Hooks {
	d := DefaultHooks()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&h.ThemeToggle, d.ThemeToggle)
	fill(&h.NavToggle, d.NavToggle)
	fill(&h.NavLinks, d.NavLinks)
	fill(&h.DropdownRoot, d.DropdownRoot)
	fill(&h.DropdownTrigger, d.DropdownTrigger)
	fill(&h.DropdownItems, d.DropdownItems)
	fill(&h.Form, d.Form)
	fill(&h.Consent, d.Consent)
	fill(&h.Modal, d.Modal)
	fill(&h.ModalClose, d.ModalClose)
	fill(&h.ModalConfirm, d.ModalConfirm)
	fill(&h.Reveal, d.Reveal)

	fields := make(map[string]string, len(d.Fields))
	for field, id := range d.Fields {
		fields[field] = id
	}
	for field, id := range h.Fields {
		if id != "" {
			fields[field] = id
		}
	}
	h.Fields = fields
	return h
}
