// Package audit reports which page controllers a document's markup can
// support, using the same hook names the browser binary binds to.
package audit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/htmldom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
)

// Feature names, in initialisation order.
const (
	FeatureTheme    = "theme"
	FeatureNav      = "nav"
	FeatureDropdown = "dropdown"
	FeatureModal    = "modal"
	FeatureForm     = "form"
	FeatureReveal   = "reveal"
)

// Finding describes one controller on one page.
type Finding struct {
	Feature string
	Enabled bool
	// Missing lists hooks the controller needs but the page lacks. A
	// feature can be enabled and still have missing optional hooks.
	Missing []string
	Note    string
}

// Report holds every finding for a page.
type Report struct {
	Page     string
	Findings []Finding
}

// Complete reports whether no hook is missing on the page.
func (r Report) Complete() bool {
	for _, f := range r.Findings {
		if len(f.Missing) > 0 {
			return false
		}
	}
	return true
}

// Finding returns the finding for feature.
func (r Report) Finding(feature string) (Finding, bool) {
	for _, f := range r.Findings {
		if f.Feature == feature {
			return f, true
		}
	}
	return Finding{}, false
}

// CheckFile parses the page at path and checks it.
func CheckFile(path string, hooks model.Hooks) (Report, error) {
	doc, err := htmldom.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("check %s: %w", path, err)
	}
	report := Check(doc, hooks)
	report.Page = path
	return report, nil
}

// Check inspects doc for every hook the controllers bind to.
func Check(doc dom.Document, hooks model.Hooks) Report {
	hooks = hooks.WithDefaults()
	var report Report
	add := func(f Finding) { report.Findings = append(report.Findings, f) }

	byID := func(id string) bool { return doc.ByID(id) != nil }
	bySelector := func(sel string) bool { return doc.QuerySelector(sel) != nil }

	theme := Finding{Feature: FeatureTheme, Enabled: doc.Body() != nil}
	if !byID(hooks.ThemeToggle) {
		theme.Missing = append(theme.Missing, "#"+hooks.ThemeToggle)
		theme.Note = "stored theme applies, no toggle"
	}
	add(theme)

	nav := Finding{Feature: FeatureNav}
	if !byID(hooks.NavToggle) {
		nav.Missing = append(nav.Missing, "#"+hooks.NavToggle)
	}
	if !byID(hooks.NavLinks) {
		nav.Missing = append(nav.Missing, "#"+hooks.NavLinks)
	}
	nav.Enabled = len(nav.Missing) == 0
	add(nav)

	dropdown := Finding{Feature: FeatureDropdown}
	if !bySelector(hooks.DropdownRoot) {
		dropdown.Missing = append(dropdown.Missing, hooks.DropdownRoot)
	}
	if !bySelector(hooks.DropdownTrigger) {
		dropdown.Missing = append(dropdown.Missing, hooks.DropdownTrigger)
	}
	dropdown.Enabled = len(dropdown.Missing) == 0
	if dropdown.Enabled {
		dropdown.Note = fmt.Sprintf("%d items", len(doc.QuerySelectorAll(hooks.DropdownItems)))
	}
	add(dropdown)

	modal := Finding{Feature: FeatureModal, Enabled: byID(hooks.Modal)}
	if !modal.Enabled {
		modal.Missing = append(modal.Missing, "#"+hooks.Modal)
	}
	if !byID(hooks.ModalClose) {
		modal.Missing = append(modal.Missing, "#"+hooks.ModalClose)
	}
	if !byID(hooks.ModalConfirm) {
		modal.Missing = append(modal.Missing, "#"+hooks.ModalConfirm)
	}
	add(modal)

	form := Finding{Feature: FeatureForm, Enabled: byID(hooks.Form)}
	if !form.Enabled {
		form.Missing = append(form.Missing, "#"+hooks.Form)
	}
	for _, field := range model.RequiredFields {
		if id := hooks.FieldID(field); !byID(id) {
			form.Missing = append(form.Missing, "#"+id)
		}
	}
	if !byID(hooks.Consent) {
		form.Missing = append(form.Missing, "#"+hooks.Consent)
	}
	if form.Enabled && len(form.Missing) > 0 {
		form.Note = "missing fields read as empty"
	}
	add(form)

	targets := len(doc.QuerySelectorAll(hooks.Reveal))
	reveal := Finding{Feature: FeatureReveal, Enabled: true, Note: fmt.Sprintf("%d targets", targets)}
	add(reveal)

	return report
}

var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// Render writes one table per report.
func Render(w io.Writer, reports []Report) {
	if w == nil {
		w = color.Output
	}
	for _, r := range reports {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold("Feature"), bold("Status"), bold("Missing"), bold("Note"))
		for _, f := range r.Findings {
			status := green("enabled")
			if !f.Enabled {
				status = red("disabled")
			}
			missing := "-"
			if len(f.Missing) > 0 {
				missing = fmt.Sprint(f.Missing)
			}
			tbl.AddRow(f.Feature, status, missing, f.Note)
		}
		_, _ = fmt.Fprintln(w, bold(r.Page))
		_, _ = fmt.Fprintln(w, tbl)
	}
}
