// Package forms validates the listing submission form and hands valid
// submissions to a sink.
package forms

import (
	"context"
	"time"

	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
	"github.com/Its-donkey/ai-directory/logging"
)

// Shower is the confirmation shown after a successful submission.
type Shower interface {
	Show()
}

// Options wires the controller's collaborators. Nil members are allowed.
type Options struct {
	Alerter dom.Alerter
	Sink    Sink
	Modal   Shower
	Logger  *logging.Logger
	Now     func() time.Time
}

// Controller intercepts submits on one form.
type Controller struct {
	doc      dom.Document
	form     dom.Element
	hooks    model.Hooks
	opts     Options
	bindings dom.Bindings
}

// Init binds the submit handler. It returns nil when the form is missing.
func Init(doc dom.Document, hooks model.Hooks, opts Options) *Controller {
	form := doc.ByID(hooks.Form)
	if form == nil {
		return nil
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	c := &Controller{doc: doc, form: form, hooks: hooks, opts: opts}
	c.bindings.On(form, "submit", func(ev dom.Event) {
		ev.PreventDefault()
		c.Submit()
	})
	return c
}

// Validate checks the form, marks failing fields and clears the marks on
// passing ones. A missing consent raises an alert.
func (c *Controller) Validate() ValidationResult {
	values := readFields(c.doc, c.hooks)
	result := ValidateSubmitForm(values, consentGiven(c.doc, c.hooks))
	for _, field := range model.RequiredFields {
		markFieldError(c.doc, c.hooks, field, result.HasError(field))
	}
	if result.ConsentMissing && c.opts.Alerter != nil {
		c.opts.Alerter.Alert(ConsentMessage)
	}
	return result
}

// Submit validates and, when valid, emits the record, shows the confirmation
// and resets the form. It reports whether a record was emitted.
func (c *Controller) Submit() (model.SubmissionRecord, bool) {
	if c == nil {
		return model.SubmissionRecord{}, false
	}
	result := c.Validate()
	if !result.Valid() {
		c.opts.Logger.Debug("submission", "submission blocked", map[string]any{
			"invalid":        result.Invalid,
			"consentMissing": result.ConsentMissing,
		})
		return model.SubmissionRecord{}, false
	}

	record := BuildRecord(readFields(c.doc, c.hooks), c.opts.Now())
	if c.opts.Sink != nil {
		if err := c.opts.Sink.Submit(context.Background(), record); err != nil {
			c.opts.Logger.Error("submission", "sink rejected submission", err, map[string]any{"id": record.ID})
		}
	}
	if c.opts.Modal != nil {
		c.opts.Modal.Show()
	}
	c.form.Reset()
	return record, true
}

// Release detaches the submit handler.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	c.bindings.Release()
}
