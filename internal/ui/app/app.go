// Package app wires the page controllers together once the document is ready.
package app

import (
	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/dropdown"
	"github.com/Its-donkey/ai-directory/internal/ui/forms"
	"github.com/Its-donkey/ai-directory/internal/ui/modal"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
	"github.com/Its-donkey/ai-directory/internal/ui/nav"
	"github.com/Its-donkey/ai-directory/internal/ui/reveal"
	"github.com/Its-donkey/ai-directory/internal/ui/theme"
	"github.com/Its-donkey/ai-directory/logging"
)

// Env carries the runtime services the controllers use. Hooks left empty
// fall back to model.DefaultHooks and a nil Sink logs to Logger.
type Env struct {
	Hooks     model.Hooks
	Storage   dom.Storage
	Alerter   dom.Alerter
	Observers dom.ObserverFactory
	Sink      forms.Sink
	Logger    *logging.Logger
}

// Page holds every controller. A nil field means the page lacks that
// feature's markup.
type Page struct {
	Theme    *theme.Controller
	Nav      *nav.Controller
	Dropdown *dropdown.Controller
	Modal    *modal.Controller
	Form     *forms.Controller
	Reveal   *reveal.Controller
}

// Init initialises theme, nav, dropdown, modal, form and reveal in that
// order. It must run once per page.
func Init(doc dom.Document, env Env) *Page {
	logger := env.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	sink := env.Sink
	if sink == nil {
		sink = forms.LogSink{Logger: logger}
	}

	hooks := env.Hooks.WithDefaults()

	p := &Page{}
	p.Theme = theme.Init(doc, theme.NewStore(env.Storage), hooks, logger)
	p.Nav = nav.Init(doc, hooks)
	p.Dropdown = dropdown.Init(doc, hooks)
	p.Modal = modal.Init(doc, hooks)
	p.Form = forms.Init(doc, hooks, forms.Options{
		Alerter: env.Alerter,
		Sink:    sink,
		Modal:   p.Modal,
		Logger:  logger,
	})
	p.Reveal = reveal.Init(doc, hooks, env.Observers)

	logger.Debug("page", "controllers initialised", p.Features())
	return p
}

// Features reports which controllers are active.
func (p *Page) Features() map[string]any {
	return map[string]any{
		"theme":    p.Theme != nil,
		"nav":      p.Nav != nil,
		"dropdown": p.Dropdown != nil,
		"modal":    p.Modal != nil,
		"form":     p.Form != nil,
		"reveal":   string(p.Reveal.Strategy()),
	}
}

// Release tears every controller down in reverse order.
func (p *Page) Release() {
	if p == nil {
		return
	}
	p.Reveal.Release()
	p.Form.Release()
	p.Modal.Release()
	p.Dropdown.Release()
	p.Nav.Release()
	p.Theme.Release()
}
