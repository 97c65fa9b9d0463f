// Package nav opens and closes the mobile navigation panel.
package nav

import (
	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
)

// Controller tracks one navigation panel.
type Controller struct {
	panel    dom.Element
	bindings dom.Bindings
}

// Init binds the toggle button and every link in the panel. It returns nil
// unless both the button and the panel exist.
func Init(doc dom.Document, hooks model.Hooks) *Controller {
	toggle := doc.ByID(hooks.NavToggle)
	panel := doc.ByID(hooks.NavLinks)
	if !dom.Present(toggle, panel) {
		return nil
	}
	c := &Controller{panel: panel}
	c.bindings.On(toggle, "click", func(dom.Event) { c.Toggle() })
	for _, link := range panel.QuerySelectorAll("a") {
		c.bindings.On(link, "click", func(dom.Event) { c.Close() })
	}
	return c
}

// Toggle flips the panel and reports whether it is now open.
func (c *Controller) Toggle() bool {
	if c == nil {
		return false
	}
	return c.panel.ToggleClass(model.ActiveClass)
}

// Close hides the panel whatever its state.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.panel.RemoveClass(model.ActiveClass)
}

// IsOpen reports whether the panel is shown.
func (c *Controller) IsOpen() bool {
	return c != nil && c.panel.HasClass(model.ActiveClass)
}

// Release detaches all listeners.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	c.bindings.Release()
}
