// Package modal shows and hides the submission confirmation overlay.
package modal

import (
	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
)

// Controller tracks one overlay. Close controls are bound once, at Init.
type Controller struct {
	root     dom.Element
	bindings dom.Bindings
}

// Init binds the close and confirm controls and the backdrop. It returns nil
// when the overlay is missing; either control may be absent.
func Init(doc dom.Document, hooks model.Hooks) *Controller {
	root := doc.ByID(hooks.Modal)
	if root == nil {
		return nil
	}
	c := &Controller{root: root}
	c.bindings.On(doc.ByID(hooks.ModalClose), "click", func(dom.Event) { c.Close() })
	c.bindings.On(doc.ByID(hooks.ModalConfirm), "click", func(dom.Event) { c.Close() })
	c.bindings.On(root, "click", func(ev dom.Event) {
		if c.root.Is(ev.Target()) {
			c.Close()
		}
	})
	return c
}

// Show activates the overlay.
func (c *Controller) Show() {
	if c == nil {
		return
	}
	c.root.AddClass(model.ActiveClass)
}

// Close deactivates the overlay. It is a no-op when already inactive.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.root.RemoveClass(model.ActiveClass)
}

// IsActive reports whether the overlay is shown.
func (c *Controller) IsActive() bool {
	return c != nil && c.root.HasClass(model.ActiveClass)
}

// Release detaches all listeners.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	c.bindings.Release()
}
