// Package dropdown drives the click-to-open header menu.
package dropdown

import (
	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
)

// EscapeKey is the key name that closes the menu.
const EscapeKey = "Escape"

// Controller tracks one dropdown.
type Controller struct {
	root     dom.Element
	bindings dom.Bindings
}

// Init binds the trigger, the menu items and the document-level close
// triggers. It returns nil unless both the root and the trigger exist.
func Init(doc dom.Document, hooks model.Hooks) *Controller {
	root := doc.QuerySelector(hooks.DropdownRoot)
	trigger := doc.QuerySelector(hooks.DropdownTrigger)
	if !dom.Present(root, trigger) {
		return nil
	}
	c := &Controller{root: root}

	c.bindings.On(trigger, "click", func(ev dom.Event) {
		ev.PreventDefault()
		ev.StopPropagation()
		c.Toggle()
	})
	c.bindings.OnDocument(doc, "click", func(ev dom.Event) {
		if !c.root.Contains(ev.Target()) {
			c.Close()
		}
	})
	c.bindings.OnDocument(doc, "keydown", func(ev dom.Event) {
		if ev.Key() == EscapeKey {
			c.Close()
		}
	})
	for _, item := range root.QuerySelectorAll(hooks.DropdownItems) {
		c.bindings.On(item, "click", func(dom.Event) { c.Close() })
	}
	return c
}

// Toggle flips the menu and reports whether it is now open.
func (c *Controller) Toggle() bool {
	if c == nil {
		return false
	}
	return c.root.ToggleClass(model.ActiveClass)
}

// Close hides the menu. Closing a closed menu changes nothing.
func (c *Controller) Close() {
	if c == nil || !c.IsOpen() {
		return
	}
	c.root.RemoveClass(model.ActiveClass)
}

// IsOpen reports whether the menu is shown.
func (c *Controller) IsOpen() bool {
	return c != nil && c.root.HasClass(model.ActiveClass)
}

// Release detaches all listeners, including the document-level ones.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	c.bindings.Release()
}
