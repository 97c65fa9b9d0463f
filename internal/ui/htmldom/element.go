package htmldom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Its-donkey/ai-directory/internal/ui/dom"
)

// Element wraps a single parsed node.
type Element struct {
	doc  *Document
	sel  *goquery.Selection
	node *html.Node
}

var _ dom.Element = (*Element)(nil)

// ID returns the id attribute, or "".
func (e *Element) ID() string {
	return e.sel.AttrOr("id", "")
}

// HasClass reports whether the class attribute lists name.
func (e *Element) HasClass(name string) bool {
	return e.sel.HasClass(name)
}

// AddClass adds name to the class attribute.
func (e *Element) AddClass(name string) {
	e.sel.AddClass(name)
}

// RemoveClass drops name from the class attribute.
func (e *Element) RemoveClass(name string) {
	e.sel.RemoveClass(name)
}

// ToggleClass flips name and reports whether it is now present.
func (e *Element) ToggleClass(name string) bool {
	e.sel.ToggleClass(name)
	return e.sel.HasClass(name)
}

// Text returns the combined text of the element and its descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}

// SetText replaces the children with a single text node.
func (e *Element) SetText(text string) {
	e.sel.SetText(text)
}

// Value returns the live value, falling back to the markup default.
func (e *Element) Value() string {
	if v, ok := e.doc.values[e.node]; ok {
		return v
	}
	return e.defaultValue()
}

// SetValue sets the live value, as typing into a control would.
func (e *Element) SetValue(value string) {
	e.doc.values[e.node] = value
}

func (e *Element) defaultValue() string {
	switch e.node.Data {
	case "textarea":
		return e.sel.Text()
	case "select":
		option := e.sel.Find("option[selected]").First()
		if option.Length() == 0 {
			option = e.sel.Find("option").First()
		}
		if v, ok := option.Attr("value"); ok {
			return v
		}
		return option.Text()
	default:
		return e.sel.AttrOr("value", "")
	}
}

// Checked returns the live checked state, falling back to the markup.
func (e *Element) Checked() bool {
	if v, ok := e.doc.checked[e.node]; ok {
		return v
	}
	_, ok := e.sel.Attr("checked")
	return ok
}

// SetChecked ticks or clears a checkbox.
func (e *Element) SetChecked(checked bool) {
	e.doc.checked[e.node] = checked
}

// Style returns an inline style property set through SetStyle.
func (e *Element) Style(property string) string {
	return e.doc.styles[e.node][property]
}

// SetStyle sets an inline style property. An empty value removes it.
func (e *Element) SetStyle(property, value string) {
	props := e.doc.styles[e.node]
	if props == nil {
		props = make(map[string]string)
		e.doc.styles[e.node] = props
	}
	if value == "" {
		delete(props, property)
		return
	}
	props[property] = value
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other dom.Element) bool {
	n := nodeOf(other)
	if n == nil {
		return false
	}
	return n == e.node || e.sel.Contains(n)
}

// Is reports whether other wraps the same node.
func (e *Element) Is(other dom.Element) bool {
	n := nodeOf(other)
	return n != nil && n == e.node
}

// QuerySelectorAll returns the descendants matching selector.
func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	return e.doc.wrapAll(e.sel.Find(selector))
}

// Reset drops every live value and checked state below the element, so
// controls read their markup defaults again.
func (e *Element) Reset() {
	e.sel.Find("input, textarea, select").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		delete(e.doc.values, n)
		delete(e.doc.checked, n)
	})
}

// On attaches handler for event and returns its remover.
func (e *Element) On(event string, handler dom.Handler) func() {
	l := &listener{event: event, handler: handler}
	e.doc.listeners[e.node] = append(e.doc.listeners[e.node], l)
	return func() { l.removed = true }
}
