//go:build js && wasm

// Package jsdom binds the dom interfaces to the browser through syscall/js.
package jsdom

import (
	"syscall/js"

	"github.com/Its-donkey/ai-directory/internal/ui/dom"
)

// Document wraps the browser document.
type Document struct {
	v js.Value
}

var _ dom.Document = (*Document)(nil)

// Global returns the page's document.
func Global() *Document {
	return &Document{v: js.Global().Get("document")}
}

// ReadyState returns document.readyState ("loading", "interactive" or
// "complete").
func (d *Document) ReadyState() string {
	state := d.v.Get("readyState")
	if state.Type() != js.TypeString {
		return ""
	}
	return state.String()
}

func (d *Document) ByID(id string) dom.Element {
	if id == "" {
		return nil
	}
	return wrap(safeCall(d.v, "getElementById", id))
}

func (d *Document) QuerySelector(selector string) dom.Element {
	if selector == "" {
		return nil
	}
	return wrap(safeCall(d.v, "querySelector", selector))
}

func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	if selector == "" {
		return nil
	}
	return wrapList(safeCall(d.v, "querySelectorAll", selector))
}

func (d *Document) Body() dom.Element {
	return wrap(d.v.Get("body"))
}

func (d *Document) On(event string, handler dom.Handler) func() {
	return listen(d.v, event, handler)
}

// Element wraps a browser element.
type Element struct {
	v js.Value
}

var _ dom.Element = (*Element)(nil)

func wrap(v js.Value) dom.Element {
	if !v.Truthy() {
		return nil
	}
	return &Element{v: v}
}

func wrapList(list js.Value) []dom.Element {
	if !list.Truthy() {
		return nil
	}
	length := list.Get("length").Int()
	out := make([]dom.Element, 0, length)
	for i := 0; i < length; i++ {
		if el := wrap(list.Index(i)); el != nil {
			out = append(out, el)
		}
	}
	return out
}

func (e *Element) ID() string {
	id := e.v.Get("id")
	if id.Type() != js.TypeString {
		return ""
	}
	return id.String()
}

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) AddClass(name string) {
	e.v.Get("classList").Call("add", name)
}

func (e *Element) RemoveClass(name string) {
	e.v.Get("classList").Call("remove", name)
}

func (e *Element) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}

func (e *Element) Text() string {
	text := e.v.Get("textContent")
	if text.Type() != js.TypeString {
		return ""
	}
	return text.String()
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) Value() string {
	value := e.v.Get("value")
	if value.Type() != js.TypeString {
		return ""
	}
	return value.String()
}

func (e *Element) SetValue(value string) {
	e.v.Set("value", value)
}

func (e *Element) Checked() bool {
	return e.v.Get("checked").Truthy()
}

func (e *Element) Style(property string) string {
	return e.v.Get("style").Call("getPropertyValue", property).String()
}

func (e *Element) SetStyle(property, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", property)
		return
	}
	style.Call("setProperty", property, value)
}

func (e *Element) Contains(other dom.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	return e.v.Call("contains", o.v).Bool()
}

func (e *Element) Is(other dom.Element) bool {
	o, ok := other.(*Element)
	return ok && o != nil && e.v.Equal(o.v)
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	if selector == "" {
		return nil
	}
	return wrapList(safeCall(e.v, "querySelectorAll", selector))
}

func (e *Element) Reset() {
	if e.v.Get("reset").Type() == js.TypeFunction {
		e.v.Call("reset")
	}
}

func (e *Element) On(event string, handler dom.Handler) func() {
	return listen(e.v, event, handler)
}

// Event wraps a browser event.
type Event struct {
	v js.Value
}

func (ev *Event) Type() string { return ev.v.Get("type").String() }

func (ev *Event) Target() dom.Element { return wrap(ev.v.Get("target")) }

func (ev *Event) Key() string {
	key := ev.v.Get("key")
	if key.Type() != js.TypeString {
		return ""
	}
	return key.String()
}

func (ev *Event) PreventDefault() { ev.v.Call("preventDefault") }

func (ev *Event) StopPropagation() { ev.v.Call("stopPropagation") }

// listen registers handler and returns a remover that also releases the
// js.Func.
func listen(target js.Value, event string, handler dom.Handler) func() {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			handler(&Event{v: args[0]})
		}
		return nil
	})
	target.Call("addEventListener", event, fn)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, fn)
		fn.Release()
	}
}

// safeCall returns null instead of panicking when the browser throws, for
// example on a malformed selector.
func safeCall(v js.Value, method string, args ...any) (out js.Value) {
	defer func() {
		if r := recover(); r != nil {
			out = js.Null()
		}
	}()
	return v.Call(method, args...)
}
