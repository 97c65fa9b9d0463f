package htmldom

import (
	"golang.org/x/net/html"

	"github.com/Its-donkey/ai-directory/internal/ui/dom"
)

// Event is a synthetic event.
type Event struct {
	typ              string
	key              string
	target           *Element
	defaultPrevented bool
	stopped          bool
}

var _ dom.Event = (*Event)(nil)

func (ev *Event) Type() string { return ev.typ }

func (ev *Event) Target() dom.Element {
	if ev.target == nil {
		return nil
	}
	return ev.target
}

func (ev *Event) Key() string { return ev.key }

func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

func (ev *Event) StopPropagation() { ev.stopped = true }

// DefaultPrevented reports whether a listener suppressed the default action.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// Stopped reports whether a listener stopped propagation.
func (ev *Event) Stopped() bool { return ev.stopped }

// Click dispatches a click on el.
func (d *Document) Click(el dom.Element) *Event {
	return d.Dispatch(el, &Event{typ: "click"})
}

// KeyDown dispatches a keydown for key on the body.
func (d *Document) KeyDown(key string) *Event {
	return d.Dispatch(d.Body(), &Event{typ: "keydown", key: key})
}

// Submit dispatches a submit on a form.
func (d *Document) Submit(form dom.Element) *Event {
	return d.Dispatch(form, &Event{typ: "submit"})
}

// Dispatch delivers ev to the target, then each ancestor, then the document,
// until a listener stops propagation. Listeners on one node run in attachment
// order.
func (d *Document) Dispatch(target dom.Element, ev *Event) *Event {
	n := nodeOf(target)
	if n == nil {
		return ev
	}
	ev.target = d.wrapNode(n)
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		d.fire(d.listeners[cur], ev)
		if ev.stopped {
			return ev
		}
	}
	d.fire(d.docListeners, ev)
	return ev
}

func (d *Document) fire(list []*listener, ev *Event) {
	snapshot := append([]*listener(nil), list...)
	for _, l := range snapshot {
		if l.removed || l.event != ev.typ {
			continue
		}
		l.handler(ev)
	}
}
