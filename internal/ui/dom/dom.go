// Package dom defines the small slice of the browser document model the page
// controllers depend on. The browser binding lives in jsdom and an HTML-backed
// binding for tests and markup checks lives in htmldom.
package dom

// Handler receives a dispatched event.
type Handler func(Event)

// Event is a DOM event as seen by a listener.
type Event interface {
	Type() string
	// Target returns the element the event was dispatched to, or nil when the
	// target is not an element (for example the document itself).
	Target() Element
	// Key returns the key name for keyboard events and "" otherwise.
	Key() string
	PreventDefault()
	StopPropagation()
}

// Element is a single node in the document.
type Element interface {
	ID() string
	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
	// ToggleClass flips the class and reports whether it is now present.
	ToggleClass(name string) bool
	Text() string
	SetText(text string)
	Value() string
	SetValue(value string)
	Checked() bool
	Style(property string) string
	SetStyle(property, value string)
	// Contains reports whether other is this element or one of its descendants.
	Contains(other Element) bool
	// Is reports whether both handles refer to the same node.
	Is(other Element) bool
	QuerySelectorAll(selector string) []Element
	// Reset restores a form's controls to their markup defaults.
	Reset()
	// On attaches a listener and returns a function that detaches it.
	On(event string, handler Handler) func()
}

// Document is the page root. Lookups return a nil Element when nothing
// matches.
type Document interface {
	ByID(id string) Element
	QuerySelector(selector string) Element
	QuerySelectorAll(selector string) []Element
	Body() Element
	On(event string, handler Handler) func()
}

// Storage is a string key-value store that survives reloads.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Alerter raises an interruptive notification.
type Alerter interface {
	Alert(message string)
}

// IntersectionEntry reports a change in an observed element's visibility.
type IntersectionEntry struct {
	Target       Element
	Intersecting bool
	Ratio        float64
}

// ObserverOptions configures an intersection observer.
type ObserverOptions struct {
	Threshold  float64
	RootMargin string
}

// Observer watches elements for viewport intersection.
type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
	Disconnect()
}

// ObserverFactory builds an Observer that reports to callback. A nil factory
// means the runtime cannot observe intersections.
type ObserverFactory func(opts ObserverOptions, callback func([]IntersectionEntry)) Observer

// Present reports whether every element is non-nil.
func Present(elements ...Element) bool {
	for _, el := range elements {
		if el == nil {
			return false
		}
	}
	return true
}
