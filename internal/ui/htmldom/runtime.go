package htmldom

import (
	"golang.org/x/net/html"

	"github.com/Its-donkey/ai-directory/internal/ui/dom"
)

// MemoryStorage is a map-backed dom.Storage.
type MemoryStorage struct {
	values map[string]string
}

// NewMemoryStorage returns an empty store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.values[key] = value
}

// Alerts records every alert instead of blocking.
type Alerts struct {
	Messages []string
}

func (a *Alerts) Alert(message string) {
	a.Messages = append(a.Messages, message)
}

// Observers hands out ManualObservers and remembers them.
type Observers struct {
	Created []*ManualObserver
}

// Factory returns a dom.ObserverFactory backed by o.
func (o *Observers) Factory() dom.ObserverFactory {
	return func(opts dom.ObserverOptions, callback func([]dom.IntersectionEntry)) dom.Observer {
		m := &ManualObserver{
			opts:     opts,
			callback: callback,
			observed: make(map[*html.Node]bool),
		}
		o.Created = append(o.Created, m)
		return m
	}
}

// ManualObserver delivers intersection entries when told to.
type ManualObserver struct {
	opts         dom.ObserverOptions
	callback     func([]dom.IntersectionEntry)
	observed     map[*html.Node]bool
	disconnected bool
}

func (m *ManualObserver) Observe(el dom.Element) {
	if n := nodeOf(el); n != nil && !m.disconnected {
		m.observed[n] = true
	}
}

func (m *ManualObserver) Unobserve(el dom.Element) {
	delete(m.observed, nodeOf(el))
}

func (m *ManualObserver) Disconnect() {
	m.observed = make(map[*html.Node]bool)
	m.disconnected = true
}

// Options returns the options the observer was built with.
func (m *ManualObserver) Options() dom.ObserverOptions {
	return m.opts
}

// Observing reports whether el is being watched.
func (m *ManualObserver) Observing(el dom.Element) bool {
	return m.observed[nodeOf(el)]
}

// Watched returns the number of watched elements.
func (m *ManualObserver) Watched() int {
	return len(m.observed)
}

// Scroll reports that ratio of el is in view. The entry is delivered only
// while el is observed, and counts as intersecting once ratio reaches the
// threshold. It returns whether a callback ran.
func (m *ManualObserver) Scroll(el dom.Element, ratio float64) bool {
	if !m.Observing(el) {
		return false
	}
	m.callback([]dom.IntersectionEntry{{
		Target:       el,
		Intersecting: ratio > 0 && ratio >= m.opts.Threshold,
		Ratio:        ratio,
	}})
	return true
}
