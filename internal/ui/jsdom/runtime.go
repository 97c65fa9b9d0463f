//go:build js && wasm

package jsdom

import (
	"strings"
	"syscall/js"

	"github.com/Its-donkey/ai-directory/internal/ui/dom"
)

// LocalStorage is window.localStorage. Browsers may throw on access (private
// mode, blocked cookies); every failure reads as an absent value.
type LocalStorage struct {
	v js.Value
}

// NewLocalStorage returns nil when localStorage is unavailable.
func NewLocalStorage() (storage *LocalStorage) {
	defer func() {
		if r := recover(); r != nil {
			storage = nil
		}
	}()
	v := js.Global().Get("localStorage")
	if !v.Truthy() {
		return nil
	}
	return &LocalStorage{v: v}
}

func (s *LocalStorage) Get(key string) (value string, ok bool) {
	if s == nil {
		return "", false
	}
	defer func() {
		if r := recover(); r != nil {
			value, ok = "", false
		}
	}()
	item := s.v.Call("getItem", key)
	if item.Type() != js.TypeString {
		return "", false
	}
	return item.String(), true
}

func (s *LocalStorage) Set(key, value string) {
	if s == nil {
		return
	}
	defer func() { _ = recover() }()
	s.v.Call("setItem", key, value)
}

// WindowAlerter uses window.alert.
type WindowAlerter struct{}

func (WindowAlerter) Alert(message string) {
	js.Global().Call("alert", message)
}

// ObserverFactory returns a factory backed by IntersectionObserver, or nil
// when the browser lacks it.
func ObserverFactory() dom.ObserverFactory {
	ctor := js.Global().Get("IntersectionObserver")
	if ctor.Type() != js.TypeFunction {
		return nil
	}
	return func(opts dom.ObserverOptions, callback func([]dom.IntersectionEntry)) dom.Observer {
		o := &observer{}
		o.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) == 0 {
				return nil
			}
			list := args[0]
			length := list.Length()
			entries := make([]dom.IntersectionEntry, 0, length)
			for i := 0; i < length; i++ {
				entry := list.Index(i)
				entries = append(entries, dom.IntersectionEntry{
					Target:       wrap(entry.Get("target")),
					Intersecting: entry.Get("isIntersecting").Bool(),
					Ratio:        entry.Get("intersectionRatio").Float(),
				})
			}
			callback(entries)
			return nil
		})
		o.v = ctor.New(o.fn, map[string]any{
			"threshold":  opts.Threshold,
			"rootMargin": opts.RootMargin,
		})
		return o
	}
}

type observer struct {
	v  js.Value
	fn js.Func
}

func (o *observer) Observe(el dom.Element) {
	if e, ok := el.(*Element); ok && e != nil {
		o.v.Call("observe", e.v)
	}
}

func (o *observer) Unobserve(el dom.Element) {
	if e, ok := el.(*Element); ok && e != nil {
		o.v.Call("unobserve", e.v)
	}
}

func (o *observer) Disconnect() {
	o.v.Call("disconnect")
	o.fn.Release()
}

// ConsoleWriter sends each log line to the developer console.
type ConsoleWriter struct{}

func (ConsoleWriter) Write(p []byte) (int, error) {
	console := js.Global().Get("console")
	if console.Truthy() {
		console.Call("log", strings.TrimRight(string(p), "\n"))
	}
	return len(p), nil
}
