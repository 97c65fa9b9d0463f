//go:build js && wasm

// Package wasm boots the page controllers inside the browser.
package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/ai-directory/internal/ui/app"
	"github.com/Its-donkey/ai-directory/internal/ui/jsdom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
	"github.com/Its-donkey/ai-directory/logging"
)

// Source tags every log entry written from the browser.
const Source = "ai-directory-wasm"

// RunApp initialises the page once the document is ready and blocks forever.
func RunApp() {
	done := make(chan struct{})
	doc := jsdom.Global()
	logger := logging.New(Source, logging.INFO, jsdom.ConsoleWriter{})

	start := func() {
		app.Init(doc, app.Env{
			Hooks:     model.DefaultHooks(),
			Storage:   jsdom.NewLocalStorage(),
			Alerter:   jsdom.WindowAlerter{},
			Observers: jsdom.ObserverFactory(),
			Logger:    logger,
		})
	}

	if doc.ReadyState() == "loading" {
		var ready js.Func
		ready = js.FuncOf(func(js.Value, []js.Value) any {
			js.Global().Get("document").Call("removeEventListener", "DOMContentLoaded", ready)
			ready.Release()
			start()
			return nil
		})
		js.Global().Get("document").Call("addEventListener", "DOMContentLoaded", ready)
	} else {
		start()
	}
	<-done
}
