//go:build js && wasm

// Command site-wasm is the page-behaviour binary loaded by the directory site.
// Build with GOOS=js GOARCH=wasm.
package main

import "github.com/Its-donkey/ai-directory/internal/ui/wasm"

func main() {
	wasm.RunApp()
}
