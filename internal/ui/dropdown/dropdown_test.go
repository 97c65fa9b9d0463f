package dropdown

import (
	"testing"

	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/htmldom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
)

const page = `<html><body>
<div class="dropdown">
  <a href="#" class="dropbtn" id="trigger">Categories</a>
  <div class="dropdown-menu">
    <a id="item" href="/chat.html">Chat</a>
    <span id="label">Browse</span>
  </div>
</div>
<main id="outside"><p id="para">Listings</p></main>
</body></html>`

func setup(t *testing.T) (*htmldom.Document, *Controller) {
	t.Helper()
	doc, err := htmldom.ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := Init(doc, model.DefaultHooks())
	if c == nil {
		t.Fatal("expected controller")
	}
	return doc, c
}

func TestTriggerTogglesAndSuppressesDefault(t *testing.T) {
	doc, c := setup(t)
	var documentSaw bool
	doc.On("click", func(dom.Event) { documentSaw = true })

	ev := doc.Click(doc.ByID("trigger"))
	if !c.IsOpen() {
		t.Fatal("trigger click should open")
	}
	if !ev.DefaultPrevented() || !ev.Stopped() {
		t.Fatal("trigger click should prevent default and stop propagation")
	}
	if documentSaw {
		t.Fatal("trigger click should not reach document listeners")
	}
	doc.Click(doc.ByID("trigger"))
	if c.IsOpen() {
		t.Fatal("second trigger click should close")
	}
}

func TestEveryCloseTrigger(t *testing.T) {
	cases := []struct {
		name  string
		close func(doc *htmldom.Document)
	}{
		{name: "outside click", close: func(doc *htmldom.Document) { doc.Click(doc.ByID("para")) }},
		{name: "escape", close: func(doc *htmldom.Document) { doc.KeyDown(EscapeKey) }},
		{name: "item click", close: func(doc *htmldom.Document) { doc.Click(doc.ByID("item")) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, c := setup(t)
			doc.Click(doc.ByID("trigger"))
			if !c.IsOpen() {
				t.Fatal("expected open menu")
			}
			tc.close(doc)
			if c.IsOpen() {
				t.Fatalf("%s should close the menu", tc.name)
			}
			tc.close(doc)
			if c.IsOpen() {
				t.Fatalf("%s on a closed menu should leave it closed", tc.name)
			}
		})
	}
}

func TestInsideClickAndOtherKeysKeepMenuOpen(t *testing.T) {
	doc, c := setup(t)
	doc.Click(doc.ByID("trigger"))
	doc.Click(doc.ByID("label"))
	if !c.IsOpen() {
		t.Fatal("click inside the dropdown should not close it")
	}
	doc.KeyDown("Enter")
	if !c.IsOpen() {
		t.Fatal("non-escape keys should not close it")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	_, c := setup(t)
	c.Close()
	c.Close()
	if c.IsOpen() {
		t.Fatal("closing a closed menu should keep it closed")
	}
	c.Toggle()
	c.Close()
	c.Close()
	if c.IsOpen() {
		t.Fatal("menu should be closed")
	}
}

func TestMissingTriggerDisablesController(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><div class="dropdown"></div></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c := Init(doc, model.DefaultHooks()); c != nil {
		t.Fatal("expected nil controller")
	}
	if doc.Listeners() != 0 {
		t.Fatal("no listeners should be attached")
	}
}

func TestReleaseRemovesDocumentListeners(t *testing.T) {
	doc, c := setup(t)
	c.Release()
	if doc.Listeners() != 0 {
		t.Fatalf("expected no listeners, got %d", doc.Listeners())
	}
}
