package modal

import (
	"testing"

	"github.com/Its-donkey/ai-directory/internal/ui/htmldom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
)

const page = `<html><body>
<div id="successModal" class="modal">
  <div class="modal-content" id="content">
    <span id="modalClose" class="close">&times;</span>
    <h2 id="title">Submission received</h2>
    <button id="modalBtn">Got it</button>
  </div>
</div>
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

func TestCloseTriggers(t *testing.T) {
	for _, id := range []string{"modalClose", "modalBtn", "successModal"} {
		t.Run(id, func(t *testing.T) {
			doc, c := setup(t)
			c.Show()
			if !c.IsActive() {
				t.Fatal("show should activate the overlay")
			}
			doc.Click(doc.ByID(id))
			if c.IsActive() {
				t.Fatalf("click on %s should close the overlay", id)
			}
			doc.Click(doc.ByID(id))
			if c.IsActive() {
				t.Fatalf("repeat click on %s should keep it closed", id)
			}
		})
	}
}

func TestContentClickKeepsOverlayOpen(t *testing.T) {
	doc, c := setup(t)
	c.Show()
	doc.Click(doc.ByID("content"))
	doc.Click(doc.ByID("title"))
	if !c.IsActive() {
		t.Fatal("clicks inside the content should not close the overlay")
	}
}

func TestShowCloseSequence(t *testing.T) {
	doc, c := setup(t)
	if c.IsActive() {
		t.Fatal("overlay should start inactive")
	}
	c.Close()
	c.Show()
	c.Show()
	if !c.IsActive() {
		t.Fatal("overlay should be active")
	}
	c.Close()
	if c.IsActive() {
		t.Fatal("overlay should be inactive")
	}
	if got := doc.Listeners(); got != 3 {
		t.Fatalf("showing repeatedly should not add listeners, got %d", got)
	}
}

func TestMissingControlsAreTolerated(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><div id="successModal"><p id="msg">ok</p></div></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := Init(doc, model.DefaultHooks())
	c.Show()
	doc.Click(doc.ByID("successModal"))
	if c.IsActive() {
		t.Fatal("backdrop click should still close the overlay")
	}
}

func TestMissingOverlay(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := Init(doc, model.DefaultHooks())
	if c != nil {
		t.Fatal("expected nil controller")
	}
	c.Show()
	if c.IsActive() {
		t.Fatal("nil controller is never active")
	}
}
