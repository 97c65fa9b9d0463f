// Package htmldom implements the dom interfaces over parsed HTML so page
// controllers can run outside a browser. Class and text operations go through
// goquery; events are dispatched synthetically with bubbling.
package htmldom

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Its-donkey/ai-directory/internal/ui/dom"
)

// Document is an in-memory page.
type Document struct {
	doc          *goquery.Document
	values       map[*html.Node]string
	checked      map[*html.Node]bool
	styles       map[*html.Node]map[string]string
	listeners    map[*html.Node][]*listener
	docListeners []*listener
}

type listener struct {
	event   string
	handler dom.Handler
	removed bool
}

var _ dom.Document = (*Document)(nil)

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{
		doc:       doc,
		values:    make(map[*html.Node]string),
		checked:   make(map[*html.Node]bool),
		styles:    make(map[*html.Node]map[string]string),
		listeners: make(map[*html.Node][]*listener),
	}, nil
}

// ParseString parses markup held in memory.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Open parses the HTML file at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Element returns the element with the given id, or nil.
func (d *Document) Element(id string) *Element {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	// Match the attribute so ids that are not valid CSS identifiers still
	// resolve, as getElementById does.
	return d.first(d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == id
	}))
}

// ByID implements dom.Document.
func (d *Document) ByID(id string) dom.Element {
	if el := d.Element(id); el != nil {
		return el
	}
	return nil
}

// QuerySelector implements dom.Document.
func (d *Document) QuerySelector(selector string) dom.Element {
	if el := d.first(d.doc.Find(selector)); el != nil {
		return el
	}
	return nil
}

// QuerySelectorAll implements dom.Document.
func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	return d.wrapAll(d.doc.Find(selector))
}

// Body implements dom.Document.
func (d *Document) Body() dom.Element {
	if el := d.first(d.doc.Find("body")); el != nil {
		return el
	}
	return nil
}

// On implements dom.Document.
func (d *Document) On(event string, handler dom.Handler) func() {
	l := &listener{event: event, handler: handler}
	d.docListeners = append(d.docListeners, l)
	return func() { l.removed = true }
}

// Listeners returns the number of attached listeners across the page.
func (d *Document) Listeners() int {
	count := 0
	for _, l := range d.docListeners {
		if !l.removed {
			count++
		}
	}
	for _, list := range d.listeners {
		for _, l := range list {
			if !l.removed {
				count++
			}
		}
	}
	return count
}

func (d *Document) first(sel *goquery.Selection) *Element {
	if sel.Length() == 0 {
		return nil
	}
	return d.wrap(sel.First())
}

func (d *Document) wrap(sel *goquery.Selection) *Element {
	return &Element{doc: d, sel: sel, node: sel.Get(0)}
}

func (d *Document) wrapNode(n *html.Node) *Element {
	return &Element{doc: d, sel: d.doc.FindNodes(n), node: n}
}

func (d *Document) wrapAll(sel *goquery.Selection) []dom.Element {
	out := make([]dom.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, d.wrap(s))
	})
	return out
}

func nodeOf(el dom.Element) *html.Node {
	if e, ok := el.(*Element); ok && e != nil {
		return e.node
	}
	return nil
}
