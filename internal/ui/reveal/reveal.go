// Package reveal fades in marked elements as they scroll into view.
package reveal

import (
	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
)

// Observer settings: fire once a tenth of the element is visible, measured
// against a viewport shortened by 50px at the bottom.
const (
	Threshold  = 0.1
	RootMargin = "0px 0px -50px 0px"
)

// Strategy names how elements are revealed.
type Strategy string

const (
	StrategyObserved  Strategy = "observed"
	StrategyImmediate Strategy = "immediate"
)

// Controller reveals one set of elements.
type Controller struct {
	strategy Strategy
	observer dom.Observer
	revealed int
}

// Init collects the elements matching hooks.Reveal. With a nil factory every
// element is revealed at once; otherwise each is revealed on its first
// intersection and then dropped from observation.
func Init(doc dom.Document, hooks model.Hooks, observers dom.ObserverFactory) *Controller {
	elements := doc.QuerySelectorAll(hooks.Reveal)
	if observers == nil {
		c := &Controller{strategy: StrategyImmediate}
		for _, el := range elements {
			c.reveal(el)
		}
		return c
	}

	c := &Controller{strategy: StrategyObserved}
	c.observer = observers(dom.ObserverOptions{Threshold: Threshold, RootMargin: RootMargin}, c.handle)
	for _, el := range elements {
		c.observer.Observe(el)
	}
	return c
}

func (c *Controller) handle(entries []dom.IntersectionEntry) {
	for _, entry := range entries {
		if !entry.Intersecting || entry.Target == nil {
			continue
		}
		c.reveal(entry.Target)
		c.observer.Unobserve(entry.Target)
	}
}

// reveal flags el. The flag is never removed.
func (c *Controller) reveal(el dom.Element) {
	if el.HasClass(model.VisibleClass) {
		return
	}
	el.AddClass(model.VisibleClass)
	c.revealed++
}

// Strategy reports which strategy Init selected.
func (c *Controller) Strategy() Strategy {
	if c == nil {
		return ""
	}
	return c.strategy
}

// Revealed counts the elements this controller has revealed.
func (c *Controller) Revealed() int {
	if c == nil {
		return 0
	}
	return c.revealed
}

// Release stops observing. Revealed elements stay revealed.
func (c *Controller) Release() {
	if c == nil || c.observer == nil {
		return
	}
	c.observer.Disconnect()
}
