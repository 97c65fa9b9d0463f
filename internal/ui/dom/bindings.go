package dom

// Bindings collects listener removers so a controller can detach everything it
// attached in one call.
type Bindings struct {
	removers []func()
}

// On attaches handler to target and records the remover. A nil target is
// ignored.
func (b *Bindings) On(target Element, event string, handler Handler) {
	if target == nil {
		return
	}
	b.Add(target.On(event, handler))
}

// OnDocument attaches a document-level listener.
func (b *Bindings) OnDocument(doc Document, event string, handler Handler) {
	if doc == nil {
		return
	}
	b.Add(doc.On(event, handler))
}

// Add records a remover.
func (b *Bindings) Add(remove func()) {
	if remove == nil {
		return
	}
	b.removers = append(b.removers, remove)
}

// Len returns the number of attached listeners.
func (b *Bindings) Len() int {
	return len(b.removers)
}

// Release detaches every recorded listener. It is safe to call more than once.
func (b *Bindings) Release() {
	if b == nil {
		return
	}
	for _, remove := range b.removers {
		remove()
	}
	b.removers = b.removers[:0]
}
