package main

type EventKind int

const (
	EventMoved EventKind = iota
	EventScaled
	EventSelected
	EventDeselected
	EventEditingStarted
	EventEditingEnded
)

type Handler func(ref EntityRef)

type eventKey struct {
	id   EntityID
	kind EventKind
}

// Dispatcher is the per-entity listener table. Handlers run synchronously in
// subscription order on the caller's goroutine.
type Dispatcher struct {
	handlers map[eventKey][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[eventKey][]Handler)}
}

func (d *Dispatcher) On(id EntityID, kind EventKind, h Handler) {
	key := eventKey{id: id, kind: kind}
	d.handlers[key] = append(d.handlers[key], h)
}

func (d *Dispatcher) Emit(ref EntityRef, kind EventKind) {
	for _, h := range d.handlers[eventKey{id: ref.ID, kind: kind}] {
		h(ref)
	}
}

// Drop forgets every handler registered for id.
func (d *Dispatcher) Drop(id EntityID) {
	for key := range d.handlers {
		if key.id == id {
			delete(d.handlers, key)
		}
	}
}

func (d *Dispatcher) Subscribed(id EntityID, kind EventKind) bool {
	return len(d.handlers[eventKey{id: id, kind: kind}]) > 0
}
