package autoclose

import (
	"slices"
	"sync"
)

// Listener receives events of the kind it was subscribed to.
type Listener func(Event)

// EventSource is a document-level event target.
type EventSource interface {
	// Subscribe registers fn for events of kind and returns a function that
	// removes the registration. The returned function is safe to call more
	// than once.
	Subscribe(kind EventKind, fn Listener) (unsubscribe func())
}

// Dispatcher is an in-memory EventSource. Adapters feed it normalized events
// with Dispatch; every coordinator started on it sees the same stream.
//
// Dispatcher is safe for concurrent use. Listeners are invoked outside of the
// internal lock, so a listener may unsubscribe itself or others.
type Dispatcher struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[EventKind][]registration
}

type registration struct {
	id uint64
	fn Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventKind][]registration),
	}
}

// Subscribe - implements EventSource.
func (d *Dispatcher) Subscribe(kind EventKind, fn Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listeners == nil {
		d.listeners = make(map[EventKind][]registration)
	}

	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], registration{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(kind, id) })
	}
}

// Dispatch delivers e to listeners of e.Kind in registration order.
func (d *Dispatcher) Dispatch(e Event) {
	d.mu.Lock()
	snapshot := slices.Clone(d.listeners[e.Kind])
	d.mu.Unlock()

	for _, r := range snapshot {
		r.fn(e)
	}
}

// Len returns the number of listeners registered for kind.
func (d *Dispatcher) Len(kind EventKind) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.listeners[kind])
}

func (d *Dispatcher) remove(kind EventKind, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.listeners[kind] = slices.DeleteFunc(d.listeners[kind], func(r registration) bool {
		return r.id == id
	})
}

var _ EventSource = (*Dispatcher)(nil)
