// Package events models the document-level event stream the storefront
// components listen to (pointer presses and scrolling).
package events

import "sync"

type Kind int

const (
	PointerDown Kind = iota + 1
	Scroll
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case Scroll:
		return "scroll"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind    Kind
	Target  *Element
	ScrollY float64
}

type Handler func(Event)

// Subscription removes its handler from the bus. Unsubscribe may be called
// any number of times.
type Subscription interface {
	Unsubscribe()
}

type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[Kind]map[uint64]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind]map[uint64]Handler)}
}

func (b *Bus) Subscribe(kind Kind, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.handlers[kind] == nil {
		b.handlers[kind] = make(map[uint64]Handler)
	}
	b.handlers[kind][id] = h

	return &subscription{bus: b, kind: kind, id: id}
}

// Dispatch delivers e to every handler registered for its kind. Handlers run
// without the bus lock held, so they may subscribe or unsubscribe.
func (b *Bus) Dispatch(e Event) {
	b.mu.Lock()
	hs := make([]Handler, 0, len(b.handlers[e.Kind]))
	for _, h := range b.handlers[e.Kind] {
		hs = append(hs, h)
	}
	b.mu.Unlock()

	for _, h := range hs {
		h(e)
	}
}

// Count reports how many handlers are registered for kind.
func (b *Bus) Count(kind Kind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[kind])
}

func (b *Bus) remove(kind Kind, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers[kind], id)
	if len(b.handlers[kind]) == 0 {
		delete(b.handlers, kind)
	}
}

type subscription struct {
	once sync.Once
	bus  *Bus
	kind Kind
	id   uint64
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() { s.bus.remove(s.kind, s.id) })
}
