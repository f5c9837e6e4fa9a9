package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_DispatchByKind(t *testing.T) {
	bus := NewBus()

	var pointer, scroll int
	bus.Subscribe(PointerDown, func(Event) { pointer++ })
	bus.Subscribe(Scroll, func(e Event) { scroll++ })

	bus.Dispatch(Event{Kind: PointerDown})
	bus.Dispatch(Event{Kind: PointerDown})
	bus.Dispatch(Event{Kind: Scroll, ScrollY: 42})

	assert.Equal(t, 2, pointer)
	assert.Equal(t, 1, scroll)
}

func TestBus_UnsubscribeIsIdempotent(t *testing.T) {
	bus := NewBus()

	calls := 0
	sub := bus.Subscribe(PointerDown, func(Event) { calls++ })
	other := bus.Subscribe(PointerDown, func(Event) {})
	assert.Equal(t, 2, bus.Count(PointerDown))

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 1, bus.Count(PointerDown))

	bus.Dispatch(Event{Kind: PointerDown})
	assert.Zero(t, calls)

	other.Unsubscribe()
	assert.Zero(t, bus.Count(PointerDown))
}

func TestBus_HandlerMayUnsubscribeItself(t *testing.T) {
	bus := NewBus()

	var sub Subscription
	calls := 0
	sub = bus.Subscribe(PointerDown, func(Event) {
		calls++
		sub.Unsubscribe()
	})

	bus.Dispatch(Event{Kind: PointerDown})
	bus.Dispatch(Event{Kind: PointerDown})

	assert.Equal(t, 1, calls)
	assert.Zero(t, bus.Count(PointerDown))
}

func TestElement_Contains(t *testing.T) {
	root := NewElement("root", nil)
	menu := NewElement("menu", root)
	item := NewElement("item", menu)
	other := NewElement("other", root)

	assert.True(t, menu.Contains(menu))
	assert.True(t, menu.Contains(item))
	assert.True(t, root.Contains(item))
	assert.False(t, menu.Contains(other))
	assert.False(t, menu.Contains(root))
	assert.False(t, menu.Contains(nil))

	var missing *Element
	assert.False(t, missing.Contains(item))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "pointerdown", PointerDown.String())
	assert.Equal(t, "scroll", Scroll.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
