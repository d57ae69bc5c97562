// Package event provides a typed in-process event bus. Systems emit events
// while a turn resolves; the journal phase dispatches them to subscribers at
// the end of the turn, so handlers always observe settled world state.
package event

import "reflect"

// Bus queues typed events until DispatchAll is called.
// Single-goroutine access only (game loop).
type Bus struct {
	queued   map[reflect.Type][]any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		queued:   make(map[reflect.Type][]any),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues an event for end-of-turn dispatch.
func Emit[T any](b *Bus, ev T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.queued[t] = append(b.queued[t], ev)
}

// Subscribe registers a handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(ev any) {
		fn(ev.(T))
	})
}

// DispatchAll delivers every queued event in emit order per type, then
// clears the queue. Events emitted during dispatch are delivered in the same
// pass, so a handler chain settles within one turn.
func (b *Bus) DispatchAll() {
	for {
		delivered := false
		for t, events := range b.queued {
			if len(events) == 0 {
				continue
			}
			b.queued[t] = nil
			for _, ev := range events {
				for _, h := range b.handlers[t] {
					h(ev)
				}
			}
			delivered = true
		}
		if !delivered {
			return
		}
	}
}

// Pending returns the number of undispatched events.
func (b *Bus) Pending() int {
	n := 0
	for _, events := range b.queued {
		n += len(events)
	}
	return n
}
