package emit

import "context"

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes an event. Returning an error marks the handler's
	// outcome as failed without affecting sibling handlers.
	Handle(ctx context.Context, ev Event) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, ev Event) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// FilterFunc is a predicate for filtering events before delivery.
// Return true to allow the event, false to filter it out.
type FilterFunc func(ev Event) bool

// PanicHandler is called when a handler panics during publish.
// The panic is already contained; the callback is observational.
type PanicHandler func(ev Event, panicValue any, stack []byte)

// Stats contains emitter statistics.
type Stats struct {
	// EventsPublished is the number of publishes that reached at least
	// one subscriber.
	EventsPublished uint64

	// HandlersInvoked is the total number of handler executions.
	HandlersInvoked uint64

	// HandlersSucceeded is the number of handler executions that
	// completed without error or panic.
	HandlersSucceeded uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64

	// Subscriptions is the current number of registered subscriptions,
	// including paused ones and the wildcard sequence.
	Subscriptions int
}
