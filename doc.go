// Package emit provides a named-event publish/subscribe dispatcher.
//
// The emitter decouples producers from consumers: components register
// interest in named events, and a single publish fans out to every
// interested subscriber without either side knowing about the other.
//
// # Event Names
//
// Events are grouped under opaque string names. The reserved Wildcard
// name ("*") matches every publish; wildcard subscribers are invoked
// after the event's own exact-match subscribers.
//
// # Subscriptions
//
// Subscribe returns a token for later removal. SubscribeOnce
// subscriptions fire at most one time total and then remove themselves,
// even under concurrent or re-entrant publishes. Unsubscribing an
// unknown token is a silent no-op, so callers may race freely with
// self-removing once subscriptions.
//
// # Publishing
//
// Publish snapshots the subscriber list atomically, launches every
// handler as its own goroutine, and waits for all of them to finish. A
// handler that fails or panics never affects its siblings or the
// publisher; per-handler results come back as an Outcomes list that
// callers may inspect or ignore. PublishSync runs the same contract
// sequentially in the caller's goroutine.
//
//	em := emit.New()
//	tok, _ := em.SubscribeFunc("buffer.saved", func(ctx context.Context, ev emit.Event) error {
//	    fmt.Println("saved:", ev.Payload)
//	    return nil
//	})
//
//	outcomes := em.Publish(ctx, "buffer.saved", "/tmp/notes.txt")
//	if err := outcomes.Err(); err != nil {
//	    log.Printf("some handlers failed: %v", err)
//	}
//
//	em.Unsubscribe(tok)
//
// # Re-entrancy
//
// Handlers run against the snapshot, never under the registry lock, so a
// handler may subscribe, unsubscribe, or publish without deadlocking the
// emitter. Mutations made inside a handler are visible to the next
// publish, not the one in flight.
//
// # Thread Safety
//
// The Emitter and all public types are safe for concurrent use.
// Concurrent publishes operate on independent snapshots and interleave
// freely. Individual handlers must manage their own thread safety.
//
// # Subpackages
//
//   - dispatch: panic-isolating handler execution and fan-out strategies
package emit
