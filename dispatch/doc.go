// Package dispatch executes event handlers on behalf of the emitter.
//
// The package provides two fan-out strategies over a snapshot of
// handlers:
//
//   - Concurrent: every handler runs in its own goroutine and the call
//     waits for all of them to finish, regardless of individual outcome.
//
//   - Sequential: handlers run one at a time in the caller's goroutine,
//     in snapshot order. Later handlers still run after earlier failures.
//
// # Panic Recovery
//
// The Executor recovers from panics in handlers, so a misbehaving
// handler can never take down its siblings or the publisher. Panics are
// reported via a configurable PanicHandler callback and surface in the
// Result for that handler.
//
// # Context Support
//
// Execution respects context cancellation and deadlines. If a context is
// cancelled before a handler starts, the handler is skipped and its
// Result carries context.Canceled or context.DeadlineExceeded.
//
// # Usage
//
//	exec := dispatch.NewExecutor()
//	results := dispatch.Concurrent(ctx, exec, event, handlers)
//	for _, r := range results {
//	    if !r.IsSuccess() {
//	        // error, panic, or skip details are on r
//	    }
//	}
package dispatch
