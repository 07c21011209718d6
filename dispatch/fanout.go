package dispatch

import (
	"context"

	"github.com/sourcegraph/conc"
)

// Concurrent executes every handler in its own goroutine and waits for
// all of them to finish. Results are returned in handler order; the
// relative completion order of the handlers themselves is unspecified.
//
// A handler that fails or panics never prevents its siblings from
// running. The executor recovers every panic into the corresponding
// Result, so nothing propagates out of Wait.
func Concurrent(ctx context.Context, exec *Executor, event any, handlers []Handler) []Result {
	if len(handlers) == 0 {
		return nil
	}

	results := make([]Result, len(handlers))

	var wg conc.WaitGroup
	for i, handler := range handlers {
		i, handler := i, handler
		wg.Go(func() {
			results[i] = exec.Execute(ctx, event, handler)
		})
	}
	wg.Wait()

	return results
}

// Sequential executes handlers one at a time in the caller's goroutine,
// in handler order. Later handlers still run after earlier failures.
//
// If the context is cancelled between handlers, the remaining handlers
// are marked skipped rather than executed.
func Sequential(ctx context.Context, exec *Executor, event any, handlers []Handler) []Result {
	if len(handlers) == 0 {
		return nil
	}

	results := make([]Result, len(handlers))

	for i, handler := range handlers {
		select {
		case <-ctx.Done():
			for j := i; j < len(handlers); j++ {
				results[j] = Result{
					Success: false,
					Error:   ctx.Err(),
					Skipped: true,
				}
			}
			return results
		default:
		}

		results[i] = exec.Execute(ctx, event, handler)
	}

	return results
}
