package emit

import (
	"errors"
	"time"
)

// Outcome is the per-handler result of a publish. A nil Err means the
// handler completed successfully.
type Outcome struct {
	// Event is the name the event was published under.
	Event Name

	// Position is the handler's index in the publish snapshot:
	// exact-match subscribers first, then wildcard subscribers, each in
	// registration order.
	Position int

	// Token identifies the subscription that was invoked.
	Token Token

	// Err is nil on success, a *HandlerError if the handler returned an
	// error, or a *PanicError if it panicked.
	Err error

	// Duration is how long the handler took to execute.
	Duration time.Duration
}

// Failed returns true if the handler returned an error or panicked.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Outcomes is the collected per-handler results of a single publish, in
// snapshot order.
type Outcomes []Outcome

// Ok returns true if every handler completed successfully. An empty
// outcome list is Ok.
func (os Outcomes) Ok() bool {
	for _, o := range os {
		if o.Failed() {
			return false
		}
	}
	return true
}

// Failed returns the subset of outcomes whose handlers failed.
func (os Outcomes) Failed() Outcomes {
	var failed Outcomes
	for _, o := range os {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Err joins the errors of all failed handlers, or returns nil if every
// handler succeeded. Callers that ignore it keep the default
// fire-and-continue semantics.
func (os Outcomes) Err() error {
	var errs []error
	for _, o := range os {
		if o.Failed() {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}
