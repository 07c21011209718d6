package emit

import (
	"errors"
	"fmt"
)

// Sentinel errors for the emitter.
var (
	// ErrNilHandler is returned when a nil handler is provided to
	// Subscribe or SubscribeOnce.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrInvalidName is returned when an empty event name is provided
	// to Subscribe or SubscribeOnce.
	ErrInvalidName = errors.New("invalid event name")

	// ErrHandlerPanic is the class error matched by errors.Is against a
	// PanicError.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError wraps an error returned by a handler during publish with
// the position it held in the publish snapshot.
type HandlerError struct {
	// Event is the name the event was published under.
	Event Name

	// Token is the subscription whose handler failed.
	Token Token

	// Position is the handler's index in the publish snapshot.
	Position int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler error for event %q (position %d): %v", e.Event, e.Position, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a recovered handler panic as an error.
type PanicError struct {
	// Event is the name the event was published under.
	Event Name

	// Token is the subscription whose handler panicked.
	Token Token

	// Position is the handler's index in the publish snapshot.
	Position int

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic for event %q (position %d): %v", e.Event, e.Position, e.Value)
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
