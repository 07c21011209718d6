package emit

import (
	"time"

	"github.com/google/uuid"
)

// Name identifies an event. Names are opaque and compared only for
// equality; subscriptions are grouped under them.
type Name string

// Wildcard is the reserved Name that matches every published event.
// Subscriptions registered under it are invoked after the event's own
// exact-match subscriptions.
const Wildcard Name = "*"

// String returns the name as a string.
func (n Name) String() string {
	return string(n)
}

// IsWildcard returns true if the name is the reserved wildcard.
func (n Name) IsWildcard() bool {
	return n == Wildcard
}

// Event is the envelope delivered to handlers.
// Events are immutable once created.
type Event struct {
	// Name is the name the event was published under.
	Name Name

	// Payload contains the event-specific data.
	Payload any

	// ID is a unique identifier for this event instance.
	ID string

	// Time is when the event was published.
	Time time.Time

	// Source identifies the publisher, if the emitter was configured
	// with one.
	Source string
}

// newEvent creates an event envelope for a publish call.
func newEvent(name Name, payload any, source string) Event {
	return Event{
		Name:    name,
		Payload: payload,
		ID:      uuid.New().String(),
		Time:    time.Now(),
		Source:  source,
	}
}

// Token uniquely identifies a subscription for the lifetime of an
// Emitter. Tokens are never reused.
type Token string

// newToken generates a unique subscription token.
func newToken() Token {
	return Token(uuid.New().String())
}
