package emit

import "sync/atomic"

// SubscriptionState represents the state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionStateActive means the subscription is receiving events.
	SubscriptionStateActive SubscriptionState = iota

	// SubscriptionStatePaused means the subscription is temporarily not
	// receiving events. It keeps its registry slot and registration order.
	SubscriptionStatePaused

	// SubscriptionStateCancelled means the subscription has been removed.
	SubscriptionStateCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateActive:
		return "active"
	case SubscriptionStatePaused:
		return "paused"
	case SubscriptionStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// SubscribeOption configures a subscription.
type SubscribeOption func(*subscribeConfig)

type subscribeConfig struct {
	filter FilterFunc
	once   bool
}

// WithFilter sets a filter predicate. Events rejected by the filter are
// not delivered to the subscription and do not consume a once
// subscription.
func WithFilter(f FilterFunc) SubscribeOption {
	return func(c *subscribeConfig) {
		c.filter = f
	}
}

// WithOnce marks the subscription for removal after its first delivery.
// Subscribe with WithOnce is equivalent to SubscribeOnce.
func WithOnce() SubscribeOption {
	return func(c *subscribeConfig) {
		c.once = true
	}
}

// subscription is a registered (name, handler) pair. It is owned
// exclusively by the registry and appears in exactly one sequence.
type subscription struct {
	token   Token
	name    Name
	handler Handler
	filter  FilterFunc
	once    bool
	state   atomic.Int32
}

func newSubscription(name Name, h Handler, opts ...SubscribeOption) *subscription {
	var cfg subscribeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &subscription{
		token:   newToken(),
		name:    name,
		handler: h,
		filter:  cfg.filter,
		once:    cfg.once,
	}
	s.state.Store(int32(SubscriptionStateActive))
	return s
}

// State returns the current subscription state.
func (s *subscription) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

func (s *subscription) isActive() bool {
	return s.State() == SubscriptionStateActive
}

// pause temporarily stops delivery. Only an active subscription can be
// paused.
func (s *subscription) pause() bool {
	return s.state.CompareAndSwap(int32(SubscriptionStateActive), int32(SubscriptionStatePaused))
}

// resume restarts delivery. Only a paused subscription can be resumed.
func (s *subscription) resume() bool {
	return s.state.CompareAndSwap(int32(SubscriptionStatePaused), int32(SubscriptionStateActive))
}

// cancel marks the subscription removed. Cancellation does not affect
// invocations already in flight.
func (s *subscription) cancel() {
	s.state.Store(int32(SubscriptionStateCancelled))
}

// shouldDeliver reports whether the event should reach this
// subscription's handler.
func (s *subscription) shouldDeliver(ev Event) bool {
	if !s.isActive() {
		return false
	}
	if s.filter != nil && !s.filter(ev) {
		return false
	}
	return true
}
