package emit

import "sync"

// registry holds subscriptions grouped by event name, in registration
// order. The wildcard sequence is kept separately from the exact-match
// sequences. All methods are safe for concurrent use; handlers never run
// while the registry lock is held.
type registry struct {
	mu      sync.RWMutex
	exact   map[Name][]*subscription
	wild    []*subscription
	byToken map[Token]*subscription
}

func newRegistry() *registry {
	return &registry{
		exact:   make(map[Name][]*subscription),
		byToken: make(map[Token]*subscription),
	}
}

// add appends a subscription to its sequence.
func (r *registry) add(sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sub.name == Wildcard {
		r.wild = append(r.wild, sub)
	} else {
		r.exact[sub.name] = append(r.exact[sub.name], sub)
	}
	r.byToken[sub.token] = sub
}

// remove removes a subscription by token. Returns false if the token is
// unknown; that is not an error condition.
func (r *registry) remove(tok Token) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byToken[tok]
	if !ok {
		return false
	}
	r.removeLocked(sub)
	return true
}

// removeLocked unlinks a subscription from its sequence and the token
// index. Empty exact-match sequences are dropped from the map so
// EventNames never reports a name with no subscribers.
func (r *registry) removeLocked(sub *subscription) {
	sub.cancel()

	if sub.name == Wildcard {
		for i, s := range r.wild {
			if s.token == sub.token {
				r.wild = append(r.wild[:i], r.wild[i+1:]...)
				break
			}
		}
	} else {
		subs := r.exact[sub.name]
		for i, s := range subs {
			if s.token == sub.token {
				r.exact[sub.name] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		if len(r.exact[sub.name]) == 0 {
			delete(r.exact, sub.name)
		}
	}

	delete(r.byToken, sub.token)
}

// snapshot returns the deliverable subscriber list for an event: the
// exact-match sequence followed by the wildcard sequence, each in
// registration order. Once subscriptions included in the snapshot are
// removed from the live registry before the snapshot is returned, so a
// concurrent or re-entrant publish can never claim them again.
func (r *registry) snapshot(ev Event) []*subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	var snap []*subscription
	for _, sub := range r.exact[ev.Name] {
		if sub.shouldDeliver(ev) {
			snap = append(snap, sub)
		}
	}
	for _, sub := range r.wild {
		if sub.shouldDeliver(ev) {
			snap = append(snap, sub)
		}
	}

	for _, sub := range snap {
		if sub.once {
			r.removeLocked(sub)
		}
	}

	return snap
}

// get returns a subscription by token.
func (r *registry) get(tok Token) (*subscription, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.byToken[tok]
	return sub, ok
}

// count returns the number of subscriptions registered under a name.
// Wildcard subscriptions are only counted when asked for directly.
func (r *registry) count(name Name) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == Wildcard {
		return len(r.wild)
	}
	return len(r.exact[name])
}

// total returns the number of registered subscriptions, wildcard
// included.
func (r *registry) total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byToken)
}

// names returns every exact-match name with at least one subscription.
// Order is unspecified.
func (r *registry) names() []Name {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.exact) == 0 {
		return nil
	}

	names := make([]Name, 0, len(r.exact))
	for n := range r.exact {
		names = append(names, n)
	}
	return names
}

// clear removes the sequences for the given names, or every sequence
// including the wildcard's when called with no names.
func (r *registry) clear(names ...Name) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(names) == 0 {
		for _, sub := range r.byToken {
			sub.cancel()
		}
		r.exact = make(map[Name][]*subscription)
		r.wild = nil
		r.byToken = make(map[Token]*subscription)
		return
	}

	for _, name := range names {
		if name == Wildcard {
			for _, sub := range r.wild {
				sub.cancel()
				delete(r.byToken, sub.token)
			}
			r.wild = nil
			continue
		}
		for _, sub := range r.exact[name] {
			sub.cancel()
			delete(r.byToken, sub.token)
		}
		delete(r.exact, name)
	}
}
