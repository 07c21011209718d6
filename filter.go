package emit

import "github.com/gobwas/glob"

// Common filter predicates for event subscription. Filters run at
// snapshot time under the registry lock, so they should be cheap and
// must not call back into the emitter.

// FilterName creates a filter that only allows events whose name matches
// the glob pattern, with '.' as the segment separator. This is mainly
// useful on wildcard subscriptions that want to scope themselves to a
// family of names:
//
//	em.Subscribe(emit.Wildcard, h, emit.WithFilter(emit.MustFilterName("buffer.*")))
func FilterName(pattern string) (FilterFunc, error) {
	g, err := glob.Compile(pattern, '.')
	if err != nil {
		return nil, err
	}
	return func(ev Event) bool {
		return g.Match(string(ev.Name))
	}, nil
}

// MustFilterName is FilterName but panics on an invalid pattern.
// Intended for patterns known at compile time.
func MustFilterName(pattern string) FilterFunc {
	f, err := FilterName(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// FilterSource creates a filter that only allows events stamped with the
// given source.
func FilterSource(source string) FilterFunc {
	return func(ev Event) bool {
		return ev.Source == source
	}
}

// FilterPayload creates a filter that only allows events whose payload
// is of type T.
func FilterPayload[T any]() FilterFunc {
	return func(ev Event) bool {
		_, ok := ev.Payload.(T)
		return ok
	}
}

// And combines filters; the event must pass all of them.
func And(filters ...FilterFunc) FilterFunc {
	return func(ev Event) bool {
		for _, f := range filters {
			if !f(ev) {
				return false
			}
		}
		return true
	}
}

// Or combines filters; the event must pass at least one.
func Or(filters ...FilterFunc) FilterFunc {
	return func(ev Event) bool {
		for _, f := range filters {
			if f(ev) {
				return true
			}
		}
		return false
	}
}

// Not inverts a filter.
func Not(f FilterFunc) FilterFunc {
	return func(ev Event) bool {
		return !f(ev)
	}
}
