package emit

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dshills/emit/dispatch"
)

// Emitter is a named-event publish/subscribe dispatcher. Producers
// publish events under a Name; every subscriber registered under that
// name, plus every Wildcard subscriber, receives the event.
//
// All methods are safe for concurrent use. Registration and removal
// never block on handler execution and may be called from inside a
// running handler.
type Emitter struct {
	registry *registry
	exec     *dispatch.Executor
	config   emitterConfig
	log      *slog.Logger

	// Stats
	eventsPublished   atomic.Uint64
	handlersInvoked   atomic.Uint64
	handlersSucceeded atomic.Uint64
	handlerErrors     atomic.Uint64
	handlerPanics     atomic.Uint64
}

// New creates an emitter with the given options.
func New(opts ...Option) *Emitter {
	config := defaultEmitterConfig()
	for _, opt := range opts {
		opt(&config)
	}

	em := &Emitter{
		registry: newRegistry(),
		config:   config,
		log:      config.logger,
	}

	execOpts := []dispatch.ExecutorOption{}
	if config.handlerTimeout > 0 {
		execOpts = append(execOpts, dispatch.WithTimeout(config.handlerTimeout))
	}
	if config.panicHandler != nil {
		// Adapt the dispatch signature: the executor passes the event
		// type-erased.
		ph := config.panicHandler
		execOpts = append(execOpts, dispatch.WithPanicHandler(func(event any, panicValue any, stack []byte) {
			ev, _ := event.(Event)
			ph(ev, panicValue, stack)
		}))
	}
	em.exec = dispatch.NewExecutor(execOpts...)

	return em
}

// Subscribe registers a persistent subscription for the given name and
// returns a token usable for later removal. The handler is never invoked
// during registration.
func (em *Emitter) Subscribe(name Name, h Handler, opts ...SubscribeOption) (Token, error) {
	if h == nil {
		return "", ErrNilHandler
	}
	if name == "" {
		return "", ErrInvalidName
	}

	sub := newSubscription(name, h, opts...)
	em.registry.add(sub)

	return sub.token, nil
}

// SubscribeOnce registers a subscription that fires at most one time
// total, even under concurrent or re-entrant publishes, and is then
// removed.
func (em *Emitter) SubscribeOnce(name Name, h Handler, opts ...SubscribeOption) (Token, error) {
	return em.Subscribe(name, h, append(opts, WithOnce())...)
}

// SubscribeFunc is a convenience method for subscribing with a function
// handler.
func (em *Emitter) SubscribeFunc(name Name, fn HandlerFunc, opts ...SubscribeOption) (Token, error) {
	if fn == nil {
		return "", ErrNilHandler
	}
	return em.Subscribe(name, fn, opts...)
}

// SubscribeOnceFunc is a convenience method for a one-shot function
// handler.
func (em *Emitter) SubscribeOnceFunc(name Name, fn HandlerFunc, opts ...SubscribeOption) (Token, error) {
	if fn == nil {
		return "", ErrNilHandler
	}
	return em.SubscribeOnce(name, fn, opts...)
}

// Unsubscribe removes the subscription for the token, if present, and
// reports whether it was. Removing an unknown token is a no-op, not an
// error, so callers may race freely with self-removing once
// subscriptions. Removal never cancels an invocation already in flight.
func (em *Emitter) Unsubscribe(tok Token) bool {
	return em.registry.remove(tok)
}

// Publish delivers an event to every subscriber registered under name
// plus every wildcard subscriber, each in its own goroutine, and waits
// for all of them to finish. The returned outcomes are in snapshot
// order: exact-match subscribers in registration order, then wildcard
// subscribers in registration order.
//
// Handler failures and panics are contained per handler and reported in
// the outcome list; Publish itself never fails. With no subscribers it
// returns an empty outcome list immediately.
func (em *Emitter) Publish(ctx context.Context, name Name, payload any) Outcomes {
	return em.publish(ctx, name, payload, dispatch.Concurrent)
}

// PublishSync is Publish with handlers executed sequentially in the
// caller's goroutine, in snapshot order. Later handlers still run after
// earlier failures.
func (em *Emitter) PublishSync(ctx context.Context, name Name, payload any) Outcomes {
	return em.publish(ctx, name, payload, dispatch.Sequential)
}

type fanout func(ctx context.Context, exec *dispatch.Executor, event any, handlers []dispatch.Handler) []dispatch.Result

func (em *Emitter) publish(ctx context.Context, name Name, payload any, run fanout) Outcomes {
	ev := newEvent(name, payload, em.config.source)

	// The snapshot is taken atomically under the registry lock and also
	// claims once entries, so later mutations never affect this publish.
	subs := em.registry.snapshot(ev)
	if len(subs) == 0 {
		return nil
	}

	em.eventsPublished.Add(1)

	handlers := make([]dispatch.Handler, len(subs))
	for i, sub := range subs {
		handlers[i] = handlerAdapter{h: sub.handler}
	}

	results := run(ctx, em.exec, ev, handlers)

	return em.collect(ev, subs, results)
}

// collect converts dispatch results into outcomes, updating stats and
// logging failures.
func (em *Emitter) collect(ev Event, subs []*subscription, results []dispatch.Result) Outcomes {
	outcomes := make(Outcomes, len(results))

	for i, result := range results {
		em.handlersInvoked.Add(1)

		outcome := Outcome{
			Event:    ev.Name,
			Position: i,
			Token:    subs[i].token,
			Duration: result.Duration,
		}

		switch {
		case result.Panicked:
			em.handlerPanics.Add(1)
			outcome.Err = &PanicError{
				Event:    ev.Name,
				Token:    subs[i].token,
				Position: i,
				Value:    result.PanicValue,
				Stack:    result.PanicStack,
			}
			em.log.Error("handler panic",
				"event", ev.Name,
				"token", subs[i].token,
				"position", i,
				"panic", result.PanicValue,
			)
		case result.Error != nil:
			em.handlerErrors.Add(1)
			outcome.Err = &HandlerError{
				Event:    ev.Name,
				Token:    subs[i].token,
				Position: i,
				Err:      result.Error,
			}
			em.log.Warn("handler error",
				"event", ev.Name,
				"token", subs[i].token,
				"position", i,
				"error", result.Error,
			)
		default:
			em.handlersSucceeded.Add(1)
		}

		outcomes[i] = outcome
	}

	return outcomes
}

// ListenerCount returns the number of exact-match subscriptions
// currently registered for name, paused ones included. Wildcard
// subscriptions are not counted against specific names; pass Wildcard to
// count them. Returns 0 for an unknown name.
func (em *Emitter) ListenerCount(name Name) int {
	return em.registry.count(name)
}

// EventNames returns every name (excluding the wildcard) with at least
// one registered subscription, in unspecified order.
func (em *Emitter) EventNames() []Name {
	return em.registry.names()
}

// RemoveAllListeners clears the sequences for the given names, or every
// sequence including the wildcard's when called with no arguments.
// Publishes already in flight are unaffected.
func (em *Emitter) RemoveAllListeners(names ...Name) {
	em.registry.clear(names...)
}

// Pause temporarily stops delivery to the subscription for the token.
// A paused subscription keeps its registry slot and registration order.
// Returns false if the token is unknown or the subscription is not
// active.
func (em *Emitter) Pause(tok Token) bool {
	sub, ok := em.registry.get(tok)
	if !ok {
		return false
	}
	return sub.pause()
}

// Resume restarts delivery to a paused subscription.
func (em *Emitter) Resume(tok Token) bool {
	sub, ok := em.registry.get(tok)
	if !ok {
		return false
	}
	return sub.resume()
}

// Stats returns current emitter statistics.
func (em *Emitter) Stats() Stats {
	return Stats{
		EventsPublished:   em.eventsPublished.Load(),
		HandlersInvoked:   em.handlersInvoked.Load(),
		HandlersSucceeded: em.handlersSucceeded.Load(),
		HandlerErrors:     em.handlerErrors.Load(),
		HandlerPanics:     em.handlerPanics.Load(),
		Subscriptions:     em.registry.total(),
	}
}

// handlerAdapter bridges the typed emit.Handler to the type-erased
// dispatch.Handler.
type handlerAdapter struct {
	h Handler
}

func (a handlerAdapter) Handle(ctx context.Context, event any) error {
	ev, _ := event.(Event)
	return a.h.Handle(ctx, ev)
}
