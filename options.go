package emit

import (
	"io"
	"log/slog"
	"time"
)

// Option configures an Emitter.
type Option func(*emitterConfig)

// emitterConfig contains configuration for the emitter.
type emitterConfig struct {
	// handlerTimeout bounds each handler invocation. Zero means no
	// timeout, which is the default contract.
	handlerTimeout time.Duration

	// logger receives handler failure and panic reports.
	logger *slog.Logger

	// panicHandler is called when a handler panics.
	panicHandler PanicHandler

	// source is stamped on every published event's envelope.
	source string
}

func defaultEmitterConfig() emitterConfig {
	return emitterConfig{
		handlerTimeout: 0,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithHandlerTimeout bounds each handler invocation with a timeout.
// Handlers must respect context cancellation for the timeout to take
// effect. The default is no timeout.
func WithHandlerTimeout(timeout time.Duration) Option {
	return func(c *emitterConfig) {
		if timeout > 0 {
			c.handlerTimeout = timeout
		}
	}
}

// WithLogger sets the logger for handler failure and panic reports.
// The emitter is silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(c *emitterConfig) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithPanicHandler sets a callback invoked when a handler panics.
// The panic is contained either way; the callback is observational.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *emitterConfig) {
		c.panicHandler = h
	}
}

// WithSource sets the source stamped on published event envelopes.
func WithSource(source string) Option {
	return func(c *emitterConfig) {
		c.source = source
	}
}
