package tiles

import (
	"log/slog"
	"time"
)

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets the logger used for the fps line. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) LoopOption {
	return func(l *Loop) { l.now = now }
}

// WithResize toggles forwarding of resize events to the scene.
func WithResize(enabled bool) LoopOption {
	return func(l *Loop) { l.resize = enabled }
}

// WithTeardown appends a hook run once after the loop stops.
// Hooks run in the order they were added.
func WithTeardown(fn func()) LoopOption {
	return func(l *Loop) { l.teardown = append(l.teardown, fn) }
}
