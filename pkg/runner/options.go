package runner

import "log/slog"

// Option configures a Runner.
type Option func(*Runner)

// WithHandler sets the IO strategy.
func WithHandler(h IOHandler) Option {
	return func(r *Runner) {
		r.Handler = h
	}
}

// WithLogger sets the internal logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.Logger = l
		}
	}
}

// WithMaxInputSize overrides the sanitizer limit.
func WithMaxInputSize(n int) Option {
	return func(r *Runner) {
		r.Sanitizer.MaxSize = n
	}
}
