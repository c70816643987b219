package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ErrNotDeterministic is returned by Run when the engine refuses queries.
var ErrNotDeterministic = errors.New("automaton is not deterministic")

// Runner handles the query loop of an engine using the provided IO.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	// Handler is the strategy for IO.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Sanitizer checks every line before evaluation.
	Sanitizer Sanitizer
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sanitizer: NewSanitizer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r
}

// Run prints the verdict and, when the automaton is deterministic,
// evaluates lines until q, Q, end of input, or ctx cancellation.
// A non-deterministic automaton yields ErrNotDeterministic after the reasons are shown.
func (r *Runner) Run(ctx context.Context, eng Querier) error {
	verdict := eng.Verdict()
	if err := r.Handler.Verdict(ctx, verdict); err != nil {
		return fmt.Errorf("failed to write verdict: %w", err)
	}
	if !verdict.Deterministic() {
		return ErrNotDeterministic
	}

	for {
		line, err := r.Handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input exhausted")
				return nil
			}
			if errors.Is(err, context.Canceled) {
				r.Logger.Debug("query loop interrupted")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if IsQuit(line) {
			r.Logger.Debug("quit requested")
			return nil
		}

		if err := r.Sanitizer.Check(line); err != nil {
			r.Logger.Debug("input rejected", "err", err)
			if err := r.Handler.Rejected(ctx, line, err); err != nil {
				return fmt.Errorf("failed to write rejection: %w", err)
			}
			continue
		}

		res, explanation := eng.Explain(ctx, line)
		if err := r.Handler.Result(ctx, line, res, explanation); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
}

// IsQuit reports whether line is the quit command.
func IsQuit(line string) bool {
	return line == "q" || line == "Q"
}
