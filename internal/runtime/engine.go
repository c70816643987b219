package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KongaYvan/Automates/pkg/domain"
)

// Engine answers queries against one automaton.
// The automaton is treated as read-only once the engine exists, so the cached
// verdict and symbol index stay valid and queries may run concurrently.
type Engine struct {
	automaton *domain.Automaton
	name      string
	opts      ValidateOptions
	verdict   domain.Verdict
	index     symbolIndex
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithValidateOptions tunes the validator.
func WithValidateOptions(opts ValidateOptions) EngineOption {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithName labels the automaton in logs and events.
func WithName(name string) EngineOption {
	return func(e *Engine) {
		e.name = name
	}
}

// NewEngine validates a once and caches the verdict.
func NewEngine(a *domain.Automaton, opts ...EngineOption) *Engine {
	e := &Engine{
		automaton: a,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.index = buildIndex(a)
	e.verdict = e.validate(context.Background())
	return e
}

func (e *Engine) validate(ctx context.Context) domain.Verdict {
	verdict := Validate(e.automaton, e.opts)

	if verdict.Deterministic() {
		e.logger.Info("Automaton validated", "states", e.automaton.Len(), "alphabet", string(e.automaton.Alphabet()))
	} else {
		e.logger.Warn("Automaton is not deterministic", "reasons", verdict.Messages())
	}

	if e.hooks.OnValidated != nil {
		e.hooks.OnValidated(ctx, &domain.ValidationEvent{
			EventBase: e.eventBase(domain.EventValidated),
			Verdict:   verdict,
		})
	}
	return verdict
}

// Verdict returns the cached verdict.
func (e *Engine) Verdict() domain.Verdict {
	return e.verdict
}

// Revalidate recomputes the verdict without touching the cache.
// On an unmodified automaton it always equals Verdict().
func (e *Engine) Revalidate(ctx context.Context) domain.Verdict {
	return e.validate(ctx)
}

// Automaton returns the underlying automaton. Callers must not mutate it.
func (e *Engine) Automaton() *domain.Automaton {
	return e.automaton
}

// Name returns the automaton label.
func (e *Engine) Name() string {
	return e.name
}

// Evaluate walks input and reports acceptance or the failure point.
func (e *Engine) Evaluate(ctx context.Context, input string) domain.Result {
	start := time.Now()
	res := simulate(e.automaton, e.index, e.verdict, input)

	failure := ""
	if res.Failure != nil {
		failure = string(res.Failure.Kind)
	}
	e.logger.Debug("Query evaluated",
		"input_len", len([]rune(input)),
		"accepted", res.Accepted,
		"failure", failure,
	)

	if e.hooks.OnQuery != nil {
		e.hooks.OnQuery(ctx, &domain.QueryEvent{
			EventBase: e.eventBase(domain.EventQuery),
			ID:        uuid.NewString(),
			InputLen:  len([]rune(input)),
			Result:    res,
			Duration:  time.Since(start),
		})
	}
	return res
}

// Explain evaluates input and renders the diagnostic from the same walk.
func (e *Engine) Explain(ctx context.Context, input string) (domain.Result, string) {
	res := e.Evaluate(ctx, input)
	return res, res.Explain()
}

func (e *Engine) eventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		Automaton: e.name,
	}
}
