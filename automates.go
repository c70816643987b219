package automates

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KongaYvan/Automates/internal/runtime"
	"github.com/KongaYvan/Automates/pkg/domain"
	"github.com/KongaYvan/Automates/pkg/ports"
)

// ConstructionRequest lists every state and transition of an automaton.
type ConstructionRequest = domain.Definition

// StateSpec declares one state of a ConstructionRequest.
type StateSpec = domain.StateSpec

// TransitionSpec declares one transition of a ConstructionRequest.
type TransitionSpec = domain.TransitionSpec

// Engine is the high-level entry point of the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	opts    runtime.ValidateOptions
	name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMaxSymbolsPerState enables the bounded-alphabet constraint: states using
// more than n distinct symbols are reported as violations. Legacy tooling used 2.
// Zero (the default) disables the check.
func WithMaxSymbolsPerState(n int) Option {
	return func(e *Engine) {
		e.opts.MaxSymbolsPerState = n
	}
}

// WithName labels the automaton in logs, events and rendered output.
func WithName(name string) Option {
	return func(e *Engine) {
		e.name = name
	}
}

// Construct builds the automaton described by req.
// It fails with a DuplicateStateError or UnknownStateError and never returns a
// partially built automaton.
func Construct(req ConstructionRequest) (*domain.Automaton, error) {
	return req.Build()
}

// New constructs the automaton, validates it and caches the verdict.
// A non-deterministic automaton is not an error: check Verdict().
func New(req ConstructionRequest, opts ...Option) (*Engine, error) {
	a, err := Construct(req)
	if err != nil {
		return nil, fmt.Errorf("failed to construct automaton: %w", err)
	}

	eng := &Engine{name: req.Name}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.name != "" {
		eng.logger = eng.logger.With("automaton", eng.name)
	}

	eng.runtime = runtime.NewEngine(a,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithValidateOptions(eng.opts),
		runtime.WithName(eng.name),
	)
	return eng, nil
}

// NewFromLoader reads a definition through loader and builds an Engine from it.
func NewFromLoader(ctx context.Context, loader ports.DefinitionLoader, opts ...Option) (*Engine, error) {
	def, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}
	return New(def, opts...)
}

// Verdict returns the cached determinism verdict.
func (e *Engine) Verdict() domain.Verdict {
	return e.runtime.Verdict()
}

// Revalidate recomputes the verdict. On an unmodified automaton it equals Verdict().
func (e *Engine) Revalidate(ctx context.Context) domain.Verdict {
	return e.runtime.Revalidate(ctx)
}

// Evaluate reports whether input is accepted.
// A non-deterministic automaton rejects every input with FailureNotDeterministic.
func (e *Engine) Evaluate(ctx context.Context, input string) domain.Result {
	return e.runtime.Evaluate(ctx, input)
}

// Explain evaluates input and returns the human-readable diagnostic of the same walk.
func (e *Engine) Explain(ctx context.Context, input string) (domain.Result, string) {
	return e.runtime.Explain(ctx, input)
}

// Inspect returns the automaton for visualization or introspection tools.
// Callers must treat it as read-only.
func (e *Engine) Inspect() *domain.Automaton {
	return e.runtime.Automaton()
}

// Definition returns the construction request that rebuilds this automaton.
func (e *Engine) Definition() domain.Definition {
	return domain.Describe(e.name, e.runtime.Automaton())
}

// Name returns the automaton label, if any.
func (e *Engine) Name() string {
	return e.name
}
