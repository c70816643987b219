package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KongaYvan/Automates"
	"github.com/KongaYvan/Automates/pkg/adapters/file"
	"github.com/KongaYvan/Automates/pkg/domain"
	"github.com/KongaYvan/Automates/pkg/observability"
)

// ErrNoFile is returned when no definition file was given.
var ErrNoFile = errors.New("no definition file given (use --file)")

// createEngine loads opts.File and builds an engine with standard CLI conventions.
// Extra hooks run after the debug audit hooks.
func createEngine(ctx context.Context, opts Options, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*automates.Engine, error) {
	if opts.File == "" {
		return nil, ErrNoFile
	}

	// 1. Logger & Hooks
	engineOpts := []automates.Option{automates.WithLogger(logger)}
	if opts.Debug {
		hooks = append([]domain.LifecycleHooks{observability.LoggingHooks(logger)}, hooks...)
	}
	if len(hooks) > 0 {
		engineOpts = append(engineOpts, automates.WithLifecycleHooks(observability.Chain(hooks...)))
	}

	// 2. Legacy bounded alphabet
	if opts.MaxSymbols > 0 {
		engineOpts = append(engineOpts, automates.WithMaxSymbolsPerState(opts.MaxSymbols))
	}

	// 3. Initialize
	engine, err := automates.NewFromLoader(ctx, file.New(opts.File), engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
