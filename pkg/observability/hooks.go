package observability

import (
	"context"
	"log/slog"

	"github.com/KongaYvan/Automates/pkg/domain"
)

// LoggingHooks returns hooks that audit every event on logger.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnValidated: func(ctx context.Context, e *domain.ValidationEvent) {
			logger.InfoContext(ctx, "validated",
				"automaton", e.Automaton,
				"deterministic", e.Verdict.Deterministic(),
				"reasons", len(e.Verdict.Reasons),
			)
		},
		OnQuery: func(ctx context.Context, e *domain.QueryEvent) {
			logger.InfoContext(ctx, "query",
				"id", e.ID,
				"automaton", e.Automaton,
				"input_len", e.InputLen,
				"outcome", Outcome(e.Result),
				"duration", e.Duration,
			)
		},
	}
}

// Chain merges hook sets; callbacks run in argument order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var validated []func(context.Context, *domain.ValidationEvent)
	var queried []func(context.Context, *domain.QueryEvent)
	for _, s := range sets {
		if s.OnValidated != nil {
			validated = append(validated, s.OnValidated)
		}
		if s.OnQuery != nil {
			queried = append(queried, s.OnQuery)
		}
	}

	var out domain.LifecycleHooks
	if len(validated) > 0 {
		out.OnValidated = func(ctx context.Context, e *domain.ValidationEvent) {
			for _, fn := range validated {
				fn(ctx, e)
			}
		}
	}
	if len(queried) > 0 {
		out.OnQuery = func(ctx context.Context, e *domain.QueryEvent) {
			for _, fn := range queried {
				fn(ctx, e)
			}
		}
	}
	return out
}
