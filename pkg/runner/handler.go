package runner

import (
	"context"

	"github.com/KongaYvan/Automates/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
type IOHandler interface {
	// Verdict presents the determinism verdict before any query is read.
	Verdict(ctx context.Context, v domain.Verdict) error

	// Result presents the outcome of one query.
	Result(ctx context.Context, input string, res domain.Result, explanation string) error

	// Rejected tells the user that input was refused before evaluation.
	Rejected(ctx context.Context, input string, err error) error

	// Input reads the next candidate string.
	// It returns io.EOF when the source is exhausted.
	Input(ctx context.Context) (string, error)
}

// Querier is the part of the engine the runner drives.
type Querier interface {
	Verdict() domain.Verdict
	Explain(ctx context.Context, input string) (domain.Result, string)
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// Painter styles a line according to the outcome: acceptance for results,
// determinism for verdicts.
type Painter func(accepted bool, line string) string
