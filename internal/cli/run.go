package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/KongaYvan/Automates"
	"github.com/KongaYvan/Automates/internal/presentation/tui"
	"github.com/KongaYvan/Automates/pkg/runner"
)

// RunQueries evaluates inputs when some are given, or starts the query shell.
// It returns runner.ErrNotDeterministic when the automaton refuses queries.
func RunQueries(ctx context.Context, opts Options, inputs []string) error {
	logger := createLogger(opts)
	eng, err := createEngine(ctx, opts, logger)
	if err != nil {
		return err
	}

	out := output(opts)
	rich := richOutput(opts)

	handlerOpts := []runner.TextHandlerOption{}
	if rich {
		painter := tui.NewPainter()
		handlerOpts = append(handlerOpts,
			runner.WithTextHandlerPainter(painter.Paint),
			runner.WithTextHandlerVerdictPainter(painter.Verdict),
		)
		// The shell opens with the full report; one-shot mode keeps a single line.
		if len(inputs) == 0 {
			handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
		}
	}
	handler := runner.NewTextHandler(input(opts), out, handlerOpts...)

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithHandler(handler),
	}
	if opts.MaxInputSize > 0 {
		runnerOpts = append(runnerOpts, runner.WithMaxInputSize(opts.MaxInputSize))
	}
	r := runner.NewRunner(runnerOpts...)

	if len(inputs) == 0 {
		if rich {
			tui.PrintBanner(out, strings.TrimSpace(automates.Version))
		}
		return r.Run(ctx, eng)
	}

	// One-shot mode: evaluate the arguments, no prompt.
	verdict := eng.Verdict()
	if err := handler.Verdict(ctx, verdict); err != nil {
		return err
	}
	if !verdict.Deterministic() {
		return runner.ErrNotDeterministic
	}
	rejected := 0
	for _, in := range inputs {
		if err := r.Sanitizer.Check(in); err != nil {
			return fmt.Errorf("input %q rejected: %w", in, err)
		}
		res, explanation := eng.Explain(ctx, in)
		if !res.Accepted {
			rejected++
		}
		if err := handler.Result(ctx, in, res, explanation); err != nil {
			return err
		}
	}
	if rejected > 0 {
		return &RejectedError{Count: rejected, Total: len(inputs)}
	}
	return nil
}

// RejectedError reports how many one-shot inputs were not accepted.
type RejectedError struct {
	Count, Total int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%d of %d strings rejected", e.Count, e.Total)
}
