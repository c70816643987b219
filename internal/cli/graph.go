package cli

import (
	"context"
	"fmt"

	"github.com/KongaYvan/Automates/internal/presentation/graph"
	"github.com/KongaYvan/Automates/pkg/runner"
)

// RunGraph prints the automaton as a Mermaid flowchart.
// When withInput is set, the walk of input is highlighted.
func RunGraph(ctx context.Context, opts Options, input string, withInput bool) error {
	logger := createLogger(opts)
	eng, err := createEngine(ctx, opts, logger)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if withInput {
		if err := (runner.Sanitizer{MaxSize: opts.MaxInputSize}).Check(input); err != nil {
			return fmt.Errorf("input rejected: %w", err)
		}
		res, explanation := eng.Explain(ctx, input)
		logger.Info("Walk", "accepted", res.Accepted, "explanation", explanation)
		overlay = graph.OverlayFromResult(res)
	}

	_, err = fmt.Fprint(output(opts), graph.GenerateMermaid(eng.Inspect(), overlay))
	return err
}
