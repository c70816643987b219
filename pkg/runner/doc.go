/*
Package runner implements the line-based query loop for an automates engine.

It acts as the bridge between the engine and a terminal: the runner prints the
determinism verdict, then reads candidate strings one per line until the user
types q or Q, reporting whether each one is accepted.

# Key Components

  - Runner: the loop itself, driven by a context.
  - IOHandler: decouples how verdicts and results are shown and how lines are read.
  - TextHandler: the standard implementation for interactive CLI usage.
  - Sanitizer: size, UTF-8 and control-character checks applied to every line before evaluation.

# Usage

	r := runner.NewRunner(
		runner.WithHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx, eng); err != nil {
		log.Fatal(err)
	}
*/
package runner
