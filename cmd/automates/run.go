package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KongaYvan/Automates/internal/cli"
	"github.com/KongaYvan/Automates/internal/config"
	"github.com/KongaYvan/Automates/pkg/runner"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file] [string...]",
	Short: "Evaluate strings against the automaton",
	Long: `With strings as arguments, evaluates each one and exits non-zero if any is rejected.
Without, starts an interactive shell reading one string per line until 'q' or 'Q'.
Either way the automaton must be deterministic, otherwise the reasons are printed
and the command exits with status 2.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, inputs := baseOptions(cmd, args)

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error reading configuration: %v\n", err)
			os.Exit(1)
		}
		opts.MaxInputSize = cfg.MaxInputSize
		if opts.LogLevel == "" {
			opts.LogLevel = cfg.LogLevel
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		err = cli.RunQueries(ctx, opts, inputs)
		cli.ReportSignal(os.Stderr, ctx)
		var rejected *cli.RejectedError
		switch {
		case err == nil:
		case errors.Is(err, runner.ErrNotDeterministic):
			os.Exit(2)
		case errors.As(err, &rejected):
			os.Exit(3)
		default:
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
