package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KongaYvan/Automates/internal/cli"
	"github.com/KongaYvan/Automates/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Start the HTTP server",
	Long: `Serves the automaton over a JSON API: /evaluate, /verdict, /automaton, /graph
and, unless disabled, Prometheus /metrics. Defaults come from AUTOMATES_* environment
variables; flags override them.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		base, _ := baseOptions(cmd, args)
		port, _ := cmd.Flags().GetInt("port")
		metrics, _ := cmd.Flags().GetBool("metrics")

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error reading configuration: %v\n", err)
			os.Exit(1)
		}

		opts := cli.ServeOptions{Options: base, Port: port, Metrics: metrics}
		opts.ApplyConfig(cfg, cmd.Flags().Changed("port"), cmd.Flags().Changed("metrics"))

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		err = cli.RunServe(ctx, opts)
		cli.ReportSignal(os.Stderr, ctx)
		if err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().Bool("metrics", true, "Expose Prometheus metrics on /metrics")
}
