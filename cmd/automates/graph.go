package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KongaYvan/Automates/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the automaton visualization",
	Long: `Outputs a Mermaid diagram (graph LR) of the automaton. With --input, the walk of
that string is highlighted and its final state coloured by the outcome.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, _ := baseOptions(cmd, args)
		input, _ := cmd.Flags().GetString("input")

		if err := cli.RunGraph(cmd.Context(), opts, input, cmd.Flags().Changed("input")); err != nil {
			fmt.Printf("Error generating graph: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("input", "i", "", "Highlight the walk of this string")
}
