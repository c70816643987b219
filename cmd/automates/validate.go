package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KongaYvan/Automates/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that the automaton is deterministic",
	Long: `Loads the definition, lists its states and alphabet, and reports every reason
the automaton is not deterministic. Exits with status 2 when it is not.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, _ := baseOptions(cmd, args)

		ok, err := cli.RunValidate(cmd.Context(), opts)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
