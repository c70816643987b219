package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KongaYvan/Automates/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "automates",
	Short: "Automates builds, validates and runs deterministic finite automata",
	Long: `Automates loads an automaton from a YAML or JSON definition file, checks that it
is deterministic, and tells you whether strings are accepted and, if not, exactly
where they were rejected.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	registerPersistentFlags(rootCmd)
}

// registerPersistentFlags declares the flags available to all commands.
func registerPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("file", "f", "", "Automaton definition file (.yaml, .yml or .json)")
	cmd.PersistentFlags().Bool("debug", false, "Log engine events to stderr")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Int("max-symbols", 0, "Flag states using more than N distinct symbols (0 disables)")
}

// baseOptions reads the persistent flags. A positional argument stands in for
// --file when the flag was not given.
func baseOptions(cmd *cobra.Command, args []string) (cli.Options, []string) {
	file, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")
	level, _ := cmd.Flags().GetString("log-level")
	maxSymbols, _ := cmd.Flags().GetInt("max-symbols")

	if !cmd.Flags().Changed("file") && len(args) > 0 {
		file = args[0]
		args = args[1:]
	}

	return cli.Options{
		File:       file,
		Debug:      debug,
		LogLevel:   level,
		MaxSymbols: maxSymbols,
	}, args
}
