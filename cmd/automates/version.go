package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KongaYvan/Automates"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of automates",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("automates version %s\n", strings.TrimSpace(automates.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
