package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the evaluator version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("evaluator %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
