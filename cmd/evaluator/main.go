// Package main provides the entry point for the resume evaluator: a queue
// worker scoring resumes against vacancies, plus a one-shot CLI mode.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "evaluator",
	Short: "Resume evaluation engine",
	Long:  "Evaluator scores a resume against a vacancy across five dimensions (skills, work history, education, salary, schedule) and reports a 100-point total.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
