package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mkravets/resume-evaluator/internal/store"
)

var reportCommand = &cobra.Command{
	Use:   "report <run-id>",
	Short: "Fetch a stored evaluation report by run id",
	Long: `Looks one finished evaluation up in the report database by the run id the
worker logged when it saved it, and prints the combined report as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runReportCmd,
}

var (
	reportConfigPath string
	reportPretty     bool
)

func init() {
	reportCommand.Flags().StringVar(&reportConfigPath, "config", "", "Path to config.json file")
	reportCommand.Flags().BoolVar(&reportPretty, "pretty", false, "Indent the report JSON")

	rootCmd.AddCommand(reportCommand)
}

func runReportCmd(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(reportConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("report lookup needs DATABASE_URL to be configured")
	}

	runID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", args[0], err)
	}

	ctx := context.Background()
	s, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := s.GetReport(ctx, runID)
	if err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("no report stored for run %s", runID)
	}

	encoder := json.NewEncoder(os.Stdout)
	if reportPretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
