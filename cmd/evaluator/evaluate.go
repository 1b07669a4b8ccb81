package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravets/resume-evaluator/internal/evaluation"
	"github.com/mkravets/resume-evaluator/internal/observability"
	"github.com/mkravets/resume-evaluator/internal/queue"
	"github.com/mkravets/resume-evaluator/internal/textutil"
	"github.com/mkravets/resume-evaluator/internal/types"
)

var evaluateCommand = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one resume against one vacancy",
	Long: `Runs the full evaluation in-process, without the queue, and prints the
combined report as JSON on stdout. Intended for local testing and scripting.`,
	RunE: runEvaluateCmd,
}

var (
	evaluateConfigPath string
	evaluateVacancy    string
	evaluateResume     string
	evaluateVerbose    bool
	evaluatePretty     bool
)

func init() {
	evaluateCommand.Flags().StringVar(&evaluateConfigPath, "config", "", "Path to config.json file")
	evaluateCommand.Flags().StringVar(&evaluateVacancy, "vacancy", "", "Path to the vacancy text file")
	evaluateCommand.Flags().StringVar(&evaluateResume, "resume", "", "Path to the resume text file")
	evaluateCommand.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print detailed debug information and a score summary")
	evaluateCommand.Flags().BoolVar(&evaluatePretty, "pretty", false, "Indent the report JSON")

	_ = evaluateCommand.MarkFlagRequired("vacancy")
	_ = evaluateCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(evaluateCommand)
}

func runEvaluateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(evaluateConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = evaluateVerbose
	}

	vacancyText, err := os.ReadFile(evaluateVacancy)
	if err != nil {
		return fmt.Errorf("failed to read vacancy file: %w", err)
	}
	resumeText, err := os.ReadFile(evaluateResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	if textutil.IsBlank(string(vacancyText)) {
		return fmt.Errorf("vacancy file %s is empty", evaluateVacancy)
	}
	if textutil.IsBlank(string(resumeText)) {
		return fmt.Errorf("resume file %s is empty", evaluateResume)
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	orchestrator, closeClient, err := buildOrchestrator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeClient()

	report, err := orchestrator.Evaluate(ctx, string(vacancyText), string(resumeText))
	if err != nil && !errors.Is(err, evaluation.ErrIncomplete) {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	if evaluatePretty {
		encoder.SetIndent("", "  ")
	}
	if encodeErr := encoder.Encode(evaluateOutput(report, err)); encodeErr != nil {
		return fmt.Errorf("failed to write report: %w", encodeErr)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCombinedReport(report)
		if report != nil {
			printer.PrintSkillsDetail(report.Skills)
		}
	}

	// An incomplete evaluation prints only a failed-status object; the
	// exit status reflects the failure and verbose mode shows the partial
	// detail on stderr.
	return err
}

// evaluateOutput is what evaluate prints on stdout: the combined report
// when every dimension succeeded, otherwise a bare failed status. Partial
// reports never reach stdout.
func evaluateOutput(report *types.CombinedReport, err error) any {
	if err == nil {
		return report
	}
	return struct {
		Status  queue.ResponseStatus `json:"status"`
		Message string               `json:"message"`
	}{queue.StatusFailed, "at least one evaluation dimension failed"}
}
