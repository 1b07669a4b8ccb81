package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/mkravets/resume-evaluator/internal/queue"
	"github.com/mkravets/resume-evaluator/internal/textutil"
)

var submitCommand = &cobra.Command{
	Use:   "submit",
	Short: "Submit a request to a running worker and wait for the reply",
	Long: `Publishes one evaluation request to the Redis queue and blocks until the
worker's response arrives. Prints the combined report as JSON on stdout.`,
	RunE: runSubmitCmd,
}

var (
	submitConfigPath string
	submitVacancy    string
	submitResume     string
	submitPretty     bool
)

func init() {
	submitCommand.Flags().StringVar(&submitConfigPath, "config", "", "Path to config.json file")
	submitCommand.Flags().StringVar(&submitVacancy, "vacancy", "", "Path to the vacancy text file")
	submitCommand.Flags().StringVar(&submitResume, "resume", "", "Path to the resume text file")
	submitCommand.Flags().BoolVar(&submitPretty, "pretty", false, "Indent the report JSON")

	_ = submitCommand.MarkFlagRequired("vacancy")
	_ = submitCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(submitCommand)
}

func runSubmitCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(submitConfigPath)
	if err != nil {
		return err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	vacancyText, err := os.ReadFile(submitVacancy)
	if err != nil {
		return fmt.Errorf("failed to read vacancy file: %w", err)
	}
	resumeText, err := os.ReadFile(submitResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	if textutil.IsBlank(string(vacancyText)) {
		return fmt.Errorf("vacancy file %s is empty", submitVacancy)
	}
	if textutil.IsBlank(string(resumeText)) {
		return fmt.Errorf("resume file %s is empty", submitResume)
	}

	ctx := context.Background()
	broker := queue.NewRedisBroker(redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}))
	defer func() { _ = broker.Close() }()
	if err := broker.Ping(ctx); err != nil {
		return err
	}

	client := queue.NewClient(broker, cfg.QueueName, timeout)
	report, err := client.Call(ctx, string(vacancyText), string(resumeText))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	if submitPretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
