package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkravets/resume-evaluator/internal/queue"
	"github.com/mkravets/resume-evaluator/internal/store"
	"github.com/mkravets/resume-evaluator/internal/worker"
)

var workerCommand = &cobra.Command{
	Use:   "worker",
	Short: "Run the queue worker",
	Long: `Consumes evaluation requests from the Redis queue, one at a time, and
publishes a response envelope for each. Requests are acknowledged only after
their response is out, so a crashed worker leaves them visible.

Configuration can be loaded from a JSON file using --config; environment
variables override file values.`,
	RunE: runWorkerCmd,
}

var (
	workerConfigPath string
	workerVerbose    bool
)

func init() {
	workerCommand.Flags().StringVar(&workerConfigPath, "config", "", "Path to config.json file")
	workerCommand.Flags().BoolVarP(&workerVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(workerCommand)
}

func runWorkerCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(workerConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = workerVerbose
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	orchestrator, closeClient, err := buildOrchestrator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeClient()

	broker := queue.NewRedisBroker(redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}))
	defer func() { _ = broker.Close() }()
	if err := broker.Ping(ctx); err != nil {
		return err
	}

	// Persistence is optional: a missing or unreachable database degrades
	// to a worker that only replies.
	var reportStore worker.ReportStore
	if cfg.DatabaseURL != "" {
		s, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn("database unavailable, reports will not be persisted", zap.Error(err))
		} else {
			defer s.Close()
			reportStore = s
		}
	}

	w := worker.New(broker, orchestrator, reportStore, cfg.QueueName, log.Named("worker"))
	return w.Run(ctx)
}
