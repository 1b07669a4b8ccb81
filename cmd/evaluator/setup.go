package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkravets/resume-evaluator/internal/config"
	"github.com/mkravets/resume-evaluator/internal/evaluation"
	"github.com/mkravets/resume-evaluator/internal/generation"
	"github.com/mkravets/resume-evaluator/internal/llm"
	"github.com/mkravets/resume-evaluator/internal/logger"
)

// loadConfig assembles the effective configuration: file values, then
// environment, then defaults for whatever is still empty.
func loadConfig(configPath string) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	cfg = cfg.Merge(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildOrchestrator wires the generation backend and the five evaluators.
// The returned close function releases the LLM client.
func buildOrchestrator(ctx context.Context, cfg config.Config, log *zap.Logger) (*evaluation.Orchestrator, func(), error) {
	modelConfig := llm.DefaultGeminiConfig()
	if cfg.LiteModel != "" {
		modelConfig = modelConfig.WithModel(llm.TierLite, cfg.LiteModel)
	}
	if cfg.StandardModel != "" {
		modelConfig = modelConfig.WithModel(llm.TierStandard, cfg.StandardModel)
	}
	if cfg.AdvancedModel != "" {
		modelConfig = modelConfig.WithModel(llm.TierAdvanced, cfg.AdvancedModel)
	}

	client, err := llm.NewClient(ctx, modelConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	gen := generation.New(client, generation.DefaultPolicy(), log.Named("generation"))
	orchestrator := evaluation.New(gen, log)
	return orchestrator, func() { _ = client.Close() }, nil
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.JSONLog, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
