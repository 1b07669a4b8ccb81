// Package generation implements the structured generation client: prompts go
// out, schema-conformant JSON comes back, or the caller gets
// ErrGenerationFailed after the retry budget is exhausted.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkravets/resume-evaluator/internal/llm"
	"github.com/mkravets/resume-evaluator/internal/schemas"
)

// ErrGenerationFailed marks the expected outcome of a request the generation
// service could not satisfy within the retry budget. Callers must degrade
// gracefully (fail their dimension), not propagate it as a fault.
var ErrGenerationFailed = errors.New("generation failed: schema could not be satisfied")

// Request is one structured generation call.
type Request struct {
	// Prompt carries the full instruction text: system description,
	// worked examples and current inputs.
	Prompt string
	// Schema is the JSON Schema the response must conform to.
	Schema string
	// Tier selects the model capability level.
	Tier llm.ModelTier
}

// Generator issues structured generation requests against an llm.Client,
// retrying with escalating temperature per its policy. Attempts are strictly
// sequential; no state is shared between requests.
type Generator struct {
	client llm.Client
	policy RetryPolicy
	log    *zap.Logger
}

// New creates a Generator. A nil logger is replaced with a no-op one.
func New(client llm.Client, policy RetryPolicy, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	if policy.MaxAttempts < 1 {
		policy = DefaultPolicy()
	}
	return &Generator{client: client, policy: policy, log: log}
}

// Generate runs the request until an attempt produces schema-conformant JSON
// or the retry budget runs out. Transport errors and validation failures are
// both retried; the raw JSON of the first conforming attempt is returned.
func (g *Generator) Generate(ctx context.Context, req Request) (json.RawMessage, error) {
	for attempt := 1; attempt <= g.policy.MaxAttempts; attempt++ {
		temperature := g.policy.Temperature(attempt)

		text, err := g.client.GenerateJSON(ctx, req.Prompt, req.Tier, temperature)
		if err != nil {
			g.log.Debug("generation attempt failed",
				zap.Int("attempt", attempt),
				zap.Float32("temperature", temperature),
				zap.Error(err))
			continue
		}

		cleaned := llm.CleanJSONBlock(text)
		if err := schemas.ValidateJSONString(req.Schema, cleaned); err != nil {
			g.log.Debug("generated output rejected by schema",
				zap.Int("attempt", attempt),
				zap.Float32("temperature", temperature),
				zap.Error(err))
			continue
		}

		return json.RawMessage(cleaned), nil
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrGenerationFailed, g.policy.MaxAttempts)
}

// GenerateInto runs Generate and unmarshals the conforming JSON into out.
func (g *Generator) GenerateInto(ctx context.Context, req Request, out any) error {
	raw, err := g.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// The schema admitted a shape the Go type does not; treat it the
		// same as any other unusable generation result.
		g.log.Debug("conforming output failed to unmarshal", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return nil
}
