package skills

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/resume-evaluator/internal/generation"
	"github.com/mkravets/resume-evaluator/internal/llm"
	"github.com/mkravets/resume-evaluator/internal/types"
)

// scriptedClient answers each pipeline stage by matching a marker phrase
// from the stage's prompt template.
type scriptedClient struct {
	responses map[string]string
}

func (c *scriptedClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier, _ float32) (string, error) {
	for marker, response := range c.responses {
		if strings.Contains(prompt, marker) {
			return response, nil
		}
	}
	return "", fmt.Errorf("no scripted response for prompt %q", prompt[:min(len(prompt), 60)])
}

func (c *scriptedClient) GetModel(llm.ModelTier) string { return "scripted" }
func (c *scriptedClient) Close() error                  { return nil }

func newTestEvaluator(client llm.Client) *Evaluator {
	gen := generation.New(client, generation.SingleAttempt(), nil)
	return NewEvaluator(gen, nil)
}

func TestEvaluatePipeline(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"job posting parser": `{"requirements_text": "Must: Go, Kubernetes, team player. Nice: GraphQL."}`,
		"resume parser":      `{"skills": ["  Go ", "", "Docker"]}`,
		"Split the vacancy requirements": `{
			"must_have_skills": ["Go", "Kubernetes", "Team player"],
			"nice_to_have_skills": ["GraphQL"]
		}`,
		"Assign exactly one category": `{"skills": [
			{"skill_name": "Go", "category": "programming_language"},
			{"skill_name": "Kubernetes", "category": "technology_tool"},
			{"skill_name": "Team player", "category": "personality_trait"},
			{"skill_name": "GraphQL", "category": "technology_tool"}
		]}`,
		"Aggregate the vacancy skill names": `{"skills": ["Go", "Kubernetes", "GraphQL"]}`,
		"Map every original vacancy skill name": `{"skills": [
			{"original_name": "Go", "category": "Go"},
			{"original_name": "Kubernetes", "category": "Kubernetes"},
			{"original_name": "GraphQL", "category": "GraphQL"}
		]}`,
		"judge whether the resume skill covers": `{"pairs": [
			{"vacancy_skill": "Kubernetes", "resume_skill": "Docker", "reason": "Related container tooling.", "relevance": "half"},
			{"vacancy_skill": "GraphQL", "resume_skill": "Go", "reason": "Unrelated.", "relevance": "none"},
			{"vacancy_skill": "GraphQL", "resume_skill": "Docker", "reason": "Unrelated.", "relevance": "none"}
		]}`,
	}}

	report := newTestEvaluator(client).Evaluate(context.Background(), "vacancy", "resume")
	require.NotNil(t, report)
	require.Equal(t, types.StatusSuccess, report.Status)

	// Go matches directly despite the padding in the extracted list,
	// Kubernetes half-matches Docker, GraphQL misses: must tier 2/2
	// relevant, nice tier 0/1.
	assert.Equal(t, 20.0, report.Score)
	assert.Equal(t, 35.0, report.MaxScore)

	require.Contains(t, report.MustHave, "Go")
	assert.Equal(t, types.SkillRelevanceCurrent, report.MustHave["Go"].Relevance)
	assert.Equal(t, "Direct term match.", report.MustHave["Go"].Reason)

	require.Contains(t, report.MustHave, "Kubernetes")
	assert.Equal(t, types.SkillRelevanceHalf, report.MustHave["Kubernetes"].Relevance)
	assert.Equal(t, "Docker", report.MustHave["Kubernetes"].RelevantSkill)

	require.Contains(t, report.NiceToHave, "GraphQL")
	assert.Equal(t, types.SkillRelevanceNone, report.NiceToHave["GraphQL"].Relevance)

	require.Len(t, report.Discarded, 1)
	assert.Equal(t, "Team player", report.Discarded[0].Name)
	assert.Equal(t, "personality_trait", report.Discarded[0].Category)
}

func TestEvaluateNothingVerifiable(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"job posting parser": `{"requirements_text": "Strong communicator with a can-do attitude."}`,
		"resume parser":      `{"skills": ["Go"]}`,
		"Split the vacancy requirements": `{
			"must_have_skills": ["Strong communicator", "Can-do attitude"],
			"nice_to_have_skills": []
		}`,
		"Assign exactly one category": `{"skills": [
			{"skill_name": "Strong communicator", "category": "personality_trait"},
			{"skill_name": "Can-do attitude", "category": "subjective_claim"}
		]}`,
	}}

	report := newTestEvaluator(client).Evaluate(context.Background(), "vacancy", "resume")
	require.NotNil(t, report)
	assert.Equal(t, types.StatusSuccess, report.Status)
	assert.Equal(t, 0.0, report.Score)
	assert.Len(t, report.Discarded, 2)
	assert.Zero(t, report.MustHaveStats.TotalSkills)
}

// failingClient errors on prompts containing the trigger phrase and
// otherwise delegates.
type failingClient struct {
	inner   llm.Client
	trigger string
}

func (c *failingClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier, temperature float32) (string, error) {
	if strings.Contains(prompt, c.trigger) {
		return "", errors.New("backend unavailable")
	}
	return c.inner.GenerateJSON(ctx, prompt, tier, temperature)
}

func (c *failingClient) GetModel(tier llm.ModelTier) string { return c.inner.GetModel(tier) }
func (c *failingClient) Close() error                       { return c.inner.Close() }

func TestEvaluateStageFailureFailsDimension(t *testing.T) {
	inner := &scriptedClient{responses: map[string]string{
		"job posting parser": `{"requirements_text": "Must: Go."}`,
		"resume parser":      `{"skills": ["Go"]}`,
	}}
	client := &failingClient{inner: inner, trigger: "Split the vacancy requirements"}

	report := newTestEvaluator(client).Evaluate(context.Background(), "vacancy", "resume")
	require.NotNil(t, report)
	assert.Equal(t, types.StatusFailed, report.Status)
	assert.Zero(t, report.Score)
}

func TestEvaluateEmptyRequirementsFails(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"job posting parser":             `{"requirements_text": ""}`,
		"resume parser":                  `{"skills": ["Go"]}`,
		"Split the vacancy requirements": `{"must_have_skills": [], "nice_to_have_skills": []}`,
	}}

	report := newTestEvaluator(client).Evaluate(context.Background(), "vacancy", "resume")
	require.NotNil(t, report)
	assert.Equal(t, types.StatusFailed, report.Status)
}
