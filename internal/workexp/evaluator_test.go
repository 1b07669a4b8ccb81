package workexp

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/resume-evaluator/internal/generation"
	"github.com/mkravets/resume-evaluator/internal/llm"
	"github.com/mkravets/resume-evaluator/internal/types"
)

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

func newTestEvaluator(client llm.Client, today time.Time) *Evaluator {
	gen := generation.New(client, generation.SingleAttempt(), nil)
	e := NewEvaluator(gen, nil)
	e.now = func() time.Time { return today }
	return e
}

func TestEvaluatePipeline(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"Extract the candidate's full work history": `{"work_list": [
			{"company_name": "OOO Romashka", "position": "Go developer", "work_tasks": "Backend services.",
			 "start_date": "2020-01-01", "end_date": "2024-01-01", "declared_duration": "4 years",
			 "currently_working": false},
			{"company_name": "Flower Shop", "position": "Florist", "work_tasks": "Arrangements.",
			 "start_date": "2018-01-01", "end_date": "2019-01-01", "currently_working": false}
		]}`,
		"Find how many years of professional experience": `{"work_years": 3}`,
		"judge whether the candidate's experience": `{"entries": [
			{"index": 0, "relevance": true, "reason": "Same stack and role."},
			{"index": 1, "relevance": false, "reason": "Unrelated trade."}
		]}`,
	}}

	report := newTestEvaluator(client, date("2024-06-01")).Evaluate(context.Background(), "vacancy", "resume")
	require.NotNil(t, report)
	require.Equal(t, types.StatusSuccess, report.Status)

	require.Len(t, report.Entries, 2)
	assert.Equal(t, types.WorkRelevanceTrue, report.Entries[0].Relevance)
	assert.Equal(t, 48, report.Entries[0].TrueMonths)
	assert.Equal(t, types.WorkRelevanceFalse, report.Entries[1].Relevance)

	assert.Equal(t, 3, report.RequiredYears)
	assert.Equal(t, 48, report.Totals.RelevantMonths)
	assert.Equal(t, 30, report.ExperienceScore)
	assert.Equal(t, 35, report.Score)
}

func TestEvaluateSkippedVerdictStaysUnknown(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"Extract the candidate's full work history": `{"work_list": [
			{"company_name": "A", "position": "Engineer", "start_date": "2020-01-01",
			 "end_date": "2023-01-01", "currently_working": false},
			{"company_name": "B", "position": "Engineer", "start_date": "2023-02-01",
			 "end_date": "2024-02-01", "currently_working": false}
		]}`,
		"Find how many years of professional experience": `{"work_years": 3}`,
		"judge whether the candidate's experience": `{"entries": [
			{"index": 0, "relevance": true, "reason": "Matches."}
		]}`,
	}}

	report := newTestEvaluator(client, date("2024-06-01")).Evaluate(context.Background(), "vacancy", "resume")
	require.Equal(t, types.StatusSuccess, report.Status)

	assert.Equal(t, types.WorkRelevanceUnknown, report.Entries[1].Relevance)
	// The unclassified job counts toward total experience but toward
	// neither the relevant nor the irrelevant bucket.
	assert.Equal(t, 48, report.Totals.TotalMonths)
	assert.Equal(t, 36, report.Totals.RelevantMonths)
	assert.Equal(t, 0, report.Totals.IrrelevantMonths)
}

func TestEvaluateEmptyHistory(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"Extract the candidate's full work history":      `{"work_list": []}`,
		"Find how many years of professional experience": `{"work_years": 2}`,
	}}

	report := newTestEvaluator(client, date("2024-06-01")).Evaluate(context.Background(), "vacancy", "resume")
	require.Equal(t, types.StatusSuccess, report.Status)
	assert.Zero(t, report.ExperienceScore)
	// An empty history still earns the stability points.
	assert.Equal(t, 5, report.Score)
}

func TestEvaluateExtractionFailure(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"Find how many years of professional experience": `{"work_years": 2}`,
	}}

	report := newTestEvaluator(client, date("2024-06-01")).Evaluate(context.Background(), "vacancy", "resume")
	require.NotNil(t, report)
	assert.Equal(t, types.StatusFailed, report.Status)
}
