// Package workexp implements the work-history analyzer: extraction of the
// candidate's job list and the vacancy's required years, duration
// reconciliation, batched relevance classification, and the tiered
// experience plus stability score.
package workexp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkravets/resume-evaluator/internal/generation"
	"github.com/mkravets/resume-evaluator/internal/llm"
	"github.com/mkravets/resume-evaluator/internal/prompts"
	"github.com/mkravets/resume-evaluator/internal/types"
)

const promptFile = "workexp.json"

type historyPayload struct {
	WorkList []types.WorkHistoryEntry `json:"work_list"`
}

type requiredYearsPayload struct {
	WorkYears int `json:"work_years"`
}

type relevanceVerdict struct {
	Index     int    `json:"index"`
	Relevance bool   `json:"relevance"`
	Reason    string `json:"reason"`
}

type relevancePayload struct {
	Entries []relevanceVerdict `json:"entries"`
}

// Evaluator runs the work-history analysis.
type Evaluator struct {
	gen *generation.Generator
	log *zap.Logger
	now func() time.Time
}

// NewEvaluator creates a work-history evaluator using the wall clock.
func NewEvaluator(gen *generation.Generator, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{gen: gen, log: log, now: time.Now}
}

func (e *Evaluator) failed(stage string, err error) *types.WorkExperienceReport {
	e.log.Warn("work history evaluation failed", zap.String("stage", stage), zap.Error(err))
	return &types.WorkExperienceReport{Status: types.StatusFailed}
}

// Evaluate produces the work-history dimension report.
func (e *Evaluator) Evaluate(ctx context.Context, vacancyText, resumeText string) *types.WorkExperienceReport {
	var history historyPayload
	var required requiredYearsPayload

	g := new(errgroup.Group)
	g.Go(func() error {
		return e.gen.GenerateInto(ctx, generation.Request{
			Prompt: prompts.Format(prompts.MustGet(promptFile, "extract-history"),
				map[string]string{"ResumeText": resumeText}),
			Schema: historySchema,
			Tier:   llm.TierStandard,
		}, &history)
	})
	g.Go(func() error {
		return e.gen.GenerateInto(ctx, generation.Request{
			Prompt: prompts.Format(prompts.MustGet(promptFile, "extract-required-years"),
				map[string]string{"VacancyText": vacancyText}),
			Schema: requiredYearsSchema,
			Tier:   llm.TierLite,
		}, &required)
	})
	if err := g.Wait(); err != nil {
		return e.failed("extract", err)
	}

	today := e.now()
	entries := history.WorkList
	for i := range entries {
		reconcile(&entries[i], today)
		entries[i].Relevance = types.WorkRelevanceUnknown
	}

	// One batched relevance call, entries addressed by index. Verdicts the
	// model omits leave their entry unknown.
	if len(entries) > 0 {
		var verdicts relevancePayload
		err := e.gen.GenerateInto(ctx, generation.Request{
			Prompt: prompts.Format(prompts.MustGet(promptFile, "classify-relevance"), map[string]string{
				"VacancyText": vacancyText,
				"Entries":     renderEntries(entries),
			}),
			Schema: relevanceSchema(len(entries)),
			Tier:   llm.TierAdvanced,
		}, &verdicts)
		if err != nil {
			return e.failed("relevance", err)
		}
		for _, v := range verdicts.Entries {
			if v.Index < 0 || v.Index >= len(entries) {
				continue
			}
			entry := &entries[v.Index]
			if entry.Relevance != types.WorkRelevanceUnknown {
				continue
			}
			if v.Relevance {
				entry.Relevance = types.WorkRelevanceTrue
			} else {
				entry.Relevance = types.WorkRelevanceFalse
			}
			entry.RelevanceReason = v.Reason
		}
	}

	report := buildReport(entries, required.WorkYears, today)

	e.log.Info("work history evaluation complete",
		zap.Int("score", report.Score),
		zap.Int("entries", len(entries)),
		zap.Int("required_years", required.WorkYears),
		zap.Int("relevant_months", report.Totals.RelevantMonths))
	return report
}

// renderEntries serializes the job list for the relevance prompt. The index
// is the addressing key; the company and position line is for readability.
func renderEntries(entries []types.WorkHistoryEntry) string {
	var sb strings.Builder
	for i, entry := range entries {
		fmt.Fprintf(&sb, "%d. %s, %s (%s)\n", i, entry.Company, entry.Position, entry.TrueDurationLabel)
		if tasks := strings.TrimSpace(entry.Tasks); tasks != "" {
			fmt.Fprintf(&sb, "   Tasks: %s\n", tasks)
		}
	}
	return sb.String()
}
