// Package schedule implements the schedule dimension: a single structured
// comparison of the vacancy's offered schedule against the candidate's
// preference, worth 5 points on a match.
package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/mkravets/resume-evaluator/internal/generation"
	"github.com/mkravets/resume-evaluator/internal/llm"
	"github.com/mkravets/resume-evaluator/internal/prompts"
	"github.com/mkravets/resume-evaluator/internal/types"
)

const (
	promptFile = "schedule.json"
	maxScore   = 5
)

const comparisonSchema = `{
	"type": "object",
	"required": ["vacancy_schedule", "resume_schedule", "match", "reason"],
	"properties": {
		"vacancy_schedule": {"$ref": "#/definitions/schedule_info"},
		"resume_schedule": {"$ref": "#/definitions/schedule_info"},
		"match": {"type": "boolean"},
		"reason": {"type": "string"}
	},
	"additionalProperties": false,
	"definitions": {
		"schedule_info": {
			"type": "object",
			"required": ["schedule"],
			"properties": {
				"schedule": {
					"type": "array",
					"items": {"enum": ["full_day", "reduced_day", "flexible", "shift", "remote", "part_time", "full_time", "rotation", "other"]}
				},
				"details": {"type": "string"}
			},
			"additionalProperties": false
		}
	}
}`

type comparisonPayload struct {
	VacancySchedule types.ScheduleInfo `json:"vacancy_schedule"`
	ResumeSchedule  types.ScheduleInfo `json:"resume_schedule"`
	Match           bool               `json:"match"`
	Reason          string             `json:"reason"`
}

// Evaluator runs the schedule comparison.
type Evaluator struct {
	gen *generation.Generator
	log *zap.Logger
}

// NewEvaluator creates a schedule evaluator.
func NewEvaluator(gen *generation.Generator, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{gen: gen, log: log}
}

// Evaluate produces the schedule dimension report.
func (e *Evaluator) Evaluate(ctx context.Context, vacancyText, resumeText string) *types.ScheduleReport {
	var comparison comparisonPayload
	err := e.gen.GenerateInto(ctx, generation.Request{
		Prompt: prompts.Format(prompts.MustGet(promptFile, "compare-schedules"), map[string]string{
			"VacancyText": vacancyText,
			"ResumeText":  resumeText,
		}),
		Schema: comparisonSchema,
		Tier:   llm.TierLite,
	}, &comparison)
	if err != nil {
		e.log.Warn("schedule evaluation failed", zap.Error(err))
		return &types.ScheduleReport{Status: types.StatusFailed}
	}

	report := &types.ScheduleReport{
		Status:          types.StatusSuccess,
		MaxScore:        maxScore,
		VacancySchedule: comparison.VacancySchedule,
		ResumeSchedule:  comparison.ResumeSchedule,
		Match:           comparison.Match,
		Reason:          comparison.Reason,
	}
	if comparison.Match {
		report.Score = maxScore
	}

	e.log.Info("schedule evaluation complete",
		zap.Int("score", report.Score),
		zap.Bool("match", comparison.Match))
	return report
}
