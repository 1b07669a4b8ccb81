// Package salary implements the salary dimension: the candidate's
// expectation against the vacancy's offer, scored by deviation percentage.
package salary

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkravets/resume-evaluator/internal/generation"
	"github.com/mkravets/resume-evaluator/internal/llm"
	"github.com/mkravets/resume-evaluator/internal/prompts"
	"github.com/mkravets/resume-evaluator/internal/types"
)

const (
	promptFile = "salary.json"
	maxScore   = 5
)

const salarySchema = `{
	"type": "object",
	"required": ["min_amount", "max_amount", "is_specified"],
	"properties": {
		"min_amount": {"type": ["integer", "null"], "minimum": 0},
		"max_amount": {"type": ["integer", "null"], "minimum": 0},
		"is_specified": {"type": "boolean"},
		"extracted_text": {"type": "string"}
	},
	"additionalProperties": false
}`

// Evaluator runs the salary comparison.
type Evaluator struct {
	gen *generation.Generator
	log *zap.Logger
}

// NewEvaluator creates a salary evaluator.
func NewEvaluator(gen *generation.Generator, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{gen: gen, log: log}
}

func (e *Evaluator) extract(ctx context.Context, source, text string) (*types.SalaryRange, error) {
	var r types.SalaryRange
	err := e.gen.GenerateInto(ctx, generation.Request{
		Prompt: prompts.Format(prompts.MustGet(promptFile, "extract-salary"),
			map[string]string{"Source": source, "Text": text}),
		Schema: salarySchema,
		Tier:   llm.TierLite,
	}, &r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Evaluate produces the salary dimension report. A side without extractable
// salary data yields the neutral maximum score, not a failure.
func (e *Evaluator) Evaluate(ctx context.Context, vacancyText, resumeText string) *types.SalaryReport {
	var vacancy, resume *types.SalaryRange

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		vacancy, err = e.extract(ctx, "vacancy", vacancyText)
		return err
	})
	g.Go(func() error {
		var err error
		resume, err = e.extract(ctx, "resume", resumeText)
		return err
	})
	if err := g.Wait(); err != nil {
		e.log.Warn("salary evaluation failed", zap.Error(err))
		return &types.SalaryReport{Status: types.StatusFailed}
	}

	report := compare(vacancy, resume)
	e.log.Info("salary evaluation complete",
		zap.Int("score", report.Score),
		zap.String("message", report.Message))
	return report
}

// amount picks the number a side is compared by: the candidate's floor
// (minimum, falling back to maximum), the vacancy's ceiling (maximum,
// falling back to minimum).
func amount(r *types.SalaryRange, preferMin bool) (int, bool) {
	if r == nil || !r.IsSpecified {
		return 0, false
	}
	first, second := r.MaxAmount, r.MinAmount
	if preferMin {
		first, second = r.MinAmount, r.MaxAmount
	}
	if first != nil && *first > 0 {
		return *first, true
	}
	if second != nil && *second > 0 {
		return *second, true
	}
	return 0, false
}

// deviationScore maps how far the expectation exceeds the offer, in
// percent, onto the 5-point ladder.
func deviationScore(deviation float64) int {
	switch {
	case deviation <= 10:
		return 5
	case deviation <= 30:
		return 4
	case deviation <= 60:
		return 3
	case deviation <= 80:
		return 2
	case deviation <= 100:
		return 1
	default:
		return 0
	}
}

func compare(vacancy, resume *types.SalaryRange) *types.SalaryReport {
	report := &types.SalaryReport{
		Status:      types.StatusSuccess,
		MaxScore:    maxScore,
		VacancyText: vacancy.ExtractedText,
		ResumeText:  resume.ExtractedText,
	}

	vacancyAmount, vacancyOK := amount(vacancy, false)
	resumeAmount, resumeOK := amount(resume, true)

	switch {
	case !vacancyOK && !resumeOK:
		report.Score = maxScore
		report.Message = "Neither the vacancy nor the resume states a salary."
		return report
	case !vacancyOK:
		report.Score = maxScore
		report.ResumeSalary = fmt.Sprintf("%d", resumeAmount)
		report.Message = "The vacancy does not state a salary."
		return report
	case !resumeOK:
		report.Score = maxScore
		report.VacancySalary = fmt.Sprintf("%d", vacancyAmount)
		report.Message = "The resume does not state a salary expectation."
		return report
	}

	// The ladder compares the exact deviation; rounding is display only.
	exact := float64(resumeAmount-vacancyAmount) / float64(vacancyAmount) * 100
	deviation := math.Round(exact*10) / 10
	report.VacancySalary = fmt.Sprintf("%d", vacancyAmount)
	report.ResumeSalary = fmt.Sprintf("%d", resumeAmount)
	report.DeviationPercent = &deviation
	report.Score = deviationScore(exact)
	report.Message = fmt.Sprintf(
		"Salary expectation %d against the offered %d, deviation %.1f%%.",
		resumeAmount, vacancyAmount, deviation)
	return report
}
