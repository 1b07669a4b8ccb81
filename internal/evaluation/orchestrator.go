// Package evaluation runs the five dimension evaluators against one
// vacancy/resume pair and combines their reports. The result is
// all-or-nothing: a combined report is usable only when every dimension
// succeeded.
package evaluation

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/mkravets/resume-evaluator/internal/education"
	"github.com/mkravets/resume-evaluator/internal/generation"
	"github.com/mkravets/resume-evaluator/internal/salary"
	"github.com/mkravets/resume-evaluator/internal/schedule"
	"github.com/mkravets/resume-evaluator/internal/skills"
	"github.com/mkravets/resume-evaluator/internal/textutil"
	"github.com/mkravets/resume-evaluator/internal/types"
	"github.com/mkravets/resume-evaluator/internal/workexp"
)

// ErrEmptyInput rejects a request whose vacancy or resume text is blank
// after normalization.
var ErrEmptyInput = errors.New("vacancy and resume text must be non-empty")

// ErrIncomplete marks a combined result in which at least one dimension
// failed. The partial report is still returned for diagnostics.
var ErrIncomplete = errors.New("one or more dimensions failed")

// SalaryEvaluator produces the salary dimension report.
type SalaryEvaluator interface {
	Evaluate(ctx context.Context, vacancyText, resumeText string) *types.SalaryReport
}

// EducationEvaluator produces the education dimension report.
type EducationEvaluator interface {
	Evaluate(ctx context.Context, vacancyText, resumeText string) *types.EducationReport
}

// ScheduleEvaluator produces the schedule dimension report.
type ScheduleEvaluator interface {
	Evaluate(ctx context.Context, vacancyText, resumeText string) *types.ScheduleReport
}

// WorkExperienceEvaluator produces the work-history dimension report.
type WorkExperienceEvaluator interface {
	Evaluate(ctx context.Context, vacancyText, resumeText string) *types.WorkExperienceReport
}

// SkillsEvaluator produces the skills dimension report.
type SkillsEvaluator interface {
	Evaluate(ctx context.Context, vacancyText, resumeText string) *types.SkillsReport
}

// Orchestrator fans one request out to the five evaluators.
type Orchestrator struct {
	salary    SalaryEvaluator
	education EducationEvaluator
	schedule  ScheduleEvaluator
	workexp   WorkExperienceEvaluator
	skills    SkillsEvaluator
	log       *zap.Logger
}

// New wires an orchestrator with the production evaluators sharing one
// generation service.
func New(gen *generation.Generator, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		salary:    salary.NewEvaluator(gen, log.Named("salary")),
		education: education.NewEvaluator(gen, log.Named("education")),
		schedule:  schedule.NewEvaluator(gen, log.Named("schedule")),
		workexp:   workexp.NewEvaluator(gen, log.Named("workexp")),
		skills:    skills.NewEvaluator(gen, log.Named("skills")),
		log:       log,
	}
}

// Evaluate normalizes the inputs, runs every dimension concurrently and
// assembles the combined report. A failed dimension never cancels the
// others; each report is a value, and the combined error states only
// whether the whole evaluation is usable.
func (o *Orchestrator) Evaluate(ctx context.Context, vacancyText, resumeText string) (*types.CombinedReport, error) {
	vacancyText = textutil.Clean(vacancyText)
	resumeText = textutil.Clean(resumeText)
	if vacancyText == "" || resumeText == "" {
		return nil, ErrEmptyInput
	}

	report := &types.CombinedReport{}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		report.Salary = o.salary.Evaluate(ctx, vacancyText, resumeText)
	}()
	go func() {
		defer wg.Done()
		report.Education = o.education.Evaluate(ctx, vacancyText, resumeText)
	}()
	go func() {
		defer wg.Done()
		report.Additional = o.schedule.Evaluate(ctx, vacancyText, resumeText)
	}()
	go func() {
		defer wg.Done()
		report.WorkExperience = o.workexp.Evaluate(ctx, vacancyText, resumeText)
	}()
	go func() {
		defer wg.Done()
		report.Skills = o.skills.Evaluate(ctx, vacancyText, resumeText)
	}()
	wg.Wait()

	if !report.Complete() {
		o.log.Warn("evaluation incomplete",
			zap.Bool("salary", report.Salary.Status == types.StatusSuccess),
			zap.Bool("education", report.Education.Status == types.StatusSuccess),
			zap.Bool("schedule", report.Additional.Status == types.StatusSuccess),
			zap.Bool("work_experience", report.WorkExperience.Status == types.StatusSuccess),
			zap.Bool("skills", report.Skills.Status == types.StatusSuccess))
		return report, ErrIncomplete
	}

	o.log.Info("evaluation complete",
		zap.Float64("total_score", report.TotalScore()),
		zap.Float64("max_score", report.TotalMaxScore()))
	return report, nil
}

