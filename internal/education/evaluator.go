// Package education implements the education dimension: level requirement,
// specialization overlap and course relevance, scored 10/5/5.
package education

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkravets/resume-evaluator/internal/generation"
	"github.com/mkravets/resume-evaluator/internal/llm"
	"github.com/mkravets/resume-evaluator/internal/prompts"
	"github.com/mkravets/resume-evaluator/internal/types"
)

const (
	promptFile = "education.json"

	maxScore               = 20
	maxLevelScore          = 10
	maxSpecializationScore = 5
	maxCoursesScore        = 5
)

type educationPayload struct {
	Education []types.EducationRecord `json:"education"`
}

type coursesPayload struct {
	Courses []types.CourseRecord `json:"courses"`
}

type courseRelevancePayload struct {
	Courses []types.CourseRelevance `json:"courses"`
}

// Evaluator runs the education comparison.
type Evaluator struct {
	gen *generation.Generator
	log *zap.Logger
}

// NewEvaluator creates an education evaluator.
func NewEvaluator(gen *generation.Generator, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{gen: gen, log: log}
}

func (e *Evaluator) extractEducation(ctx context.Context, source, text string) ([]types.EducationRecord, error) {
	var payload educationPayload
	err := e.gen.GenerateInto(ctx, generation.Request{
		Prompt: prompts.Format(prompts.MustGet(promptFile, "extract-education"),
			map[string]string{"Source": source, "Text": text}),
		Schema: educationSchema,
		Tier:   llm.TierStandard,
	}, &payload)
	return payload.Education, err
}

// Evaluate produces the education dimension report.
func (e *Evaluator) Evaluate(ctx context.Context, vacancyText, resumeText string) *types.EducationReport {
	var required, candidate []types.EducationRecord
	var courses coursesPayload

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		required, err = e.extractEducation(ctx, "vacancy", vacancyText)
		return err
	})
	g.Go(func() error {
		var err error
		candidate, err = e.extractEducation(ctx, "resume", resumeText)
		return err
	})
	g.Go(func() error {
		return e.gen.GenerateInto(ctx, generation.Request{
			Prompt: prompts.Format(prompts.MustGet(promptFile, "extract-courses"),
				map[string]string{"ResumeText": resumeText}),
			Schema: coursesSchema,
			Tier:   llm.TierLite,
		}, &courses)
	})
	if err := g.Wait(); err != nil {
		e.log.Warn("education evaluation failed", zap.Error(err))
		return &types.EducationReport{Status: types.StatusFailed}
	}

	// Course relevance needs a call only when the resume lists courses.
	var verdicts []types.CourseRelevance
	if len(courses.Courses) > 0 {
		names := courseNames(courses.Courses)
		var payload courseRelevancePayload
		err := e.gen.GenerateInto(ctx, generation.Request{
			Prompt: prompts.Format(prompts.MustGet(promptFile, "course-relevance"), map[string]string{
				"VacancyText": vacancyText,
				"Courses":     renderCourses(courses.Courses),
			}),
			Schema: courseRelevanceSchema(names),
			Tier:   llm.TierStandard,
		}, &payload)
		if err != nil {
			e.log.Warn("education evaluation failed", zap.Error(err))
			return &types.EducationReport{Status: types.StatusFailed}
		}
		verdicts = payload.Courses
	}

	report := buildReport(required, candidate, verdicts)
	e.log.Info("education evaluation complete", zap.Int("score", report.Score))
	return report
}

// requiredLevel picks the strictest level the vacancy demands.
func requiredLevel(records []types.EducationRecord) types.EducationLevel {
	level := types.EducationUnspecified
	for _, r := range records {
		switch r.Level {
		case types.EducationHigher:
			return types.EducationHigher
		case types.EducationVocational:
			level = types.EducationVocational
		}
	}
	return level
}

// levelCovers reports whether a candidate level satisfies the requirement.
// Higher education covers a vocational requirement.
func levelCovers(candidate, required types.EducationLevel) bool {
	switch required {
	case types.EducationUnspecified:
		return true
	case types.EducationVocational:
		return candidate == types.EducationVocational || candidate == types.EducationHigher
	default:
		return candidate == types.EducationHigher
	}
}

func scoreLevel(required, candidate []types.EducationRecord) types.EducationLevelSection {
	need := requiredLevel(required)
	var levels []types.EducationLevel
	for _, r := range candidate {
		levels = append(levels, r.Level)
	}

	section := types.EducationLevelSection{
		MaxScore:        maxLevelScore,
		RequiredLevel:   need,
		CandidateLevels: levels,
	}

	if need == types.EducationUnspecified {
		section.Score = maxLevelScore
		section.RequirementMet = true
		section.Comment = "The vacancy does not require a particular education level."
		return section
	}

	for _, level := range levels {
		if levelCovers(level, need) {
			section.Score = maxLevelScore
			section.RequirementMet = true
			section.Comment = fmt.Sprintf("Candidate's %s education meets the %s requirement.", level, need)
			return section
		}
	}
	section.Comment = fmt.Sprintf("The vacancy requires %s education and the resume shows none that qualifies.", need)
	return section
}

// specializationSet collects the canonical specialization areas from a
// record list, dropping the placeholder values.
func specializationSet(records []types.EducationRecord) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		for _, s := range r.Specializations {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" || s == "unspecified" || s == "other" {
				continue
			}
			seen[s] = true
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func scoreSpecialization(required, candidate []types.EducationRecord) types.SpecializationSection {
	need := specializationSet(required)
	have := specializationSet(candidate)

	section := types.SpecializationSection{
		MaxScore:  maxSpecializationScore,
		Required:  need,
		Candidate: have,
	}

	if len(need) == 0 {
		section.Score = maxSpecializationScore
		section.Comment = "The vacancy does not require a particular specialization."
		return section
	}

	haveSet := make(map[string]bool, len(have))
	for _, s := range have {
		haveSet[s] = true
	}
	for _, s := range need {
		if haveSet[s] {
			section.Common = append(section.Common, s)
		}
	}

	if len(section.Common) > 0 {
		section.Score = maxSpecializationScore
		section.Comment = fmt.Sprintf("Specializations overlap: %s.", strings.Join(section.Common, ", "))
	} else {
		section.Comment = "No overlap between required and candidate specializations."
	}
	return section
}

func scoreCourses(verdicts []types.CourseRelevance) types.CoursesSection {
	section := types.CoursesSection{MaxScore: maxCoursesScore}

	if len(verdicts) == 0 {
		section.Comment = "The resume lists no additional courses."
		return section
	}

	for _, v := range verdicts {
		if v.Relevant {
			section.Relevant = append(section.Relevant, v)
		} else {
			section.Irrelevant = append(section.Irrelevant, v)
		}
	}

	if len(section.Relevant) > 0 {
		section.Score = maxCoursesScore
		section.Comment = fmt.Sprintf("%d of %d courses are relevant to the vacancy.",
			len(section.Relevant), len(verdicts))
	} else {
		section.Comment = "None of the listed courses are relevant to the vacancy."
	}
	return section
}

func buildReport(required, candidate []types.EducationRecord, verdicts []types.CourseRelevance) *types.EducationReport {
	level := scoreLevel(required, candidate)
	specialization := scoreSpecialization(required, candidate)
	courses := scoreCourses(verdicts)

	return &types.EducationReport{
		Status:         types.StatusSuccess,
		Score:          level.Score + specialization.Score + courses.Score,
		MaxScore:       maxScore,
		Level:          level,
		Specialization: specialization,
		Courses:        courses,
	}
}

func courseNames(courses []types.CourseRecord) []string {
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name)
	}
	return names
}

func renderCourses(courses []types.CourseRecord) string {
	var sb strings.Builder
	for _, c := range courses {
		sb.WriteString("- ")
		sb.WriteString(c.Name)
		if c.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(c.Description)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
