// Package skills implements the skill matching engine: extraction of
// requirements and resume skills, classification and canonicalization of
// vacancy skill names, direct and fallback matching against the resume, and
// tiered relevance scoring.
package skills

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkravets/resume-evaluator/internal/generation"
	"github.com/mkravets/resume-evaluator/internal/llm"
	"github.com/mkravets/resume-evaluator/internal/prompts"
	"github.com/mkravets/resume-evaluator/internal/textutil"
	"github.com/mkravets/resume-evaluator/internal/types"
)

const promptFile = "skills.json"

type requirementsPayload struct {
	RequirementsText string `json:"requirements_text"`
}

type resumeSkillsPayload struct {
	Skills []string `json:"skills"`
}

type classifiedRequirements struct {
	MustHave   []string `json:"must_have_skills"`
	NiceToHave []string `json:"nice_to_have_skills"`
}

type categorizedSkill struct {
	SkillName string `json:"skill_name"`
	Category  string `json:"category"`
}

type categorizedPayload struct {
	Skills []categorizedSkill `json:"skills"`
}

type aggregatedPayload struct {
	Skills []string `json:"skills"`
}

type canonicalMatch struct {
	OriginalName string `json:"original_name"`
	Category     string `json:"category"`
}

type canonicalPayload struct {
	Skills []canonicalMatch `json:"skills"`
}

type relevancePair struct {
	VacancySkill string `json:"vacancy_skill"`
	ResumeSkill  string `json:"resume_skill"`
	Reason       string `json:"reason"`
	Relevance    string `json:"relevance"`
}

type relevancePayload struct {
	Pairs []relevancePair `json:"pairs"`
}

// Evaluator runs the skill matching pipeline.
type Evaluator struct {
	gen *generation.Generator
	log *zap.Logger
}

// NewEvaluator creates a skill evaluator.
func NewEvaluator(gen *generation.Generator, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{gen: gen, log: log}
}

func (e *Evaluator) failed(stage string, err error) *types.SkillsReport {
	e.log.Warn("skill evaluation failed", zap.String("stage", stage), zap.Error(err))
	return &types.SkillsReport{Status: types.StatusFailed}
}

// Evaluate produces the skills dimension report. Any stage failure aborts
// the whole dimension; no partial skill score is ever returned.
func (e *Evaluator) Evaluate(ctx context.Context, vacancyText, resumeText string) *types.SkillsReport {
	// Stage 1: requirements block and resume skills, extracted concurrently.
	var reqs requirementsPayload
	var resume resumeSkillsPayload

	g := new(errgroup.Group)
	g.Go(func() error {
		return e.gen.GenerateInto(ctx, generation.Request{
			Prompt: prompts.Format(prompts.MustGet(promptFile, "extract-requirements"),
				map[string]string{"VacancyText": vacancyText}),
			Schema: requirementsSchema,
			Tier:   llm.TierStandard,
		}, &reqs)
	})
	g.Go(func() error {
		return e.gen.GenerateInto(ctx, generation.Request{
			Prompt: prompts.Format(prompts.MustGet(promptFile, "extract-resume-skills"),
				map[string]string{"ResumeText": resumeText}),
			Schema: resumeSkillsSchema,
			Tier:   llm.TierStandard,
		}, &resume)
	})
	if err := g.Wait(); err != nil {
		return e.failed("extract", err)
	}
	// Model output sometimes carries padded or empty skill strings that
	// would break the lower-cased direct match.
	resume.Skills = textutil.CleanAll(resume.Skills)

	// Stage 2: split requirements into must-have and nice-to-have.
	var classified classifiedRequirements
	err := e.gen.GenerateInto(ctx, generation.Request{
		Prompt: prompts.Format(prompts.MustGet(promptFile, "classify-requirements"),
			map[string]string{"RequirementsText": reqs.RequirementsText}),
		Schema: classifySchema,
		Tier:   llm.TierStandard,
	}, &classified)
	if err != nil {
		return e.failed("classify", err)
	}
	mustHave := dedupe(classified.MustHave)
	niceToHave := dedupe(classified.NiceToHave)
	allNames := dedupe(append(append([]string{}, mustHave...), niceToHave...))
	if len(allNames) == 0 {
		return e.failed("classify", errEmptyRequirements)
	}

	// Stage 3: category per skill name; keep only verifiable categories.
	var categorized categorizedPayload
	err = e.gen.GenerateInto(ctx, generation.Request{
		Prompt: prompts.Format(prompts.MustGet(promptFile, "categorize-skills"),
			map[string]string{"Skills": bulletList(allNames)}),
		Schema: categorizeSchema(allNames),
		Tier:   llm.TierLite,
	}, &categorized)
	if err != nil {
		return e.failed("categorize", err)
	}

	var verifiable []string
	var discarded []types.DiscardedSkill
	categoryByName := make(map[string]string, len(categorized.Skills))
	for _, skill := range categorized.Skills {
		if _, seen := categoryByName[skill.SkillName]; seen {
			continue
		}
		categoryByName[skill.SkillName] = skill.Category
		if verifiableCategories[skill.Category] {
			verifiable = append(verifiable, skill.SkillName)
		} else {
			discarded = append(discarded, types.DiscardedSkill{
				Name:     skill.SkillName,
				Category: skill.Category,
			})
		}
	}

	if len(verifiable) == 0 {
		// Nothing left to verify against the resume. Not a failure: the
		// vacancy simply asked for nothing checkable.
		report := buildReport(tierInput{}, tierInput{}, nil, nil, discarded)
		return report
	}

	// Stage 4: aggregate surface forms into canonical categories.
	var aggregated aggregatedPayload
	err = e.gen.GenerateInto(ctx, generation.Request{
		Prompt: prompts.Format(prompts.MustGet(promptFile, "aggregate-skills"),
			map[string]string{"Skills": bulletList(verifiable)}),
		Schema: aggregateSchema,
		Tier:   llm.TierStandard,
	}, &aggregated)
	if err != nil {
		return e.failed("aggregate", err)
	}
	canonical := dedupe(aggregated.Skills)

	// Stage 5: map each original name to exactly one canonical category.
	var matched canonicalPayload
	err = e.gen.GenerateInto(ctx, generation.Request{
		Prompt: prompts.Format(prompts.MustGet(promptFile, "match-canonical"), map[string]string{
			"Skills":     bulletList(verifiable),
			"Categories": bulletList(canonical),
		}),
		Schema: matchCanonicalSchema(verifiable, canonical),
		Tier:   llm.TierStandard,
	}, &matched)
	if err != nil {
		return e.failed("match", err)
	}

	canonicalByName := make(map[string]string, len(matched.Skills))
	for _, m := range matched.Skills {
		if _, seen := canonicalByName[m.OriginalName]; seen {
			continue
		}
		canonicalByName[m.OriginalName] = m.Category
	}
	for _, name := range verifiable {
		if _, ok := canonicalByName[name]; !ok {
			return e.failed("match", errIncompleteMapping)
		}
	}

	// Stage 6: direct match of canonical categories against resume skills.
	resumeSkills := dedupe(resume.Skills)
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s)] = true
	}

	categories := orderedCategories(verifiable, canonicalByName)
	directMatched := make(map[string]bool)
	var unmatched []string
	for _, category := range categories {
		if resumeSet[strings.ToLower(category)] {
			directMatched[category] = true
		} else {
			unmatched = append(unmatched, category)
		}
	}

	// Stage 7: batched pairwise relevance for the unmatched categories.
	pairsByCategory := make(map[string][]relevancePair)
	if len(unmatched) > 0 && len(resumeSkills) > 0 {
		var relevance relevancePayload
		err = e.gen.GenerateInto(ctx, generation.Request{
			Prompt: prompts.Format(prompts.MustGet(promptFile, "relevance-pairs"),
				map[string]string{"Pairs": renderPairs(unmatched, resumeSkills)}),
			Schema: relevanceSchema(unmatched, resumeSkills),
			Tier:   llm.TierAdvanced,
		}, &relevance)
		if err != nil {
			return e.failed("relevance", err)
		}
		for _, pair := range relevance.Pairs {
			key := normalize(pair.VacancySkill)
			pairsByCategory[key] = append(pairsByCategory[key], pair)
		}
	}

	// Stage 8: tier statistics and the final score.
	mustTier, niceTier := splitTiers(mustHave, niceToHave, canonicalByName)
	report := buildReport(mustTier, niceTier, directMatched, pairsByCategory, discarded)

	e.log.Info("skill evaluation complete",
		zap.Float64("score", report.Score),
		zap.Int("must_have", report.MustHaveStats.TotalSkills),
		zap.Int("nice_to_have", report.NiceToHaveStats.TotalSkills),
		zap.Int("discarded", len(discarded)))
	return report
}

// orderedCategories returns the unique canonical categories in the order
// their first original name appears.
func orderedCategories(names []string, canonicalByName map[string]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range names {
		category := canonicalByName[name]
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}
	return out
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func bulletList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderPairs serializes the full cross-product of unmatched vacancy
// categories and resume skills, in stable input order.
func renderPairs(vacancySkills, resumeSkills []string) string {
	type pair struct {
		VacancySkill string `json:"vacancy_skill"`
		ResumeSkill  string `json:"resume_skill"`
	}
	pairs := make([]pair, 0, len(vacancySkills)*len(resumeSkills))
	for _, v := range vacancySkills {
		for _, r := range resumeSkills {
			pairs = append(pairs, pair{VacancySkill: v, ResumeSkill: r})
		}
	}
	out, _ := json.Marshal(pairs)
	return string(out)
}
