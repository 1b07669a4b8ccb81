package skills

import (
	"errors"
	"math"

	"github.com/mkravets/resume-evaluator/internal/types"
)

// Scoring weights. With both tiers present must-have carries 20 points and
// nice-to-have 15; a lone tier carries the whole 35.
const (
	maxScore         = 35.0
	mustHaveWeight   = 20.0
	niceToHaveWeight = 15.0
)

var (
	errEmptyRequirements = errors.New("no skill requirements extracted from vacancy")
	errIncompleteMapping = errors.New("canonical mapping does not cover every skill name")
)

// tierInput is the ordered canonical category list for one requirement tier.
type tierInput struct {
	categories []string
}

// splitTiers maps tier skill names onto canonical categories, preserving
// first-appearance order. A category required in both tiers counts once, in
// must-have.
func splitTiers(mustNames, niceNames []string, canonicalByName map[string]string) (tierInput, tierInput) {
	var must, nice tierInput
	seen := make(map[string]bool)

	for _, name := range mustNames {
		category, ok := canonicalByName[name]
		if !ok || seen[category] {
			continue
		}
		seen[category] = true
		must.categories = append(must.categories, category)
	}
	for _, name := range niceNames {
		category, ok := canonicalByName[name]
		if !ok || seen[category] {
			continue
		}
		seen[category] = true
		nice.categories = append(nice.categories, category)
	}
	return must, nice
}

// resolve produces the verdict for one canonical category: direct match
// first, then the relevance pairs with full > half > none precedence (first
// qualifying pair in input order wins).
func resolve(category string, direct map[string]bool, pairsByCategory map[string][]relevancePair) types.SkillMatch {
	if direct[category] {
		return types.SkillMatch{
			Relevance:     types.SkillRelevanceCurrent,
			RelevantSkill: category,
			Reason:        "Direct term match.",
		}
	}

	pairs := pairsByCategory[normalize(category)]
	for _, pair := range pairs {
		if pair.Relevance == "full" {
			return types.SkillMatch{
				Relevance:     types.SkillRelevanceCurrent,
				RelevantSkill: pair.ResumeSkill,
				Reason:        nonEmpty(pair.Reason, "Fully analogous skill."),
			}
		}
	}
	for _, pair := range pairs {
		if pair.Relevance == "half" {
			return types.SkillMatch{
				Relevance:     types.SkillRelevanceHalf,
				RelevantSkill: pair.ResumeSkill,
				Reason:        nonEmpty(pair.Reason, "Partially analogous skill."),
			}
		}
	}

	return types.SkillMatch{
		Relevance: types.SkillRelevanceNone,
		Reason:    "No match found.",
	}
}

func resolveTier(tier tierInput, direct map[string]bool, pairsByCategory map[string][]relevancePair) (map[string]types.SkillMatch, types.SkillTierStats) {
	if len(tier.categories) == 0 {
		return nil, types.SkillTierStats{}
	}

	matches := make(map[string]types.SkillMatch, len(tier.categories))
	stats := types.SkillTierStats{TotalSkills: len(tier.categories)}
	for _, category := range tier.categories {
		match := resolve(category, direct, pairsByCategory)
		matches[category] = match
		switch match.Relevance {
		case types.SkillRelevanceCurrent:
			stats.CurrentCount++
		case types.SkillRelevanceHalf:
			stats.HalfCount++
		default:
			stats.NoRelevanceCount++
		}
	}
	stats.RelevantCount = stats.CurrentCount + stats.HalfCount
	stats.RelevantPercentage = round1(float64(stats.RelevantCount) / float64(stats.TotalSkills) * 100)
	return matches, stats
}

func buildReport(must, nice tierInput, direct map[string]bool, pairsByCategory map[string][]relevancePair, discarded []types.DiscardedSkill) *types.SkillsReport {
	mustMatches, mustStats := resolveTier(must, direct, pairsByCategory)
	niceMatches, niceStats := resolveTier(nice, direct, pairsByCategory)

	var score float64
	switch {
	case mustStats.TotalSkills > 0 && niceStats.TotalSkills > 0:
		score = mustStats.RelevantPercentage/100*mustHaveWeight +
			niceStats.RelevantPercentage/100*niceToHaveWeight
	case mustStats.TotalSkills > 0:
		score = mustStats.RelevantPercentage / 100 * maxScore
	case niceStats.TotalSkills > 0:
		score = niceStats.RelevantPercentage / 100 * maxScore
	}

	return &types.SkillsReport{
		Status:          types.StatusSuccess,
		Score:           round1(score),
		MaxScore:        maxScore,
		MustHave:        mustMatches,
		NiceToHave:      niceMatches,
		MustHaveStats:   mustStats,
		NiceToHaveStats: niceStats,
		Discarded:       discarded,
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
