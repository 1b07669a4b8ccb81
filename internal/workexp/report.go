package workexp

import (
	"fmt"
	"time"

	"github.com/mkravets/resume-evaluator/internal/types"
)

const (
	maxScore           = 35
	maxExperienceScore = 30
	maxStabilityScore  = 5
)

// experienceScore maps relevant experience against the requirement onto the
// 30-point ladder. No requirement means a full score; no relevant experience
// against a real requirement means zero, no matter how small the shortfall.
func experienceScore(relevantMonths, requiredMonths int) int {
	switch {
	case requiredMonths == 0:
		return maxExperienceScore
	case relevantMonths == 0:
		return 0
	case relevantMonths >= requiredMonths:
		return maxExperienceScore
	case relevantMonths >= requiredMonths-6:
		return 25
	case relevantMonths >= requiredMonths-12:
		return 15
	case relevantMonths >= requiredMonths-24:
		return 10
	case relevantMonths >= requiredMonths-36:
		return 5
	default:
		return 0
	}
}

func experienceComment(relevantMonths, requiredMonths int) string {
	switch {
	case requiredMonths == 0:
		return "The vacancy does not state an experience requirement."
	case relevantMonths == 0:
		return "No relevant experience found."
	case relevantMonths >= requiredMonths:
		return fmt.Sprintf("Relevant experience %s meets the required %s.",
			formatMonths(relevantMonths), formatMonths(requiredMonths))
	default:
		return fmt.Sprintf("Relevant experience %s falls short of the required %s.",
			formatMonths(relevantMonths), formatMonths(requiredMonths))
	}
}

// stability awards 5 points unless two or more jobs both started and ended
// within the trailing twelve months.
func stability(entries []types.WorkHistoryEntry, today time.Time) types.JobStability {
	windowStart := today.AddDate(-1, 0, 0)

	shortJobs := 0
	for _, entry := range entries {
		start, ok := parseDate(entry.StartDate)
		if !ok || start.Before(windowStart) {
			continue
		}
		end, ok := parseDate(entry.EndDate)
		if !ok || end.Before(windowStart) || end.After(today) {
			continue
		}
		shortJobs++
	}

	result := types.JobStability{
		Score:    maxStabilityScore,
		MaxScore: maxStabilityScore,
		CheckPeriod: fmt.Sprintf("%s to %s",
			windowStart.Format(dateLayout), today.Format(dateLayout)),
	}
	if shortJobs >= 2 {
		result.FrequentJobChange = true
		result.Score = 0
		result.Reason = fmt.Sprintf("%d jobs started and ended within the last 12 months.", shortJobs)
	} else {
		result.Reason = "No frequent job changes in the last 12 months."
	}
	return result
}

func buildReport(entries []types.WorkHistoryEntry, requiredYears int, today time.Time) *types.WorkExperienceReport {
	totals := types.ExperienceTotals{}
	for _, entry := range entries {
		totals.TotalMonths += entry.TrueMonths
		if !entry.DurationKnown {
			totals.UnknownDurationEntries++
		}
		switch entry.Relevance {
		case types.WorkRelevanceTrue:
			totals.RelevantMonths += entry.TrueMonths
		case types.WorkRelevanceFalse:
			totals.IrrelevantMonths += entry.TrueMonths
		}
	}
	totals.Total = formatMonths(totals.TotalMonths)
	totals.Relevant = formatMonths(totals.RelevantMonths)
	totals.Irrelevant = formatMonths(totals.IrrelevantMonths)

	requiredMonths := requiredYears * 12
	expScore := experienceScore(totals.RelevantMonths, requiredMonths)
	stab := stability(entries, today)

	return &types.WorkExperienceReport{
		Status:            types.StatusSuccess,
		Score:             expScore + stab.Score,
		MaxScore:          maxScore,
		ExperienceScore:   expScore,
		ExperienceComment: experienceComment(totals.RelevantMonths, requiredMonths),
		RequiredYears:     requiredYears,
		Totals:            totals,
		Entries:           entries,
		Stability:         stab,
	}
}
