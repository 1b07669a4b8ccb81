package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkravets/resume-evaluator/internal/types"
)

func TestPrintCombinedReport(t *testing.T) {
	report := &types.CombinedReport{
		Salary:         &types.SalaryReport{Status: types.StatusSuccess, Score: 5, MaxScore: 5},
		Education:      &types.EducationReport{Status: types.StatusSuccess, Score: 15, MaxScore: 20},
		Additional:     &types.ScheduleReport{Status: types.StatusSuccess, Score: 5, MaxScore: 5},
		WorkExperience: &types.WorkExperienceReport{Status: types.StatusSuccess, Score: 30, MaxScore: 35},
		Skills:         &types.SkillsReport{Status: types.StatusSuccess, Score: 27.5, MaxScore: 35},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintCombinedReport(report)

	out := buf.String()
	assert.Contains(t, out, "Evaluation Result")
	assert.Contains(t, out, "Skills:          27.5 / 35")
	assert.Contains(t, out, "Total:           82.5 / 100")
}

func TestPrintCombinedReportIncomplete(t *testing.T) {
	report := &types.CombinedReport{
		Salary: &types.SalaryReport{Status: types.StatusFailed},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintCombinedReport(report)

	assert.Contains(t, buf.String(), "Incomplete")
}

func TestPrintCombinedReportNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCombinedReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkillsDetail(t *testing.T) {
	report := &types.SkillsReport{
		Status: types.StatusSuccess,
		MustHave: map[string]types.SkillMatch{
			"Go":         {Relevance: types.SkillRelevanceCurrent},
			"Kubernetes": {Relevance: types.SkillRelevanceHalf},
		},
		MustHaveStats: types.SkillTierStats{TotalSkills: 2, RelevantCount: 2, RelevantPercentage: 100},
		Discarded:     []types.DiscardedSkill{{Name: "Team player", Category: "personality_trait"}},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkillsDetail(report)

	out := buf.String()
	assert.Contains(t, out, "Must-have (100% relevant)")
	assert.Contains(t, out, "Go: current")
	assert.Contains(t, out, "Discarded as unverifiable: 1")
}
