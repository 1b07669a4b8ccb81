package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/resume-evaluator/internal/types"
)

func TestSplitTiers(t *testing.T) {
	canonical := map[string]string{
		"Golang":     "Go",
		"Go":         "Go",
		"K8s":        "Kubernetes",
		"PostgreSQL": "PostgreSQL",
	}

	must, nice := splitTiers(
		[]string{"Golang", "K8s", "Team player"},
		[]string{"Go", "PostgreSQL"},
		canonical,
	)

	// "Team player" has no canonical mapping and drops out; "Go" already
	// appeared in must-have via "Golang" and must not repeat in nice-to-have.
	assert.Equal(t, []string{"Go", "Kubernetes"}, must.categories)
	assert.Equal(t, []string{"PostgreSQL"}, nice.categories)
}

func TestResolvePrecedence(t *testing.T) {
	pairs := map[string][]relevancePair{
		"kubernetes": {
			{VacancySkill: "Kubernetes", ResumeSkill: "Docker", Relevance: "half", Reason: "Container tooling."},
			{VacancySkill: "Kubernetes", ResumeSkill: "OpenShift", Relevance: "full", Reason: "Kubernetes distribution."},
			{VacancySkill: "Kubernetes", ResumeSkill: "Nomad", Relevance: "full", Reason: "Same orchestration niche."},
		},
		"graphql": {
			{VacancySkill: "GraphQL", ResumeSkill: "REST", Relevance: "half", Reason: "Alternative API style."},
		},
		"rust": {
			{VacancySkill: "Rust", ResumeSkill: "Excel", Relevance: "none", Reason: "Unrelated."},
		},
	}

	t.Run("direct match wins over pairs", func(t *testing.T) {
		m := resolve("Kubernetes", map[string]bool{"Kubernetes": true}, pairs)
		assert.Equal(t, types.SkillRelevanceCurrent, m.Relevance)
		assert.Equal(t, "Kubernetes", m.RelevantSkill)
		assert.Equal(t, "Direct term match.", m.Reason)
	})

	t.Run("first full pair wins over earlier half", func(t *testing.T) {
		m := resolve("Kubernetes", nil, pairs)
		assert.Equal(t, types.SkillRelevanceCurrent, m.Relevance)
		assert.Equal(t, "OpenShift", m.RelevantSkill)
	})

	t.Run("half when no full exists", func(t *testing.T) {
		m := resolve("GraphQL", nil, pairs)
		assert.Equal(t, types.SkillRelevanceHalf, m.Relevance)
		assert.Equal(t, "REST", m.RelevantSkill)
	})

	t.Run("none without a qualifying pair", func(t *testing.T) {
		m := resolve("Rust", nil, pairs)
		assert.Equal(t, types.SkillRelevanceNone, m.Relevance)
		assert.Equal(t, "No match found.", m.Reason)
	})
}

func TestBuildReportScoring(t *testing.T) {
	tests := []struct {
		name      string
		must      []string
		nice      []string
		direct    map[string]bool
		pairs     map[string][]relevancePair
		wantScore float64
	}{
		{
			name:   "both tiers split twenty fifteen",
			must:   []string{"Go", "Kubernetes"},
			nice:   []string{"GraphQL"},
			direct: map[string]bool{"Go": true, "GraphQL": true},
			// must 1/2 relevant, nice 1/1: 50/100*20 + 100/100*15.
			wantScore: 25,
		},
		{
			name:   "single tier carries full weight",
			must:   []string{"Go", "Kubernetes", "Rust"},
			direct: map[string]bool{"Go": true, "Kubernetes": true},
			// 2/3 relevant rounds to 66.7 percent of 35.
			wantScore: 23.3,
		},
		{
			name: "half matches count as relevant",
			must: []string{"Kubernetes"},
			pairs: map[string][]relevancePair{
				"kubernetes": {{VacancySkill: "Kubernetes", ResumeSkill: "Docker", Relevance: "half", Reason: "Container tooling."}},
			},
			wantScore: 35,
		},
		{
			name:      "nothing matched",
			must:      []string{"Go"},
			nice:      []string{"GraphQL"},
			wantScore: 0,
		},
		{
			name:      "no verifiable requirements at all",
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := buildReport(
				tierInput{categories: tt.must},
				tierInput{categories: tt.nice},
				tt.direct, tt.pairs, nil,
			)
			require.NotNil(t, report)
			assert.Equal(t, types.StatusSuccess, report.Status)
			assert.Equal(t, tt.wantScore, report.Score)
			assert.Equal(t, 35.0, report.MaxScore)
		})
	}
}

func TestBuildReportStats(t *testing.T) {
	report := buildReport(
		tierInput{categories: []string{"Go", "Kubernetes", "Rust", "Scala"}},
		tierInput{},
		map[string]bool{"Go": true},
		map[string][]relevancePair{
			"kubernetes": {{VacancySkill: "Kubernetes", ResumeSkill: "Docker", Relevance: "half"}},
		},
		[]types.DiscardedSkill{{Name: "Team player", Category: "personality_trait"}},
	)

	stats := report.MustHaveStats
	assert.Equal(t, 4, stats.TotalSkills)
	assert.Equal(t, 1, stats.CurrentCount)
	assert.Equal(t, 1, stats.HalfCount)
	assert.Equal(t, 2, stats.NoRelevanceCount)
	assert.Equal(t, 2, stats.RelevantCount)
	assert.Equal(t, 50.0, stats.RelevantPercentage)

	assert.Len(t, report.MustHave, 4)
	assert.Empty(t, report.NiceToHave)
	assert.Len(t, report.Discarded, 1)
}
