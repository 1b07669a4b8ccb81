package types

// SkillRelevance grades how well a vacancy skill is covered by the resume.
type SkillRelevance string

// Relevance tiers for a single vacancy skill.
const (
	// SkillRelevanceCurrent means a direct match or a fully analogous skill.
	SkillRelevanceCurrent SkillRelevance = "current"
	// SkillRelevanceHalf means a partially analogous skill.
	SkillRelevanceHalf SkillRelevance = "half"
	// SkillRelevanceNone means no resume skill covers the requirement.
	SkillRelevanceNone SkillRelevance = "no_relevance"
)

// SkillMatch is the verdict for one canonical vacancy skill.
type SkillMatch struct {
	Relevance     SkillRelevance `json:"relevance"`
	RelevantSkill string         `json:"relevant_skill,omitempty"`
	Reason        string         `json:"reason"`
}

// SkillTierStats summarizes one requirement tier (must-have or nice-to-have).
type SkillTierStats struct {
	TotalSkills        int     `json:"total_skills"`
	RelevantCount      int     `json:"relevant_count"`
	CurrentCount       int     `json:"current_count"`
	HalfCount          int     `json:"half_count"`
	NoRelevanceCount   int     `json:"no_relevance_count"`
	RelevantPercentage float64 `json:"relevant_percentage"`
}

// DiscardedSkill records a vacancy requirement excluded from scoring because
// its category cannot be verified against resume text (personality traits,
// vague phrasings and the like).
type DiscardedSkill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SkillsReport is the skill dimension report. Max score 35: 20 for
// must-have and 15 for nice-to-have when both tiers are present, otherwise
// the single present tier carries the full 35.
type SkillsReport struct {
	Status          Status                `json:"status"`
	Score           float64               `json:"score"`
	MaxScore        float64               `json:"max_score"`
	MustHave        map[string]SkillMatch `json:"must_have_skills,omitempty"`
	NiceToHave      map[string]SkillMatch `json:"nice_to_have_skills,omitempty"`
	MustHaveStats   SkillTierStats        `json:"must_have_stats"`
	NiceToHaveStats SkillTierStats        `json:"nice_to_have_stats"`
	Discarded       []DiscardedSkill      `json:"discarded_skills,omitempty"`
}
