package skills

// Skill categories assigned during classification. Only verifiable
// categories survive into scoring: unverifiable claims like "responsible"
// cannot be matched against resume text, and keeping them would let false
// negatives dominate the score.
const (
	categoryTechnology  = "technology_tool"
	categoryProgLang    = "programming_language"
	categoryNaturalLang = "natural_language"
	categoryMethodology = "methodology_standard"
	categoryBusiness    = "business_skill"
	categoryProcess     = "process_skill"
	categoryPersonality = "personality_trait"
	categorySubjective  = "subjective_claim"
	categoryVague       = "vague_phrasing"
	categoryEducation   = "education_requirement"
	categoryRoleExp     = "role_experience"
)

var allCategories = []string{
	categoryTechnology,
	categoryProgLang,
	categoryNaturalLang,
	categoryMethodology,
	categoryBusiness,
	categoryProcess,
	categoryPersonality,
	categorySubjective,
	categoryVague,
	categoryEducation,
	categoryRoleExp,
}

var verifiableCategories = map[string]bool{
	categoryTechnology:  true,
	categoryProgLang:    true,
	categoryNaturalLang: true,
	categoryMethodology: true,
	categoryBusiness:    true,
	categoryProcess:     true,
}
