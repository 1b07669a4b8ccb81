package skills

import (
	"fmt"

	"github.com/mkravets/resume-evaluator/internal/schemas"
)

// Target schemas for the pipeline's structured generation calls. The
// dynamic ones pin generated names to enums built from the call's own
// inputs, so the model cannot answer about a skill it was not asked about.

const requirementsSchema = `{
	"type": "object",
	"required": ["requirements_text"],
	"properties": {
		"requirements_text": {"type": "string", "minLength": 1}
	},
	"additionalProperties": false
}`

const resumeSkillsSchema = `{
	"type": "object",
	"required": ["skills"],
	"properties": {
		"skills": {"type": "array", "items": {"type": "string", "minLength": 1}}
	},
	"additionalProperties": false
}`

const classifySchema = `{
	"type": "object",
	"required": ["must_have_skills", "nice_to_have_skills"],
	"properties": {
		"must_have_skills": {"type": "array", "items": {"type": "string", "minLength": 1}},
		"nice_to_have_skills": {"type": "array", "items": {"type": "string", "minLength": 1}}
	},
	"additionalProperties": false
}`

const aggregateSchema = `{
	"type": "object",
	"required": ["skills"],
	"properties": {
		"skills": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}}
	},
	"additionalProperties": false
}`

func categorizeSchema(names []string) string {
	return fmt.Sprintf(`{
	"type": "object",
	"required": ["skills"],
	"properties": {
		"skills": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["skill_name", "category"],
				"properties": {
					"skill_name": {"enum": %s},
					"category": {"enum": %s}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`, schemas.EnumJSON(names), schemas.EnumJSON(allCategories))
}

func matchCanonicalSchema(originals, categories []string) string {
	return fmt.Sprintf(`{
	"type": "object",
	"required": ["skills"],
	"properties": {
		"skills": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["original_name", "category"],
				"properties": {
					"original_name": {"enum": %s},
					"category": {"enum": %s}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`, schemas.EnumJSON(originals), schemas.EnumJSON(categories))
}

func relevanceSchema(vacancySkills, resumeSkills []string) string {
	return fmt.Sprintf(`{
	"type": "object",
	"required": ["pairs"],
	"properties": {
		"pairs": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["vacancy_skill", "resume_skill", "relevance"],
				"properties": {
					"vacancy_skill": {"enum": %s},
					"resume_skill": {"enum": %s},
					"reason": {"type": "string"},
					"relevance": {"enum": ["full", "half", "none"]}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`, schemas.EnumJSON(vacancySkills), schemas.EnumJSON(resumeSkills))
}
