package education

import (
	"fmt"

	"github.com/mkravets/resume-evaluator/internal/schemas"
)

// Canonical specialization areas. "other" and "unspecified" are accepted
// from extraction but never count toward the overlap.
var specializationAreas = []string{
	"technical", "economic", "logistics", "humanities", "legal", "creative",
	"medical", "engineering", "pedagogical", "other", "unspecified",
}

var educationSchema = fmt.Sprintf(`{
	"type": "object",
	"required": ["education"],
	"properties": {
		"education": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["level", "specializations"],
				"properties": {
					"level": {"enum": ["higher", "vocational", "unspecified"]},
					"specializations": {"type": "array", "items": {"enum": %s}}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`, schemas.EnumJSON(specializationAreas))

const coursesSchema = `{
	"type": "object",
	"required": ["courses"],
	"properties": {
		"courses": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["course_name"],
				"properties": {
					"course_name": {"type": "string", "minLength": 1},
					"description": {"type": "string"}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

func courseRelevanceSchema(names []string) string {
	return fmt.Sprintf(`{
	"type": "object",
	"required": ["courses"],
	"properties": {
		"courses": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["course_name", "relevant"],
				"properties": {
					"course_name": {"enum": %s},
					"relevant": {"type": "boolean"},
					"reason": {"type": "string"}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`, schemas.EnumJSON(names))
}
