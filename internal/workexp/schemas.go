package workexp

import "fmt"

const historySchema = `{
	"type": "object",
	"required": ["work_list"],
	"properties": {
		"work_list": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["company_name", "position", "currently_working"],
				"properties": {
					"company_name": {"type": "string"},
					"position": {"type": "string"},
					"work_tasks": {"type": "string"},
					"start_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
					"end_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
					"declared_duration": {"type": "string"},
					"currently_working": {"type": "boolean"}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

const requiredYearsSchema = `{
	"type": "object",
	"required": ["work_years"],
	"properties": {
		"work_years": {"type": "integer", "minimum": 0}
	},
	"additionalProperties": false
}`

// relevanceSchema pins entry indices to the entries actually sent, so a
// verdict can never attach to a job that was not in the batch.
func relevanceSchema(entryCount int) string {
	return fmt.Sprintf(`{
	"type": "object",
	"required": ["entries"],
	"properties": {
		"entries": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["index", "relevance"],
				"properties": {
					"index": {"type": "integer", "minimum": 0, "maximum": %d},
					"relevance": {"type": "boolean"},
					"reason": {"type": "string"}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`, entryCount-1)
}
