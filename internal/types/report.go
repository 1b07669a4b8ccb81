// Package types provides type definitions for the structured data exchanged
// between the dimension evaluators, the orchestrator and the queue worker.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Status marks whether an evaluator produced a usable report.
type Status string

// Report statuses. A failed report carries no meaningful score and must not
// be folded into a combined result.
const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// CombinedReport aggregates the five dimension reports for one evaluation
// request. It is assembled once by the orchestrator and never mutated.
type CombinedReport struct {
	Salary         *SalaryReport         `json:"salary_evaluation"`
	Education      *EducationReport      `json:"education_evaluation"`
	Additional     *ScheduleReport       `json:"additional_evaluation"`
	WorkExperience *WorkExperienceReport `json:"work_experience_report"`
	Skills         *SkillsReport         `json:"skills_report"`
}

// Complete reports whether every dimension is present and succeeded.
func (r *CombinedReport) Complete() bool {
	if r == nil {
		return false
	}
	return r.Salary != nil && r.Salary.Status == StatusSuccess &&
		r.Education != nil && r.Education.Status == StatusSuccess &&
		r.Additional != nil && r.Additional.Status == StatusSuccess &&
		r.WorkExperience != nil && r.WorkExperience.Status == StatusSuccess &&
		r.Skills != nil && r.Skills.Status == StatusSuccess
}

// TotalScore sums the five dimension scores. It is a pure function of the
// dimension reports: feeding a report's scores back through it reproduces
// the same total.
func (r *CombinedReport) TotalScore() float64 {
	if !r.Complete() {
		return 0
	}
	return float64(r.Salary.Score) +
		float64(r.Education.Score) +
		float64(r.Additional.Score) +
		float64(r.WorkExperience.Score) +
		r.Skills.Score
}

// TotalMaxScore sums the per-dimension maxima (5+20+5+35+35 = 100).
func (r *CombinedReport) TotalMaxScore() float64 {
	if !r.Complete() {
		return 0
	}
	return float64(r.Salary.MaxScore) +
		float64(r.Education.MaxScore) +
		float64(r.Additional.MaxScore) +
		float64(r.WorkExperience.MaxScore) +
		r.Skills.MaxScore
}
