package types

// WorkRelevance tags a work-history entry as relevant to the vacancy or not.
// Unknown means the relevance classification skipped the entry; such entries
// are excluded from both relevant and irrelevant totals.
type WorkRelevance string

// Work-history relevance values.
const (
	WorkRelevanceTrue    WorkRelevance = "true"
	WorkRelevanceFalse   WorkRelevance = "false"
	WorkRelevanceUnknown WorkRelevance = "unknown"
)

// WorkHistoryEntry is one job from the resume, enriched with reconciled
// duration and relevance during analysis. Dates use the YYYY-MM-DD format.
type WorkHistoryEntry struct {
	Company          string `json:"company_name"`
	Position         string `json:"position"`
	Tasks            string `json:"work_tasks,omitempty"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	DeclaredDuration string `json:"declared_duration,omitempty"`
	CurrentlyWorking bool   `json:"currently_working"`

	// Derived fields, populated by the analyzer.
	CalculatedMonths  int           `json:"calculated_duration_months"`
	TrueMonths        int           `json:"true_duration_months"`
	TrueDurationLabel string        `json:"true_duration"`
	DurationKnown     bool          `json:"duration_known"`
	DurationMismatch  bool          `json:"duration_mismatch"`
	Relevance         WorkRelevance `json:"relevance"`
	RelevanceReason   string        `json:"relevance_reason,omitempty"`
}

// ExperienceTotals sums reconciled durations across the history.
type ExperienceTotals struct {
	TotalMonths      int    `json:"total_months"`
	Total            string `json:"total"`
	RelevantMonths   int    `json:"relevant_months"`
	Relevant         string `json:"relevant"`
	IrrelevantMonths int    `json:"irrelevant_months"`
	Irrelevant       string `json:"irrelevant"`
	// UnknownDurationEntries counts jobs whose tenure could not be
	// established; real experience may be understated when nonzero.
	UnknownDurationEntries int `json:"unknown_duration_entries"`
}

// JobStability is the frequent-job-change sub-score: 0 of 5 when two or more
// jobs both started and ended within the trailing twelve months.
type JobStability struct {
	FrequentJobChange bool   `json:"frequent_job_change"`
	Reason            string `json:"reason"`
	Score             int    `json:"score"`
	MaxScore          int    `json:"max_score"`
	CheckPeriod       string `json:"check_period"`
}

// WorkExperienceReport is the work-history dimension report: experience
// score (max 30) plus stability score (max 5).
type WorkExperienceReport struct {
	Status            Status             `json:"status"`
	Score             int                `json:"score"`
	MaxScore          int                `json:"max_score"`
	ExperienceScore   int                `json:"experience_score"`
	ExperienceComment string             `json:"experience_comment"`
	RequiredYears     int                `json:"required_experience_years"`
	Totals            ExperienceTotals   `json:"totals"`
	Entries           []WorkHistoryEntry `json:"entries,omitempty"`
	Stability         JobStability       `json:"stability"`
}
