package types

// SalaryRange is the structured salary fact extracted from one side
// (vacancy offer or resume expectation).
type SalaryRange struct {
	MinAmount     *int   `json:"min_amount"`
	MaxAmount     *int   `json:"max_amount"`
	IsSpecified   bool   `json:"is_specified"`
	ExtractedText string `json:"extracted_text,omitempty"`
}

// SalaryReport is the salary dimension report. Max score 5, mapped from the
// deviation of the candidate's expectation over the vacancy offer. A side
// without extractable salary data degrades to the neutral maximum rather
// than failing.
type SalaryReport struct {
	Status           Status   `json:"status"`
	Score            int      `json:"score"`
	MaxScore         int      `json:"max_score"`
	Message          string   `json:"message"`
	ResumeSalary     string   `json:"resume_salary,omitempty"`
	ResumeText       string   `json:"resume_text,omitempty"`
	VacancySalary    string   `json:"vacancy_salary,omitempty"`
	VacancyText      string   `json:"vacancy_text,omitempty"`
	DeviationPercent *float64 `json:"deviation_percent,omitempty"`
}
