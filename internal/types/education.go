package types

// EducationLevel is a normalized education level. Higher education covers a
// vocational requirement but not the other way around.
type EducationLevel string

// Education levels.
const (
	EducationHigher      EducationLevel = "higher"
	EducationVocational  EducationLevel = "vocational"
	EducationUnspecified EducationLevel = "unspecified"
)

// EducationRecord is one education item from a resume, or one requirement
// from a vacancy. Specializations come from a fixed set of canonical areas.
type EducationRecord struct {
	Level           EducationLevel `json:"level"`
	Specializations []string       `json:"specializations"`
}

// CourseRecord is one completed course from the resume.
type CourseRecord struct {
	Name        string `json:"course_name"`
	Description string `json:"description,omitempty"`
}

// CourseRelevance is the classification verdict for one course.
type CourseRelevance struct {
	Name     string `json:"course_name"`
	Relevant bool   `json:"relevant"`
	Reason   string `json:"reason"`
}

// EducationLevelSection scores the level requirement (max 10).
type EducationLevelSection struct {
	Score           int              `json:"score"`
	MaxScore        int              `json:"max_score"`
	Comment         string           `json:"comment"`
	RequiredLevel   EducationLevel   `json:"required_level"`
	CandidateLevels []EducationLevel `json:"candidate_levels"`
	RequirementMet  bool             `json:"requirement_met"`
}

// SpecializationSection scores the specialization overlap (max 5).
type SpecializationSection struct {
	Score     int      `json:"score"`
	MaxScore  int      `json:"max_score"`
	Comment   string   `json:"comment"`
	Required  []string `json:"required_specializations"`
	Candidate []string `json:"candidate_specializations"`
	Common    []string `json:"common_specializations"`
}

// CoursesSection scores course relevance (max 5).
type CoursesSection struct {
	Score      int               `json:"score"`
	MaxScore   int               `json:"max_score"`
	Comment    string            `json:"comment"`
	Relevant   []CourseRelevance `json:"relevant_courses,omitempty"`
	Irrelevant []CourseRelevance `json:"irrelevant_courses,omitempty"`
}

// EducationReport is the education dimension report, max score 20 split
// 10/5/5 across level, specialization and courses.
type EducationReport struct {
	Status         Status                `json:"status"`
	Score          int                   `json:"score"`
	MaxScore       int                   `json:"max_score"`
	Level          EducationLevelSection `json:"education_level"`
	Specialization SpecializationSection `json:"education_specialization"`
	Courses        CoursesSection        `json:"education_courses"`
}
