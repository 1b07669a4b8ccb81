package types

// ScheduleTag is a normalized work-schedule label.
type ScheduleTag string

// Recognized schedule tags.
const (
	ScheduleFullDay    ScheduleTag = "full_day"
	ScheduleReducedDay ScheduleTag = "reduced_day"
	ScheduleFlexible   ScheduleTag = "flexible"
	ScheduleShift      ScheduleTag = "shift"
	ScheduleRemote     ScheduleTag = "remote"
	SchedulePartTime   ScheduleTag = "part_time"
	ScheduleFullTime   ScheduleTag = "full_time"
	ScheduleRotation   ScheduleTag = "rotation"
	ScheduleOther      ScheduleTag = "other"
)

// ScheduleInfo describes one side's work-schedule expectations.
type ScheduleInfo struct {
	Tags    []ScheduleTag `json:"schedule"`
	Details string        `json:"details,omitempty"`
}

// ScheduleReport is the schedule dimension report: 5 points when the
// candidate's preferred schedule is compatible with the vacancy, 0 otherwise.
type ScheduleReport struct {
	Status          Status       `json:"status"`
	Score           int          `json:"score"`
	MaxScore        int          `json:"max_score"`
	VacancySchedule ScheduleInfo `json:"vacancy_schedule"`
	ResumeSchedule  ScheduleInfo `json:"resume_schedule"`
	Match           bool         `json:"match"`
	Reason          string       `json:"reason"`
}
