package evaluation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mkravets/resume-evaluator/internal/types"
)

type stubSalary struct{ report *types.SalaryReport }
type stubEducation struct{ report *types.EducationReport }
type stubSchedule struct{ report *types.ScheduleReport }
type stubWorkExp struct{ report *types.WorkExperienceReport }
type stubSkills struct{ report *types.SkillsReport }

func (s stubSalary) Evaluate(context.Context, string, string) *types.SalaryReport {
	return s.report
}
func (s stubEducation) Evaluate(context.Context, string, string) *types.EducationReport {
	return s.report
}
func (s stubSchedule) Evaluate(context.Context, string, string) *types.ScheduleReport {
	return s.report
}
func (s stubWorkExp) Evaluate(context.Context, string, string) *types.WorkExperienceReport {
	return s.report
}
func (s stubSkills) Evaluate(context.Context, string, string) *types.SkillsReport {
	return s.report
}

func newStubOrchestrator(salaryStatus, educationStatus, scheduleStatus, workStatus, skillsStatus types.Status) *Orchestrator {
	return &Orchestrator{
		salary:    stubSalary{&types.SalaryReport{Status: salaryStatus, Score: 5, MaxScore: 5}},
		education: stubEducation{&types.EducationReport{Status: educationStatus, Score: 15, MaxScore: 20}},
		schedule:  stubSchedule{&types.ScheduleReport{Status: scheduleStatus, Score: 5, MaxScore: 5}},
		workexp:   stubWorkExp{&types.WorkExperienceReport{Status: workStatus, Score: 30, MaxScore: 35}},
		skills:    stubSkills{&types.SkillsReport{Status: skillsStatus, Score: 27.5, MaxScore: 35}},
		log:       zap.NewNop(),
	}
}

func allSuccess() *Orchestrator {
	return newStubOrchestrator(types.StatusSuccess, types.StatusSuccess,
		types.StatusSuccess, types.StatusSuccess, types.StatusSuccess)
}

func TestEvaluateCombinesDimensions(t *testing.T) {
	report, err := allSuccess().Evaluate(context.Background(), "vacancy", "resume")
	require.NoError(t, err)
	require.True(t, report.Complete())

	assert.Equal(t, 82.5, report.TotalScore())
	assert.Equal(t, 100.0, report.TotalMaxScore())
}

func TestEvaluateAllOrNothing(t *testing.T) {
	o := newStubOrchestrator(types.StatusSuccess, types.StatusSuccess,
		types.StatusSuccess, types.StatusFailed, types.StatusSuccess)

	report, err := o.Evaluate(context.Background(), "vacancy", "resume")
	require.ErrorIs(t, err, ErrIncomplete)
	// The partial report is still handed back for diagnostics, but it
	// refuses to produce a total.
	require.NotNil(t, report)
	assert.False(t, report.Complete())
	assert.Zero(t, report.TotalScore())
}

func TestEvaluateRejectsBlankInput(t *testing.T) {
	o := allSuccess()

	_, err := o.Evaluate(context.Background(), "   \r\n ", "resume")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = o.Evaluate(context.Background(), "vacancy", "")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// Marshaling a combined report and reading it back must reproduce the same
// totals; aggregation depends only on the dimension scores.
func TestCombinedReportRoundTrip(t *testing.T) {
	report, err := allSuccess().Evaluate(context.Background(), "vacancy", "resume")
	require.NoError(t, err)

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded types.CombinedReport
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.True(t, decoded.Complete())
	assert.Equal(t, report.TotalScore(), decoded.TotalScore())
	assert.Equal(t, report.TotalMaxScore(), decoded.TotalMaxScore())

	for _, key := range []string{
		"salary_evaluation", "education_evaluation", "additional_evaluation",
		"work_experience_report", "skills_report",
	} {
		assert.Contains(t, string(raw), key)
	}
}
