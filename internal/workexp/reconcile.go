package workexp

import (
	"time"

	"github.com/mkravets/resume-evaluator/internal/types"
)

// reconcile fills an entry's derived duration fields. Dates win over the
// declared tenure string once they imply at least as much time; a declared
// figure longer than the dated span is trusted instead, since resumes often
// list only the months they remember. A declared figure without any dates
// backing it is not credited: such entries stay at zero months and are
// flagged unknown, like entries with no evidence at all.
func reconcile(entry *types.WorkHistoryEntry, today time.Time) {
	declared, declaredOK := parseDeclaredDuration(entry.DeclaredDuration)

	calculated := 0
	calculatedOK := false
	if start, ok := parseDate(entry.StartDate); ok {
		if end, ok := parseDate(entry.EndDate); ok {
			calculated = monthsBetween(start, end)
			calculatedOK = true
		} else if entry.CurrentlyWorking || entry.EndDate == "" {
			calculated = monthsBetween(start, today)
			calculatedOK = true
		}
	}

	entry.CalculatedMonths = calculated

	switch {
	case calculatedOK && declaredOK:
		entry.DurationKnown = true
		entry.DurationMismatch = calculated != declared
		if calculated >= declared {
			entry.TrueMonths = calculated
		} else {
			entry.TrueMonths = declared
		}
	case calculatedOK:
		entry.DurationKnown = true
		entry.TrueMonths = calculated
	default:
		entry.DurationKnown = false
		entry.TrueMonths = 0
	}

	entry.TrueDurationLabel = formatMonths(entry.TrueMonths)
}
