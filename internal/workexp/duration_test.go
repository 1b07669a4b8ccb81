package workexp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/resume-evaluator/internal/types"
)

func date(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDeclaredDuration(t *testing.T) {
	tests := []struct {
		in     string
		months int
		ok     bool
	}{
		{"2 years 3 months", 27, true},
		{"3 years", 36, true},
		{"1 year", 12, true},
		{"18 months", 18, true},
		{"2 г. 4 мес.", 28, true},
		{"5 лет", 60, true},
		{"1 месяц", 1, true},
		{"  3 Years 1 Month ", 37, true},
		{"", 0, false},
		{"since forever", 0, false},
		{"full time", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			months, ok := parseDeclaredDuration(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.months, months)
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"exact years", "2020-01-01", "2023-01-01", 36},
		{"partial trailing month not counted", "2020-01-15", "2020-03-10", 1},
		{"day of month reached", "2020-01-15", "2020-03-15", 2},
		{"same day", "2020-05-01", "2020-05-01", 0},
		{"end before start", "2021-01-01", "2020-01-01", 0},
		{"across year boundary", "2022-11-01", "2023-02-01", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthsBetween(date(tt.start), date(tt.end)))
		})
	}
}

func TestReconcile(t *testing.T) {
	today := date("2024-06-01")

	t.Run("dates win when they imply at least the declared tenure", func(t *testing.T) {
		entry := types.WorkHistoryEntry{
			StartDate:        "2020-01-01",
			EndDate:          "2023-01-01",
			DeclaredDuration: "2 years",
		}
		reconcile(&entry, today)
		assert.Equal(t, 36, entry.TrueMonths)
		assert.True(t, entry.DurationKnown)
		assert.True(t, entry.DurationMismatch)
	})

	t.Run("declared wins when dates imply less", func(t *testing.T) {
		entry := types.WorkHistoryEntry{
			StartDate:        "2022-01-01",
			EndDate:          "2022-07-01",
			DeclaredDuration: "1 year",
		}
		reconcile(&entry, today)
		assert.Equal(t, 6, entry.CalculatedMonths)
		assert.Equal(t, 12, entry.TrueMonths)
		assert.True(t, entry.DurationMismatch)
	})

	t.Run("current job counts up to today", func(t *testing.T) {
		entry := types.WorkHistoryEntry{
			StartDate:        "2023-06-01",
			CurrentlyWorking: true,
		}
		reconcile(&entry, today)
		assert.Equal(t, 12, entry.TrueMonths)
		assert.True(t, entry.DurationKnown)
	})

	t.Run("no evidence flags unknown", func(t *testing.T) {
		entry := types.WorkHistoryEntry{Company: "Somewhere", Position: "Something"}
		reconcile(&entry, today)
		assert.Zero(t, entry.TrueMonths)
		assert.False(t, entry.DurationKnown)
	})

	t.Run("declared without dates is not credited", func(t *testing.T) {
		entry := types.WorkHistoryEntry{DeclaredDuration: "2 years 2 months"}
		reconcile(&entry, today)
		assert.Zero(t, entry.TrueMonths)
		assert.False(t, entry.DurationKnown)
	})
}

// Reconciling an already-reconciled entry, with its true duration fed back
// as the declared one, must not change the result.
func TestReconcileIdempotent(t *testing.T) {
	today := date("2024-06-01")
	entries := []types.WorkHistoryEntry{
		{StartDate: "2020-01-01", EndDate: "2023-01-01", DeclaredDuration: "2 years"},
		{StartDate: "2022-01-01", EndDate: "2022-07-01", DeclaredDuration: "1 year"},
		{StartDate: "2023-06-01", CurrentlyWorking: true},
		{DeclaredDuration: "18 months"},
	}

	for i := range entries {
		reconcile(&entries[i], today)
		first := entries[i].TrueMonths

		again := entries[i]
		again.DeclaredDuration = again.TrueDurationLabel
		reconcile(&again, today)

		require.Equal(t, first, again.TrueMonths, "entry %d", i)
	}
}
