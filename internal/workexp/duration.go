package workexp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	yearsPattern  = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?|г\.?|года?|лет)`)
	monthsPattern = regexp.MustCompile(`(\d+)\s*(?:months?|mos?\.?|мес\.?|месяц(?:а|ев)?)`)
)

// parseDeclaredDuration converts a resume tenure string ("2 years 3 months",
// "3 years", "18 months", "2 г. 4 мес.") into months. Returns false for
// anything it cannot read; the caller then treats the declaration as absent.
func parseDeclaredDuration(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	months := 0
	found := false
	if m := yearsPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			months += n * 12
			found = true
		}
	}
	if m := monthsPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			months += n
			found = true
		}
	}
	if !found || months < 0 {
		return 0, false
	}
	return months, true
}

// monthsBetween counts whole months from start to end. A partial trailing
// month does not count: the day of month must have been reached.
func monthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// formatMonths renders a month count as "X years Y months".
func formatMonths(months int) string {
	if months < 0 {
		months = 0
	}
	years := months / 12
	rest := months % 12
	switch {
	case years > 0 && rest > 0:
		return fmt.Sprintf("%s %s", plural(years, "year"), plural(rest, "month"))
	case years > 0:
		return plural(years, "year")
	default:
		return plural(rest, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
