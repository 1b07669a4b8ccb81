// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mkravets/resume-evaluator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCombinedReport outputs a human-readable summary of the five
// dimension scores and the total.
func (p *Printer) PrintCombinedReport(report *types.CombinedReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	if report.Skills != nil {
		sb.WriteString(fmt.Sprintf("Skills:          %.1f / %.0f\n", report.Skills.Score, report.Skills.MaxScore))
	}
	if report.WorkExperience != nil {
		sb.WriteString(fmt.Sprintf("Work history:    %d / %d\n", report.WorkExperience.Score, report.WorkExperience.MaxScore))
	}
	if report.Education != nil {
		sb.WriteString(fmt.Sprintf("Education:       %d / %d\n", report.Education.Score, report.Education.MaxScore))
	}
	if report.Salary != nil {
		sb.WriteString(fmt.Sprintf("Salary:          %d / %d\n", report.Salary.Score, report.Salary.MaxScore))
	}
	if report.Additional != nil {
		sb.WriteString(fmt.Sprintf("Schedule:        %d / %d\n", report.Additional.Score, report.Additional.MaxScore))
	}

	if report.Complete() {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Total:           %.1f / %.0f", report.TotalScore(), report.TotalMaxScore()))
	} else {
		sb.WriteString("\nIncomplete: at least one dimension failed")
	}

	p.printBox("Evaluation Result", sb.String())
}

// PrintSkillsDetail outputs the per-skill verdicts for verbose mode.
func (p *Printer) PrintSkillsDetail(report *types.SkillsReport) {
	if report == nil || report.Status != types.StatusSuccess {
		return
	}

	var sb strings.Builder

	writeTier := func(title string, matches map[string]types.SkillMatch, stats types.SkillTierStats) {
		if len(matches) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%s (%d%% relevant):\n", title, int(stats.RelevantPercentage)))
		names := make([]string, 0, len(matches))
		for name := range matches {
			names = append(names, name)
		}
		sort.Strings(names)
		count := min(len(names), maxItemsToShow)
		for _, name := range names[:count] {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", name, matches[name].Relevance))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeTier("Must-have", report.MustHave, report.MustHaveStats)
	writeTier("Nice-to-have", report.NiceToHave, report.NiceToHaveStats)

	if len(report.Discarded) > 0 {
		sb.WriteString(fmt.Sprintf("Discarded as unverifiable: %d\n", len(report.Discarded)))
	}

	p.printBox("Skill Matching", strings.TrimRight(sb.String(), "\n"))
}
