// Package output formats a run result for the console.
package output

import (
	"fmt"
	"strings"

	"meal-benefit/core/types"
)

// Summary renders the run totals in the fixed-width box layout the
// operators are used to.
func Summary(result *types.RunResult) string {
	report := result.Report

	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "│ %-48s %22s │\n", truncate(label, 48), value)
	}

	b.WriteString("┌─────────────────────────────────────────────────────────────────────────┐\n")
	b.WriteString("│                         BENEFIT RUN SUMMARY                             │\n")
	b.WriteString("├─────────────────────────────────────────────────────────────────────────┤\n")
	line("Eligible employees", fmt.Sprintf("%d", report.TotalRecords))
	line("Total benefit days", fmt.Sprintf("%d", report.TotalDays))
	line("Total amount", "R$ "+report.TotalAmount.StringFixed(2))
	line("Employer cost", "R$ "+report.EmployerTotal.StringFixed(2))
	line("Employee withholding", "R$ "+report.EmployeeTotal.StringFixed(2))
	b.WriteString("├─────────────────────────────────────────────────────────────────────────┤\n")
	line("Vacation rows", fmt.Sprintf("%d", report.VacationRows))
	line("Termination rows", fmt.Sprintf("%d", report.TerminationRows))
	line("Admission rows", fmt.Sprintf("%d", report.AdmissionRows))
	line("Excluded identifiers", fmt.Sprintf("%d", report.ExcludedIDs))
	line("Records flagged for review", fmt.Sprintf("%d", report.RecordsWithObservations))
	b.WriteString("└─────────────────────────────────────────────────────────────────────────┘\n")

	for _, alert := range report.Alerts {
		fmt.Fprintf(&b, "\n! %s", alert)
	}
	if len(report.Alerts) > 0 {
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
