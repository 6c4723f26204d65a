package output_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"meal-benefit/core/output"
	"meal-benefit/core/types"
)

func TestSummary(t *testing.T) {
	result := &types.RunResult{
		Report: types.ValidationReport{
			TotalRecords:            3,
			RecordsWithObservations: 1,
			TotalDays:               57,
			TotalAmount:             decimal.NewFromFloat(1995),
			EmployerTotal:           decimal.NewFromFloat(1596),
			EmployeeTotal:           decimal.NewFromFloat(399),
			VacationRows:            2,
			ExcludedIDs:             4,
			Alerts:                  []string{"1 of 3 records flagged for review"},
		},
	}

	s := output.Summary(result)
	assert.Contains(t, s, "BENEFIT RUN SUMMARY")
	assert.Contains(t, s, "R$ 1995.00")
	assert.Contains(t, s, "R$ 1596.00")
	assert.Contains(t, s, "R$ 399.00")
	assert.Contains(t, s, "! 1 of 3 records flagged for review")

	// Every box line renders at the same width.
	var widths []int
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if strings.HasPrefix(line, "│") || strings.HasPrefix(line, "┌") ||
			strings.HasPrefix(line, "├") || strings.HasPrefix(line, "└") {
			widths = append(widths, len([]rune(line)))
		}
	}
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}

func TestSummary_NoAlerts(t *testing.T) {
	result := &types.RunResult{
		Report: types.ValidationReport{
			TotalAmount:   decimal.Zero,
			EmployerTotal: decimal.Zero,
			EmployeeTotal: decimal.Zero,
		},
	}
	s := output.Summary(result)
	assert.NotContains(t, s, "!")
	assert.True(t, strings.HasSuffix(s, "┘\n"))
}
