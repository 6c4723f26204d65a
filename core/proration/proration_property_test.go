package proration_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"meal-benefit/core/proration"
	"meal-benefit/core/types"
)

// TestDaysBounds verifies the day-count range over arbitrary inputs.
// Property: 0 <= Days(rec) <= period working days, whatever the
// vacation count, termination day and admission day.
func TestDaysBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	p := testPeriod(t)
	e := proration.NewEngine(p, proration.DefaultStrategies(), nil)

	properties.Property("day count stays within the period bounds", prop.ForAll(
		func(vacation int, termDay int, admDay int, confirmed bool) bool {
			rec := types.EmployeeRecord{
				ID:                         "p",
				VacationDays:               vacation,
				TerminationNoticeConfirmed: confirmed,
			}
			if termDay > 0 {
				d := time.Date(2025, time.April, termDay, 0, 0, 0, 0, time.UTC)
				rec.Termination = &d
			}
			if admDay > 0 {
				d := time.Date(2025, time.April, admDay, 0, 0, 0, 0, time.UTC)
				rec.Admission = &d
			}

			days, _ := e.Days(rec)
			return days >= 0 && days <= p.WorkingDays
		},
		gen.IntRange(0, 60),
		gen.IntRange(0, 30),
		gen.IntRange(0, 30),
		gen.Bool(),
	))

	properties.Property("conservative deduction never exceeds the full one", prop.ForAll(
		func(vacation int) bool {
			full, _ := e.Days(types.EmployeeRecord{ID: "p", VacationDays: vacation})

			s := proration.DefaultStrategies()
			s.Vacation = proration.VacationConservative
			conservative := proration.NewEngine(p, s, nil)
			reduced, _ := conservative.Days(types.EmployeeRecord{ID: "p", VacationDays: vacation})

			return reduced >= full
		},
		gen.IntRange(0, 60),
	))

	properties.TestingRun(t)
}
