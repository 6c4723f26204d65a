package proration

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"meal-benefit/core/period"
	"meal-benefit/core/table"
	"meal-benefit/core/types"
)

// UnionDays is the optional union-to-day-count override table, kept in
// insertion order. Matching is case-insensitive substring containment in
// either direction, first entry wins.
type UnionDays struct {
	entries []unionEntry
}

type unionEntry struct {
	key  string
	days int
}

// NewUnionDays builds the override table from the typed rows.
func NewUnionDays(rows []table.UnionDaysRow) *UnionDays {
	u := &UnionDays{}
	for _, row := range rows {
		u.entries = append(u.entries, unionEntry{
			key:  strings.ToLower(row.Label),
			days: row.Days,
		})
	}
	return u
}

// Lookup resolves the day-count override for a union label.
func (u *UnionDays) Lookup(label string) (int, bool) {
	if u == nil {
		return 0, false
	}
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return 0, false
	}
	for _, e := range u.entries {
		if strings.Contains(key, e.key) || strings.Contains(e.key, key) {
			return e.days, true
		}
	}
	return 0, false
}

// Engine applies the day-count transitions for one period.
type Engine struct {
	period     period.Config
	strategies Strategies
	unionDays  *UnionDays
}

// NewEngine creates a proration engine for one run.
func NewEngine(p period.Config, s Strategies, unionDays *UnionDays) *Engine {
	return &Engine{period: p, strategies: s, unionDays: unionDays}
}

// Days computes the benefit-day count for one employee, plus any
// observations generated along the way.
//
// The transitions run in a fixed order and override rather than
// compose: vacation deduction first, then termination, then admission,
// then the optional union ceiling, then the floor clamp. A termination
// or admission in the competency month therefore replaces the
// vacation-adjusted value instead of further reducing it; this matches
// the observed behavior of the source process and is preserved even
// though simultaneous vacation-and-termination months could arguably
// compound.
func (e *Engine) Days(rec types.EmployeeRecord) (int, []string) {
	var obs []string
	days := e.period.WorkingDays

	// 1. Vacation deduction.
	if rec.VacationDays > 0 {
		switch e.strategies.Vacation {
		case VacationConservative:
			deducted := e.strategies.VacationFraction.
				Mul(decimalFromInt(rec.VacationDays)).
				Floor().IntPart()
			days -= int(deducted)
			obs = append(obs, fmt.Sprintf(
				"vacation deduction reduced to %s%% of %d days (no vacation period dates in source)",
				e.strategies.VacationFraction.Mul(decimalFromInt(100)).String(), rec.VacationDays))
		default:
			days -= rec.VacationDays
		}
	}

	// 2. Termination adjustment, only for terminations inside the
	// competency month.
	if rec.Termination != nil && e.period.Competency.Contains(*rec.Termination) {
		day := rec.Termination.Day()
		cutoff := e.period.TerminationCutoffDay
		switch {
		case rec.TerminationNoticeConfirmed:
			if day <= cutoff {
				days = 0
			} else {
				days = max(0, day-cutoff)
			}
		case e.strategies.UnconfirmedTermination == TerminationExclude:
			days = 0
			obs = append(obs, "termination notice not confirmed, excluded by policy")
		default:
			if day <= cutoff {
				days = 0
			} else {
				days = max(0, day-cutoff)
			}
			obs = append(obs, "termination notice not confirmed, prorated with caution")
		}
	}

	// 3. Admission adjustment: partial-month entitlement from the
	// admission day onward.
	if rec.Admission != nil && e.period.Competency.Contains(*rec.Admission) {
		days = max(0, e.period.WorkingDays-(rec.Admission.Day()-1))
	}

	// 4. Union-table ceiling.
	if e.strategies.PrioritizeUnionDays {
		if unionDays, ok := e.unionDays.Lookup(rec.UnionLabel); ok {
			days = min(days, unionDays)
		}
	}

	// 5. Floor clamp.
	return max(0, days), obs
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
