// Package period models the reference period and the competency month a
// benefit run pays for. The reference window (e.g. 15/04 to 15/05) is
// distinct from the competency label (05/2025) the payment carries.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"meal-benefit/internal/errors"
)

// Competency is the month/year the benefit payment is labeled for.
type Competency struct {
	Month time.Month
	Year  int
}

// ParseCompetency parses an "MM/YYYY" competency label.
func ParseCompetency(label string) (Competency, error) {
	parts := strings.Split(strings.TrimSpace(label), "/")
	if len(parts) != 2 {
		return Competency{}, errors.Newf(errors.TypeConfig, "invalid competency label %q, want MM/YYYY", label)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return Competency{}, errors.Newf(errors.TypeConfig, "invalid competency month in %q", label)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 1900 || year > 2200 {
		return Competency{}, errors.Newf(errors.TypeConfig, "invalid competency year in %q", label)
	}
	return Competency{Month: time.Month(month), Year: year}, nil
}

// Label formats the competency as "MM/YYYY".
func (c Competency) Label() string {
	return fmt.Sprintf("%02d/%d", int(c.Month), c.Year)
}

// IsZero reports whether the competency is unset.
func (c Competency) IsZero() bool {
	return c.Year == 0
}

// Contains reports whether t falls in the competency month.
func (c Competency) Contains(t time.Time) bool {
	return t.Year() == c.Year && t.Month() == c.Month
}

// Config is the immutable period configuration for one run.
type Config struct {
	// Start and End bound the reference window, inclusive
	Start time.Time
	End   time.Time

	// Competency is the payment month/year
	Competency Competency

	// WorkingDays is the base period working-day count every employee
	// starts from
	WorkingDays int

	// TerminationCutoffDay is the day of month on or before which a
	// confirmed termination zeroes the entitlement
	TerminationCutoffDay int
}

// New builds a period Config, deriving WorkingDays from the window and
// the holiday calendar when workingDays is zero.
func New(start, end time.Time, competency Competency, workingDays, cutoffDay int, holidays []time.Time) (Config, error) {
	if end.Before(start) {
		return Config{}, errors.Newf(errors.TypeConfig, "period end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if competency.IsZero() {
		return Config{}, errors.Config("competency month is required")
	}
	if cutoffDay < 1 || cutoffDay > 31 {
		return Config{}, errors.Newf(errors.TypeConfig, "termination cutoff day %d out of range", cutoffDay)
	}
	if workingDays == 0 {
		workingDays = WorkingDays(start, end, holidays)
	}
	if workingDays < 0 {
		return Config{}, errors.Newf(errors.TypeConfig, "working days %d is negative", workingDays)
	}
	return Config{
		Start:                start,
		End:                  end,
		Competency:           competency,
		WorkingDays:          workingDays,
		TerminationCutoffDay: cutoffDay,
	}, nil
}

// WorkingDays counts the weekdays between start and end inclusive,
// skipping any configured holidays that fall on a weekday.
func WorkingDays(start, end time.Time, holidays []time.Time) int {
	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Format("2006-01-02")] = true
	}

	count := 0
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if holidaySet[d.Format("2006-01-02")] {
			continue
		}
		count++
	}
	return count
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
