package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meal-benefit/core/period"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseCompetency(t *testing.T) {
	c, err := period.ParseCompetency("05/2025")
	require.NoError(t, err)
	assert.Equal(t, time.May, c.Month)
	assert.Equal(t, 2025, c.Year)
	assert.Equal(t, "05/2025", c.Label())
}

func TestParseCompetency_Invalid(t *testing.T) {
	for _, label := range []string{"", "2025-05", "13/2025", "00/2025", "05/1800", "abc/2025"} {
		_, err := period.ParseCompetency(label)
		assert.Error(t, err, "label %q should not parse", label)
	}
}

func TestCompetencyContains(t *testing.T) {
	c := period.Competency{Month: time.May, Year: 2025}
	assert.True(t, c.Contains(date(2025, time.May, 1)))
	assert.True(t, c.Contains(date(2025, time.May, 31)))
	assert.False(t, c.Contains(date(2025, time.April, 30)))
	assert.False(t, c.Contains(date(2024, time.May, 10)))
}

func TestWorkingDays_FullMonth(t *testing.T) {
	// April 2025 has 22 weekdays.
	got := period.WorkingDays(date(2025, time.April, 1), date(2025, time.April, 30), nil)
	assert.Equal(t, 22, got)
}

func TestWorkingDays_HolidayOnWeekday(t *testing.T) {
	// Tiradentes 2025 falls on a Monday.
	holidays := []time.Time{date(2025, time.April, 21)}
	got := period.WorkingDays(date(2025, time.April, 1), date(2025, time.April, 30), holidays)
	assert.Equal(t, 21, got)
}

func TestWorkingDays_HolidayOnWeekendIgnored(t *testing.T) {
	// A Saturday holiday must not reduce the count twice.
	holidays := []time.Time{date(2025, time.April, 5)}
	got := period.WorkingDays(date(2025, time.April, 1), date(2025, time.April, 30), holidays)
	assert.Equal(t, 22, got)
}

func TestWorkingDays_CrossMonthWindow(t *testing.T) {
	// 15/04 to 15/05, the business's usual reference window.
	got := period.WorkingDays(date(2025, time.April, 15), date(2025, time.May, 15), nil)
	assert.Equal(t, 23, got)
}

func TestNew_DerivesWorkingDays(t *testing.T) {
	c := period.Competency{Month: time.May, Year: 2025}
	cfg, err := period.New(date(2025, time.April, 1), date(2025, time.April, 30), c, 0, 15, nil)
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.WorkingDays)
	assert.Equal(t, 15, cfg.TerminationCutoffDay)
}

func TestNew_PinnedWorkingDaysWin(t *testing.T) {
	c := period.Competency{Month: time.May, Year: 2025}
	cfg, err := period.New(date(2025, time.April, 1), date(2025, time.April, 30), c, 22, 15, nil)
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.WorkingDays)
}

func TestNew_Rejects(t *testing.T) {
	c := period.Competency{Month: time.May, Year: 2025}
	start := date(2025, time.April, 1)
	end := date(2025, time.April, 30)

	_, err := period.New(end, start, c, 0, 15, nil)
	assert.Error(t, err, "end before start")

	_, err = period.New(start, end, period.Competency{}, 0, 15, nil)
	assert.Error(t, err, "zero competency")

	_, err = period.New(start, end, c, 0, 0, nil)
	assert.Error(t, err, "cutoff day out of range")

	_, err = period.New(start, end, c, 0, 32, nil)
	assert.Error(t, err, "cutoff day out of range")
}
