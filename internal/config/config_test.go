package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meal-benefit/core/period"
	"meal-benefit/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 35.0, cfg.DefaultDailyRate)
	assert.Equal(t, 15, cfg.Period.TerminationCutoffDay)
	assert.Equal(t, 0.8, cfg.Shares.Employer)
	assert.Equal(t, 0.2, cfg.Shares.Employee)
	assert.Equal(t, "full", cfg.Strategies.Vacation)
	assert.Equal(t, 0.7, cfg.Strategies.VacationFraction)
	assert.Equal(t, "prorate", cfg.Strategies.UnconfirmedTermination)
	assert.Equal(t, []string{"diretor", "presidente", "ceo"}, cfg.Exclusions.Titles)
	assert.Equal(t, 1, cfg.Execution.WindowStartDay)
	assert.Equal(t, 10, cfg.Execution.WindowEndDay)
	assert.False(t, cfg.Execution.Block)
	assert.Equal(t, "ATIVOS.xlsx", cfg.Inputs.Active)
	require.NotNil(t, cfg.Logging)
}

func TestLoad(t *testing.T) {
	content := `
competency         = "05/2025"
default_daily_rate = 37.5

period {
  start = "2025-04-15"
  end   = "2025-05-15"
}

shares {
  employer = 0.8
  employee = 0.2
}

strategies {
  vacation              = "conservative"
  vacation_fraction     = 0.7
  prioritize_union_days = true
}

holidays {
  national = ["2025-04-21", "2025-05-01"]

  state "São Paulo" {
    dates = ["2025-01-25"]
  }
}
`
	path := filepath.Join(t.TempDir(), "meal-benefit.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "05/2025", cfg.Competency)
	assert.Equal(t, 37.5, cfg.DefaultDailyRate)
	assert.Equal(t, "2025-04-15", cfg.Period.Start)
	assert.Equal(t, "conservative", cfg.Strategies.Vacation)
	assert.True(t, cfg.Strategies.PrioritizeUnionDays)

	// Omitted sections fall back to defaults.
	assert.Equal(t, 15, cfg.Period.TerminationCutoffDay)
	assert.Equal(t, "prorate", cfg.Strategies.UnconfirmedTermination)
	assert.Equal(t, []string{"diretor", "presidente", "ceo"}, cfg.Exclusions.Titles)
	assert.Equal(t, "ATIVOS.xlsx", cfg.Inputs.Active)

	require.Len(t, cfg.Holidays.National, 2)
	require.Len(t, cfg.Holidays.States, 1)
	assert.Equal(t, "São Paulo", cfg.Holidays.States[0].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}

func TestHolidayDates(t *testing.T) {
	cfg := config.Default()
	cfg.Holidays.National = []string{"2025-04-21", "2025-05-01"}

	dates, err := cfg.HolidayDates()
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, time.April, dates[0].Month())

	cfg.Holidays.National = []string{"21/04/2025"}
	_, err = cfg.HolidayDates()
	assert.Error(t, err)
}

func TestEngineConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Period.Start = "2025-04-01"
	cfg.Period.End = "2025-04-30"

	competency, err := period.ParseCompetency("04/2025")
	require.NoError(t, err)

	engineCfg, err := cfg.EngineConfig(competency, nil)
	require.NoError(t, err)

	assert.Equal(t, 22, engineCfg.Period.WorkingDays)
	assert.Equal(t, 15, engineCfg.Period.TerminationCutoffDay)
	assert.Equal(t, "0.8", engineCfg.EmployerShare.String())
	assert.Equal(t, "35", engineCfg.DefaultDailyRate.String())
	assert.NoError(t, engineCfg.Validate())
}

func TestEngineConfig_BadPeriod(t *testing.T) {
	cfg := config.Default()
	cfg.Period.Start = "15/04/2025"
	cfg.Period.End = "2025-05-15"

	competency, err := period.ParseCompetency("05/2025")
	require.NoError(t, err)

	_, err = cfg.EngineConfig(competency, nil)
	assert.Error(t, err)
}
