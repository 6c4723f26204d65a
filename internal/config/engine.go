package config

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"meal-benefit/core/engine"
	"meal-benefit/core/period"
	"meal-benefit/core/proration"
	"meal-benefit/internal/errors"
)

const dateLayout = "2006-01-02"

// HolidayDates parses the configured holiday calendar.
func (c *Config) HolidayDates() ([]time.Time, error) {
	if c.Holidays == nil {
		return nil, nil
	}
	var dates []time.Time
	add := func(raw, scope string) error {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return errors.Newf(errors.TypeConfig, "invalid %s holiday date %q", scope, raw)
		}
		dates = append(dates, t)
		return nil
	}
	for _, raw := range c.Holidays.National {
		if err := add(raw, "national"); err != nil {
			return nil, err
		}
	}
	for _, state := range c.Holidays.States {
		for _, raw := range state.Dates {
			if err := add(raw, state.Name); err != nil {
				return nil, err
			}
		}
	}
	return dates, nil
}

// EngineConfig builds the explicit engine configuration for one run.
// The competency comes from the caller since the run command may take
// it from a flag or the interactive prompt rather than the file.
func (c *Config) EngineConfig(competency period.Competency, logger *zap.Logger) (engine.Config, error) {
	if c.Period == nil || c.Period.Start == "" || c.Period.End == "" {
		return engine.Config{}, errors.Config("period start and end dates are required")
	}
	start, err := time.Parse(dateLayout, c.Period.Start)
	if err != nil {
		return engine.Config{}, errors.Newf(errors.TypeConfig, "invalid period start %q", c.Period.Start)
	}
	end, err := time.Parse(dateLayout, c.Period.End)
	if err != nil {
		return engine.Config{}, errors.Newf(errors.TypeConfig, "invalid period end %q", c.Period.End)
	}
	holidays, err := c.HolidayDates()
	if err != nil {
		return engine.Config{}, err
	}

	p, err := period.New(start, end, competency, c.Period.WorkingDays, c.Period.TerminationCutoffDay, holidays)
	if err != nil {
		return engine.Config{}, err
	}

	return engine.Config{
		Period: p,
		Strategies: proration.Strategies{
			Vacation:               proration.VacationStrategy(c.Strategies.Vacation),
			VacationFraction:       decimal.NewFromFloat(c.Strategies.VacationFraction),
			UnconfirmedTermination: proration.TerminationStrategy(c.Strategies.UnconfirmedTermination),
			PrioritizeUnionDays:    c.Strategies.PrioritizeUnionDays,
		},
		EmployerShare:    decimal.NewFromFloat(c.Shares.Employer),
		EmployeeShare:    decimal.NewFromFloat(c.Shares.Employee),
		DefaultDailyRate: decimal.NewFromFloat(c.DefaultDailyRate),
		ExcludedTitles:   c.Exclusions.Titles,
		Logger:           logger,
	}, nil
}
