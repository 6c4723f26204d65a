// Package engine orchestrates one benefit run: exclusion, proration,
// rate resolution, cost splitting and validation. Run is a pure function
// of (inputs, config); it owns the consolidated record set for the
// duration of the run and produces the full output or nothing.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"meal-benefit/core/period"
	"meal-benefit/core/proration"
	"meal-benefit/core/rates"
	"meal-benefit/core/roster"
	"meal-benefit/core/table"
	"meal-benefit/core/types"
	"meal-benefit/core/validate"
	"meal-benefit/internal/errors"
)

// shareTolerance bounds how far the two shares may drift from 1.0.
var shareTolerance = decimal.NewFromFloat(1e-6)

// Config is the complete run configuration, passed explicitly so that
// runs with different strategies can execute in the same process.
type Config struct {
	// Period is the immutable reference-period configuration
	Period period.Config

	// Strategies is the proration strategy table
	Strategies proration.Strategies

	// EmployerShare and EmployeeShare split the total amount; they must
	// sum to 1.0
	EmployerShare decimal.Decimal
	EmployeeShare decimal.Decimal

	// DefaultDailyRate is the fallback when no rate-table entry matches
	DefaultDailyRate decimal.Decimal

	// ExcludedTitles are the role-title substrings that exclude an
	// employee
	ExcludedTitles []string

	// Logger receives stage log lines; nil means no logging
	Logger *zap.Logger
}

// Validate rejects a configuration before any record processing.
func (c Config) Validate() error {
	sum := c.EmployerShare.Add(c.EmployeeShare)
	if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(shareTolerance) {
		return errors.Newf(errors.TypeConfig, "employer and employee shares sum to %s, want 1.0", sum.String())
	}
	if c.EmployerShare.IsNegative() || c.EmployeeShare.IsNegative() {
		return errors.Config("share fractions must not be negative")
	}
	if c.DefaultDailyRate.LessThanOrEqual(decimal.Zero) {
		return errors.Config("default daily rate must be positive")
	}
	if !c.Strategies.Valid() {
		return errors.Config("unrecognized strategy configuration")
	}
	if c.Period.WorkingDays <= 0 {
		return errors.Config("period working days must be positive")
	}
	return nil
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Inputs are the typed tables the engine consumes. They come out of the
// schema layer at the loading boundary; the engine never inspects raw
// columns.
type Inputs struct {
	Active       []table.ActiveRow
	Vacation     []table.VacationRow
	Terminations []table.TerminationRow
	Admissions   []table.AdmissionRow
	Interns      []table.CategoryRow
	Apprentices  []table.CategoryRow
	Expatriates  []table.CategoryRow
	OnLeave      []table.CategoryRow
	Rates        []table.RateRow
	UnionDays    []table.UnionDaysRow

	// Warnings carries schema anomalies detected at the boundary, e.g.
	// a category table missing its identifier column
	Warnings []string
}

// Tables bundles the raw input tables for BuildInputs. Any table except
// Active may be nil.
type Tables struct {
	Active       *table.Table
	Vacation     *table.Table
	Terminations *table.Table
	Admissions   *table.Table
	Interns      *table.Table
	Apprentices  *table.Table
	Expatriates  *table.Table
	OnLeave      *table.Table
	Rates        *table.Table
	UnionDays    *table.Table
}

// BuildInputs runs the schema layer over the raw tables. Only a broken
// active-employee table is fatal; every other shape problem degrades to
// a warning.
func BuildInputs(t Tables) (Inputs, error) {
	active, err := table.ActiveRows(t.Active)
	if err != nil {
		return Inputs{}, errors.Wrap(errors.TypeInput, "active-employee table", err)
	}

	in := Inputs{Active: active}
	collect := func(warnings []string) {
		in.Warnings = append(in.Warnings, warnings...)
	}

	var w []string
	in.Vacation, w = table.VacationRows(t.Vacation)
	collect(w)
	in.Terminations, w = table.TerminationRows(t.Terminations)
	collect(w)
	in.Admissions, w = table.AdmissionRows(t.Admissions)
	collect(w)
	in.Interns, w = table.CategoryRows(t.Interns)
	collect(w)
	in.Apprentices, w = table.CategoryRows(t.Apprentices)
	collect(w)
	in.Expatriates, w = table.CategoryRows(t.Expatriates)
	collect(w)
	in.OnLeave, w = table.CategoryRows(t.OnLeave)
	collect(w)
	in.Rates, w = table.RateRows(t.Rates)
	collect(w)
	in.UnionDays, w = table.UnionDaysRows(t.UnionDays)
	collect(w)

	return in, nil
}

// Run executes the pipeline for one reference period.
func Run(cfg Config, in Inputs) (*types.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.logger()

	var stageLogs []string
	addLog := func(line string) {
		stageLogs = append(stageLogs, line)
	}

	for _, warning := range in.Warnings {
		addLog(warning)
		log.Warn(warning)
	}

	// Exclusion filter.
	res := roster.Resolve(in.Active, roster.Inputs{
		Interns:     in.Interns,
		Apprentices: in.Apprentices,
		Expatriates: in.Expatriates,
		OnLeave:     in.OnLeave,
	}, roster.Rules{ExcludedTitles: cfg.ExcludedTitles})
	for _, line := range res.Logs {
		addLog(line)
		log.Info(line)
	}

	// Consolidate the per-employee record set.
	records, mergeLogs := merge(res.Eligible, in)
	for _, line := range mergeLogs {
		addLog(line)
		log.Warn(line)
	}

	for _, line := range consistencyChecks(records, cfg.Period) {
		addLog(line)
		log.Warn(line)
	}

	// Proration, rate resolution and cost split.
	prorator := proration.NewEngine(cfg.Period, cfg.Strategies, proration.NewUnionDays(in.UnionDays))
	resolver := rates.NewResolver(in.Rates, cfg.DefaultDailyRate)
	validateCfg := validate.Config{
		WorkingDays:   cfg.Period.WorkingDays,
		EmployerShare: cfg.EmployerShare,
		EmployeeShare: cfg.EmployeeShare,
		Competency:    cfg.Period.Competency,
	}

	out := make([]types.ProratedRecord, 0, len(records))
	for _, rec := range records {
		days, obs := prorator.Days(rec)
		rate, _ := resolver.Resolve(rec.UnionLabel)
		total, employer, employee := Split(days, rate, cfg.EmployerShare, cfg.EmployeeShare)

		prorated := types.ProratedRecord{
			EmployeeRecord: rec,
			EligibleDays:   days,
			DailyRate:      rate,
			TotalAmount:    total,
			EmployerAmount: employer,
			EmployeeAmount: employee,
		}
		prorated.Observations = append(prorated.Observations, rec.InputNotes...)
		prorated.Observations = append(prorated.Observations, obs...)
		prorated.Observations = append(prorated.Observations, validate.Record(prorated, validateCfg)...)
		out = append(out, prorated)
	}

	report := validate.Summarize(out)
	report.VacationRows = len(in.Vacation)
	report.TerminationRows = len(in.Terminations)
	report.AdmissionRows = len(in.Admissions)
	report.ExcludedIDs = len(res.Excluded)
	report.Logs = stageLogs

	summary := fmt.Sprintf("run complete: %d records, %d flagged",
		report.TotalRecords, report.RecordsWithObservations)
	report.Logs = append(report.Logs, summary)
	log.Info(summary)

	return &types.RunResult{Records: out, Report: report}, nil
}

// Split computes the total amount and its employer/employee portions.
// No rounding is applied; display formatting belongs to the report sink.
func Split(days int, rate, employerShare, employeeShare decimal.Decimal) (total, employer, employee decimal.Decimal) {
	total = rate.Mul(decimal.NewFromInt(int64(days)))
	employer = total.Mul(employerShare)
	employee = total.Mul(employeeShare)
	return total, employer, employee
}
