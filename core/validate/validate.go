// Package validate re-derives every computed field of a prorated record
// and flags mismatches. Checks are pure functions over the record; they
// never mutate it and are never fatal.
package validate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"meal-benefit/core/period"
	"meal-benefit/core/types"
)

// Tolerance is the monetary tolerance for the recomputation checks.
var Tolerance = decimal.NewFromFloat(0.01)

// Sane calendar bounds for admission dates.
var (
	minAdmission = time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	maxAdmission = time.Date(2100, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Config carries the run parameters the checks re-derive against.
type Config struct {
	WorkingDays   int
	EmployerShare decimal.Decimal
	EmployeeShare decimal.Decimal
	Competency    period.Competency
}

// Record checks one prorated record and returns its observations, in
// check order. An empty result means the record is consistent.
func Record(rec types.ProratedRecord, cfg Config) []string {
	var obs []string

	if rec.ID == "" {
		obs = append(obs, "invalid identifier")
	}
	if rec.Admission != nil && (rec.Admission.Before(minAdmission) || rec.Admission.After(maxAdmission)) {
		obs = append(obs, fmt.Sprintf("admission date out of range: %s", rec.Admission.Format("2006-01-02")))
	}
	if rec.UnionLabel == "" {
		obs = append(obs, "missing union label")
	}
	if cfg.Competency.IsZero() {
		obs = append(obs, "missing competency label")
	}
	if rec.EligibleDays < 0 || rec.EligibleDays > cfg.WorkingDays {
		obs = append(obs, fmt.Sprintf("eligible days out of range: %d", rec.EligibleDays))
	}
	if rec.DailyRate.LessThanOrEqual(decimal.Zero) {
		obs = append(obs, "daily rate is not positive")
	}
	if rec.TotalAmount.IsNegative() {
		obs = append(obs, "total amount is negative")
	}
	if rec.EmployerAmount.IsNegative() {
		obs = append(obs, "employer amount is negative")
	}
	if rec.EmployeeAmount.IsNegative() {
		obs = append(obs, "employee amount is negative")
	}
	if outsideTolerance(rec.EmployerAmount, rec.TotalAmount.Mul(cfg.EmployerShare)) {
		obs = append(obs, "employer/employee split does not match configured shares")
	}
	if outsideTolerance(rec.EmployeeAmount, rec.TotalAmount.Mul(cfg.EmployeeShare)) {
		obs = append(obs, "employee withholding does not match configured shares")
	}
	expectedTotal := rec.DailyRate.Mul(decimal.NewFromInt(int64(rec.EligibleDays)))
	if outsideTolerance(rec.TotalAmount, expectedTotal) {
		obs = append(obs, "total amount does not match days times rate")
	}

	return obs
}

// Summarize aggregates the validated records into a report skeleton:
// counts, monetary totals, and the flagged-record alert. Stage logs and
// input counts are filled in by the engine.
func Summarize(records []types.ProratedRecord) types.ValidationReport {
	report := types.ValidationReport{
		TotalRecords:  len(records),
		TotalAmount:   decimal.Zero,
		EmployerTotal: decimal.Zero,
		EmployeeTotal: decimal.Zero,
	}
	for _, rec := range records {
		report.TotalDays += rec.EligibleDays
		report.TotalAmount = report.TotalAmount.Add(rec.TotalAmount)
		report.EmployerTotal = report.EmployerTotal.Add(rec.EmployerAmount)
		report.EmployeeTotal = report.EmployeeTotal.Add(rec.EmployeeAmount)
		if len(rec.Observations) > 0 {
			report.RecordsWithObservations++
		}
	}
	if report.RecordsWithObservations > 0 {
		report.Alerts = append(report.Alerts, fmt.Sprintf(
			"%d of %d records flagged for review", report.RecordsWithObservations, report.TotalRecords))
	}
	return report
}

func outsideTolerance(got, want decimal.Decimal) bool {
	return got.Sub(want).Abs().GreaterThan(Tolerance)
}
