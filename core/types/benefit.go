// Package types defines the value types shared across the benefit pipeline.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObservationSeparator joins multiple observations on one output row.
const ObservationSeparator = "; "

// Category classifies an employee into a membership group that may
// exclude them from the benefit.
type Category string

const (
	CategoryIntern     Category = "intern"
	CategoryApprentice Category = "apprentice"
	CategoryExpatriate Category = "expatriate"
	CategoryOnLeave    Category = "on_leave"
	CategoryDirector   Category = "director"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// CategorySet is the set of categories held by one employee.
type CategorySet map[Category]bool

// Has reports whether the set contains the category.
func (s CategorySet) Has(c Category) bool {
	return s[c]
}

// EmployeeRecord is one employee after the input tables have been merged
// on the normalized identifier. It is owned by the engine for the
// duration of a run.
type EmployeeRecord struct {
	// ID is the normalized employee identifier, unique per run
	ID string

	// RoleTitle is the job title from the active-employee table
	RoleTitle string

	// UnionLabel is the free-text union/location classification
	UnionLabel string

	// Admission is the admission date, when present
	Admission *time.Time

	// Termination is the termination date, when present
	Termination *time.Time

	// TerminationNoticeConfirmed reports whether the termination notice
	// was confirmed ("OK" marker in the source table)
	TerminationNoticeConfirmed bool

	// VacationDays is the number of vacation days in the period (>= 0)
	VacationDays int

	// InputNotes carries anomalies detected while merging the inputs,
	// e.g. an unparseable date treated as absent
	InputNotes []string
}

// ProratedRecord is the computed output for one eligible employee.
// Immutable once validation completes; one row in the output sheet.
type ProratedRecord struct {
	EmployeeRecord

	// EligibleDays is the benefit-day count for the period
	EligibleDays int

	// DailyRate is the resolved daily benefit rate
	DailyRate decimal.Decimal

	// TotalAmount is EligibleDays * DailyRate
	TotalAmount decimal.Decimal

	// EmployerAmount is the employer-paid portion
	EmployerAmount decimal.Decimal

	// EmployeeAmount is the employee-withheld portion
	EmployeeAmount decimal.Decimal

	// Observations flags anomalies on this record, in the order they
	// were detected. Never fatal.
	Observations []string
}

// ValidationReport aggregates one run's counts, totals and alert lines.
type ValidationReport struct {
	// TotalRecords is the number of output records
	TotalRecords int

	// RecordsWithObservations counts records flagged at least once
	RecordsWithObservations int

	// TotalDays is the sum of eligible days across records
	TotalDays int

	// TotalAmount, EmployerTotal and EmployeeTotal sum the monetary columns
	TotalAmount    decimal.Decimal
	EmployerTotal  decimal.Decimal
	EmployeeTotal  decimal.Decimal

	// VacationRows, TerminationRows and AdmissionRows count the rows of
	// the corresponding input tables, for the summary sheet
	VacationRows    int
	TerminationRows int
	AdmissionRows   int

	// ExcludedIDs is the number of identifiers removed by the exclusion
	// filter
	ExcludedIDs int

	// Alerts carries aggregate anomaly lines (e.g. the count of flagged
	// records), in emission order
	Alerts []string

	// Logs carries free-form stage log lines: exception paths taken,
	// skipped category tables, temporal-consistency warnings
	Logs []string
}

// RunResult is the complete output of one engine invocation.
type RunResult struct {
	// Records is the ordered output, one per eligible employee,
	// preserving active-table row order
	Records []ProratedRecord

	// Report is the run's validation report
	Report ValidationReport
}
