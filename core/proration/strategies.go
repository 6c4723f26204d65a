// Package proration computes the benefit-day count per eligible
// employee for one reference period.
package proration

import (
	"github.com/shopspring/decimal"
)

// VacationStrategy selects how vacation days reduce the count.
type VacationStrategy string

const (
	// VacationFull deducts every vacation day
	VacationFull VacationStrategy = "full"

	// VacationConservative deducts only a configured fraction of the
	// vacation days, rounding down. Used when the vacation source lacks
	// explicit start/end dates and a full deduction would be overly
	// punitive.
	VacationConservative VacationStrategy = "conservative"
)

// TerminationStrategy selects how a termination without a confirmed
// notice is treated.
type TerminationStrategy string

const (
	// TerminationProrate applies the same proportional formula as a
	// confirmed termination (cautious inclusion)
	TerminationProrate TerminationStrategy = "prorate"

	// TerminationExclude forces the day count to zero
	TerminationExclude TerminationStrategy = "exclude"
)

// Strategies is the run-wide strategy table. It is plain configuration
// data passed into the engine, never ambient state, so runs with
// different strategies can execute in the same process.
type Strategies struct {
	// Vacation selects the vacation deduction behavior
	Vacation VacationStrategy

	// VacationFraction is the fraction of vacation days deducted under
	// VacationConservative
	VacationFraction decimal.Decimal

	// UnconfirmedTermination selects the behavior for terminations
	// whose notice is not confirmed
	UnconfirmedTermination TerminationStrategy

	// PrioritizeUnionDays enables the union day-count ceiling
	PrioritizeUnionDays bool
}

// DefaultStrategies returns the business's standing configuration.
func DefaultStrategies() Strategies {
	return Strategies{
		Vacation:               VacationFull,
		VacationFraction:       decimal.NewFromFloat(0.7),
		UnconfirmedTermination: TerminationProrate,
		PrioritizeUnionDays:    false,
	}
}

// Valid reports whether the strategy values are recognized.
func (s Strategies) Valid() bool {
	switch s.Vacation {
	case VacationFull, VacationConservative:
	default:
		return false
	}
	switch s.UnconfirmedTermination {
	case TerminationProrate, TerminationExclude:
	default:
		return false
	}
	if s.Vacation == VacationConservative {
		if s.VacationFraction.LessThanOrEqual(decimal.Zero) || s.VacationFraction.GreaterThan(decimal.NewFromInt(1)) {
			return false
		}
	}
	return true
}
