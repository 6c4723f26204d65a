// Package rates resolves a daily benefit rate from a free-text
// union/location label. Resolution is hierarchical: direct substring
// containment against the state table, then state-abbreviation
// expansion, then the configured default. Entries are kept in table
// insertion order and the first match wins; an ambiguous label that
// legitimately contains two state names resolves to whichever state was
// configured first, a documented business-rule limitation.
package rates

import (
	"strings"

	"github.com/shopspring/decimal"

	"meal-benefit/core/table"
)

// Abbreviations maps state abbreviations to full state names for the
// second resolution step.
var Abbreviations = map[string]string{
	"SP": "São Paulo",
	"RJ": "Rio de Janeiro",
	"MG": "Minas Gerais",
	"RS": "Rio Grande do Sul",
	"PR": "Paraná",
	"SC": "Santa Catarina",
	"BA": "Bahia",
	"PE": "Pernambuco",
	"CE": "Ceará",
	"DF": "Distrito Federal",
	"ES": "Espírito Santo",
	"GO": "Goiás",
}

// MatchKind reports which resolution step produced a rate.
type MatchKind string

const (
	MatchDirect       MatchKind = "direct"
	MatchAbbreviation MatchKind = "abbreviation"
	MatchDefault      MatchKind = "default"
)

type entry struct {
	label string
	key   string // lowercased label for matching
	rate  decimal.Decimal
}

// Resolver maps union/location labels to daily rates.
type Resolver struct {
	entries     []entry
	defaultRate decimal.Decimal
}

// NewResolver builds a resolver from the rate rows, preserving their
// order, with the given default rate.
func NewResolver(rows []table.RateRow, defaultRate decimal.Decimal) *Resolver {
	r := &Resolver{defaultRate: defaultRate}
	for _, row := range rows {
		r.entries = append(r.entries, entry{
			label: row.Label,
			key:   strings.ToLower(row.Label),
			rate:  row.Rate,
		})
	}
	return r
}

// DefaultRate returns the configured fallback rate.
func (r *Resolver) DefaultRate() decimal.Decimal {
	return r.defaultRate
}

// Resolve returns the daily rate for a label and the step that matched.
func (r *Resolver) Resolve(label string) (decimal.Decimal, MatchKind) {
	label = strings.TrimSpace(label)
	if label == "" {
		return r.defaultRate, MatchDefault
	}
	key := strings.ToLower(label)

	// Direct containment, either direction, first entry wins.
	for _, e := range r.entries {
		if strings.Contains(key, e.key) || strings.Contains(e.key, key) {
			return e.rate, MatchDirect
		}
	}

	// Abbreviation expansion: a whole-word abbreviation whose expanded
	// state name has a known rate.
	for _, word := range splitWords(label) {
		state, ok := Abbreviations[strings.ToUpper(word)]
		if !ok {
			continue
		}
		stateKey := strings.ToLower(state)
		for _, e := range r.entries {
			if strings.Contains(e.key, stateKey) || strings.Contains(stateKey, e.key) {
				return e.rate, MatchAbbreviation
			}
		}
	}

	return r.defaultRate, MatchDefault
}

// splitWords breaks a label on anything that is not a letter or digit,
// so "SINDPD SP" and "SINDPD-SP" both expose the "SP" token.
func splitWords(label string) []string {
	return strings.FieldsFunc(label, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		}
		return true
	})
}
