package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts covers the formats seen across the input workbooks.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	"01-02-06",
}

// ParseDate parses a cell into a date, trying the known layouts.
// An empty cell is not an error; it parses to (nil, true).
func ParseDate(cell string) (*time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d, true
		}
	}
	return nil, false
}

// ParseInt parses a cell into a non-negative integer count. Fractional
// spreadsheet artifacts ("22.0") round down.
func ParseInt(cell string) (int, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, true
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// ParseMoney parses a monetary cell, tolerating a currency prefix and a
// Brazilian decimal comma ("R$ 37,50").
func ParseMoney(cell string) (decimal.Decimal, bool) {
	cell = strings.TrimSpace(cell)
	cell = strings.TrimPrefix(cell, "R$")
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return decimal.Zero, false
	}
	if strings.Contains(cell, ",") && !strings.Contains(cell, ".") {
		cell = strings.ReplaceAll(cell, ",", ".")
	} else {
		cell = strings.ReplaceAll(cell, ",", "")
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// TruthyMarker reports whether a cell holds an affirmative marker, the
// way the source tables flag confirmations ("OK", "SIM", "X").
func TruthyMarker(cell string) bool {
	switch strings.ToUpper(strings.TrimSpace(cell)) {
	case "OK", "SIM", "S", "X", "YES", "Y", "TRUE", "1":
		return true
	}
	return false
}
