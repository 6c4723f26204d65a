// Package table is the typed boundary between raw spreadsheet data and
// the engine. It canonicalizes whitespace-polluted headers and employee
// identifiers, and converts loosely-shaped tables into strongly-typed
// rows so the engine never branches on column presence.
package table

import (
	"strings"
)

// Table is one already-parsed input table: a header row plus data rows
// of string cells. Headers are stored canonicalized.
type Table struct {
	// Name identifies the table in logs, e.g. "ativos"
	Name string

	headers []string
	index   map[string]int

	// Rows holds the data rows; cells are raw strings
	Rows [][]string
}

// New builds a Table, canonicalizing every header.
func New(name string, headers []string, rows [][]string) *Table {
	t := &Table{
		Name:    name,
		headers: make([]string, len(headers)),
		index:   make(map[string]int, len(headers)),
		Rows:    rows,
	}
	for i, h := range headers {
		canon := CanonicalHeader(h)
		t.headers[i] = canon
		if _, exists := t.index[canon]; !exists && canon != "" {
			t.index[canon] = i
		}
	}
	return t
}

// Headers returns the canonicalized header row.
func (t *Table) Headers() []string {
	return t.headers
}

// Column returns the index of the first header matching any alias.
func (t *Table) Column(aliases ...string) (int, bool) {
	for _, a := range aliases {
		if idx, ok := t.index[CanonicalHeader(a)]; ok {
			return idx, true
		}
	}
	return 0, false
}

// Cell returns the trimmed cell at (row, col), or "" when the row is
// ragged and does not reach col.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// CanonicalHeader canonicalizes a column label: non-breaking spaces
// become regular spaces, runs of whitespace collapse to one, and the
// result is trimmed and uppercased. "MATRICULA " and "ESTADO ..."
// both survive this way.
func CanonicalHeader(h string) string {
	h = strings.ReplaceAll(h, " ", " ")
	h = strings.Join(strings.Fields(h), " ")
	return strings.ToUpper(h)
}

// CanonicalID canonicalizes an employee identifier for joining across
// tables: trimmed, and stripped of the ".0" suffix spreadsheet tools
// append to numeric cells.
func CanonicalID(id string) string {
	id = strings.TrimSpace(strings.ReplaceAll(id, " ", " "))
	id = strings.TrimSuffix(id, ".0")
	return id
}
