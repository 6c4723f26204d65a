// Package xlsx is the spreadsheet collaborator: it reads the input
// workbooks into tables and writes the run result back out. The engine
// never sees a file format; everything crossing this boundary is a
// table.Table or a typed record.
package xlsx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"meal-benefit/core/engine"
	"meal-benefit/core/table"
	"meal-benefit/internal/errors"
)

// Paths names the input workbooks. Empty entries are skipped.
type Paths struct {
	Active      string
	Vacation    string
	Terminated  string
	Interns     string
	Apprentices string
	OnLeave     string
	Expatriates string
	Admissions  string
	Rates       string
	UnionDays   string
}

// Resolve prefixes every non-empty path with dir.
func (p Paths) Resolve(dir string) Paths {
	join := func(name string) string {
		if name == "" {
			return ""
		}
		return filepath.Join(dir, name)
	}
	return Paths{
		Active:      join(p.Active),
		Vacation:    join(p.Vacation),
		Terminated:  join(p.Terminated),
		Interns:     join(p.Interns),
		Apprentices: join(p.Apprentices),
		OnLeave:     join(p.OnLeave),
		Expatriates: join(p.Expatriates),
		Admissions:  join(p.Admissions),
		Rates:       join(p.Rates),
		UnionDays:   join(p.UnionDays),
	}
}

// LoadTables opens every configured workbook. A missing or unreadable
// active-employee workbook is fatal; any other workbook degrades to a
// warning and an absent table.
func LoadTables(p Paths) (engine.Tables, []string, error) {
	var warnings []string

	active, err := loadTable(p.Active, "ativos")
	if err != nil {
		return engine.Tables{}, nil, errors.Wrap(errors.TypeInput, "active-employee workbook", err)
	}

	optional := func(path, name string) *table.Table {
		if path == "" {
			return nil
		}
		t, err := loadTable(path, name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("workbook %s not loaded: %v", name, err))
			return nil
		}
		return t
	}

	tables := engine.Tables{
		Active:       active,
		Vacation:     optional(p.Vacation, "ferias"),
		Terminations: optional(p.Terminated, "desligados"),
		Admissions:   optional(p.Admissions, "admissao"),
		Interns:      optional(p.Interns, "estagio"),
		Apprentices:  optional(p.Apprentices, "aprendiz"),
		Expatriates:  optional(p.Expatriates, "exterior"),
		OnLeave:      optional(p.OnLeave, "afastamentos"),
		Rates:        optional(p.Rates, "sindicato_valor"),
		UnionDays:    optional(p.UnionDays, "dias_uteis"),
	}
	return tables, warnings, nil
}

// loadTable reads the first sheet of one workbook into a Table. The
// first row is the header row.
func loadTable(path, name string) (*table.Table, error) {
	if path == "" {
		return nil, fmt.Errorf("no path configured")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return table.New(name, nil, nil), nil
	}
	return table.New(name, rows[0], rows[1:]), nil
}
