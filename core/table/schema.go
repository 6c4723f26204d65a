package table

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Column aliases seen across the source workbooks, canonicalized.
var (
	idAliases        = []string{"MATRICULA", "MATRÍCULA", "CADASTRO"}
	roleAliases      = []string{"TITULO DO CARGO", "TÍTULO DO CARGO", "CARGO"}
	unionAliases     = []string{"SINDICATO"}
	vacationAliases  = []string{"DIAS DE FÉRIAS", "DIAS DE FERIAS", "DIAS FERIAS"}
	termDateAliases  = []string{"DATA DEMISSÃO", "DATA DEMISSAO", "DATA DE DEMISSÃO", "DATA DESLIGAMENTO"}
	termNoticeAlias  = []string{"COMUNICADO DE DESLIGAMENTO", "COMUNICADO"}
	admissionAliases = []string{"ADMISSÃO", "ADMISSAO", "DATA ADMISSÃO", "DATA DE ADMISSÃO"}
)

// ActiveRow is one employee from the active-employee table.
type ActiveRow struct {
	ID         string
	RoleTitle  string
	UnionLabel string
}

// VacationRow is one employee's vacation-day count.
type VacationRow struct {
	ID      string
	Days    int
	Invalid bool
	Raw     string
}

// TerminationRow is one employee's termination record.
type TerminationRow struct {
	ID              string
	Date            *time.Time
	DateInvalid     bool
	DateRaw         string
	NoticeConfirmed bool
}

// AdmissionRow is one employee's admission record.
type AdmissionRow struct {
	ID          string
	Date        *time.Time
	DateInvalid bool
	DateRaw     string
}

// CategoryRow is one membership entry from a category table. Returned
// and ReturnDate carry the exception markers for expatriates and
// on-leave employees.
type CategoryRow struct {
	ID         string
	Returned   bool
	ReturnDate *time.Time
}

// RateRow is one state-to-rate entry, in table order.
type RateRow struct {
	Label string
	Rate  decimal.Decimal
}

// UnionDaysRow is one union-to-day-count override entry.
type UnionDaysRow struct {
	Label string
	Days  int
}

// ActiveRows converts the active-employee table. A missing identifier
// column here is fatal: no eligible set can be built without it.
func ActiveRows(t *Table) ([]ActiveRow, error) {
	if t == nil || t.Len() == 0 {
		return nil, fmt.Errorf("active-employee table is empty")
	}
	idCol, ok := t.Column(idAliases...)
	if !ok {
		return nil, fmt.Errorf("active-employee table has no identifier column")
	}
	roleCol, hasRole := t.Column(roleAliases...)
	unionCol, hasUnion := t.Column(unionAliases...)

	rows := make([]ActiveRow, 0, t.Len())
	for i := range t.Rows {
		id := CanonicalID(t.Cell(i, idCol))
		if id == "" {
			continue
		}
		row := ActiveRow{ID: id}
		if hasRole {
			row.RoleTitle = cleanText(t.Cell(i, roleCol))
		}
		if hasUnion {
			row.UnionLabel = cleanText(t.Cell(i, unionCol))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// VacationRows converts the vacation table. A missing identifier column
// is recoverable: the table contributes nothing and a warning is
// returned.
func VacationRows(t *Table) ([]VacationRow, []string) {
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	idCol, ok := t.Column(idAliases...)
	if !ok {
		return nil, []string{skippedWarning(t.Name)}
	}
	daysCol, hasDays := t.Column(vacationAliases...)

	var rows []VacationRow
	for i := range t.Rows {
		id := CanonicalID(t.Cell(i, idCol))
		if id == "" {
			continue
		}
		row := VacationRow{ID: id}
		if hasDays {
			row.Raw = t.Cell(i, daysCol)
			days, ok := ParseInt(row.Raw)
			if !ok || days < 0 {
				row.Invalid = true
			} else {
				row.Days = days
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// TerminationRows converts the termination table.
func TerminationRows(t *Table) ([]TerminationRow, []string) {
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	idCol, ok := t.Column(idAliases...)
	if !ok {
		return nil, []string{skippedWarning(t.Name)}
	}
	dateCol, hasDate := t.Column(termDateAliases...)
	noticeCol, hasNotice := t.Column(termNoticeAlias...)

	var rows []TerminationRow
	for i := range t.Rows {
		id := CanonicalID(t.Cell(i, idCol))
		if id == "" {
			continue
		}
		row := TerminationRow{ID: id}
		if hasDate {
			row.DateRaw = t.Cell(i, dateCol)
			date, ok := ParseDate(row.DateRaw)
			if !ok {
				row.DateInvalid = true
			} else {
				row.Date = date
			}
		}
		if hasNotice {
			row.NoticeConfirmed = TruthyMarker(t.Cell(i, noticeCol))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AdmissionRows converts the admission table.
func AdmissionRows(t *Table) ([]AdmissionRow, []string) {
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	idCol, ok := t.Column(idAliases...)
	if !ok {
		return nil, []string{skippedWarning(t.Name)}
	}
	dateCol, hasDate := t.Column(admissionAliases...)

	var rows []AdmissionRow
	for i := range t.Rows {
		id := CanonicalID(t.Cell(i, idCol))
		if id == "" {
			continue
		}
		row := AdmissionRow{ID: id}
		if hasDate {
			row.DateRaw = t.Cell(i, dateCol)
			date, ok := ParseDate(row.DateRaw)
			if !ok {
				row.DateInvalid = true
			} else {
				row.Date = date
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CategoryRows converts a category membership table. Any column whose
// canonical name mentions RETORNO supplies the exception marker: a
// parseable date becomes ReturnDate, an affirmative marker sets
// Returned.
func CategoryRows(t *Table) ([]CategoryRow, []string) {
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	idCol, ok := t.Column(idAliases...)
	if !ok {
		return nil, []string{skippedWarning(t.Name)}
	}

	returnCol := -1
	for i, h := range t.headers {
		if strings.Contains(h, "RETORN") {
			returnCol = i
			break
		}
	}

	var rows []CategoryRow
	for i := range t.Rows {
		id := CanonicalID(t.Cell(i, idCol))
		if id == "" {
			continue
		}
		row := CategoryRow{ID: id}
		if returnCol >= 0 {
			cell := t.Cell(i, returnCol)
			if date, ok := ParseDate(cell); ok && date != nil {
				row.ReturnDate = date
				row.Returned = true
			} else if TruthyMarker(cell) {
				row.Returned = true
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// RateRows converts the state-to-rate table. The source workbook names
// its columns unreliably, so the first column is the label and the
// second the rate, matching how the table is actually laid out.
func RateRows(t *Table) ([]RateRow, []string) {
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	var rows []RateRow
	var warnings []string
	for i := range t.Rows {
		label := cleanText(t.Cell(i, 0))
		if label == "" {
			continue
		}
		rate, ok := ParseMoney(t.Cell(i, 1))
		if !ok {
			warnings = append(warnings, fmt.Sprintf("table %s: unparseable rate for %q, entry ignored", t.Name, label))
			continue
		}
		rows = append(rows, RateRow{Label: label, Rate: rate})
	}
	return rows, warnings
}

// UnionDaysRows converts the union-to-day-count table, positional like
// RateRows.
func UnionDaysRows(t *Table) ([]UnionDaysRow, []string) {
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	var rows []UnionDaysRow
	var warnings []string
	for i := range t.Rows {
		label := cleanText(t.Cell(i, 0))
		if label == "" {
			continue
		}
		days, ok := ParseInt(t.Cell(i, 1))
		if !ok || days < 0 {
			warnings = append(warnings, fmt.Sprintf("table %s: unparseable day count for %q, entry ignored", t.Name, label))
			continue
		}
		rows = append(rows, UnionDaysRow{Label: label, Days: days})
	}
	return rows, warnings
}

func skippedWarning(name string) string {
	return fmt.Sprintf("table %s has no identifier column, skipped", name)
}

// cleanText normalizes display text without uppercasing it.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
