package engine

import (
	"fmt"

	"meal-benefit/core/period"
	"meal-benefit/core/table"
	"meal-benefit/core/types"
)

// merge joins the category tables onto the eligible active rows by
// normalized id, producing the consolidated per-employee record set in
// active-table order. Unparseable values become record-level notes, not
// errors.
func merge(eligible []table.ActiveRow, in Inputs) ([]types.EmployeeRecord, []string) {
	var logs []string

	vacationByID := make(map[string]table.VacationRow, len(in.Vacation))
	for _, row := range in.Vacation {
		if _, dup := vacationByID[row.ID]; !dup {
			vacationByID[row.ID] = row
		}
	}
	terminationByID := make(map[string]table.TerminationRow, len(in.Terminations))
	for _, row := range in.Terminations {
		if _, dup := terminationByID[row.ID]; !dup {
			terminationByID[row.ID] = row
		}
	}
	admissionByID := make(map[string]table.AdmissionRow, len(in.Admissions))
	for _, row := range in.Admissions {
		if _, dup := admissionByID[row.ID]; !dup {
			admissionByID[row.ID] = row
		}
	}

	seen := make(map[string]bool, len(eligible))
	duplicates := 0
	records := make([]types.EmployeeRecord, 0, len(eligible))
	for _, row := range eligible {
		if seen[row.ID] {
			duplicates++
			continue
		}
		seen[row.ID] = true

		rec := types.EmployeeRecord{
			ID:         row.ID,
			RoleTitle:  row.RoleTitle,
			UnionLabel: row.UnionLabel,
		}

		if v, ok := vacationByID[row.ID]; ok {
			if v.Invalid {
				rec.InputNotes = append(rec.InputNotes,
					fmt.Sprintf("unparseable vacation days %q, treated as 0", v.Raw))
			} else {
				rec.VacationDays = v.Days
			}
		}
		if t, ok := terminationByID[row.ID]; ok {
			if t.DateInvalid {
				rec.InputNotes = append(rec.InputNotes,
					fmt.Sprintf("unparseable termination date %q, treated as absent", t.DateRaw))
			} else {
				rec.Termination = t.Date
			}
			rec.TerminationNoticeConfirmed = t.NoticeConfirmed
		}
		if a, ok := admissionByID[row.ID]; ok {
			if a.DateInvalid {
				rec.InputNotes = append(rec.InputNotes,
					fmt.Sprintf("unparseable admission date %q, treated as absent", a.DateRaw))
			} else {
				rec.Admission = a.Date
			}
		}

		records = append(records, rec)
	}

	if duplicates > 0 {
		logs = append(logs, fmt.Sprintf("%d duplicate identifiers in the active table, first occurrence kept", duplicates))
	}
	return records, logs
}

// consistencyChecks cross-checks the merged records against the period
// window and emits aggregate warning lines for the report.
func consistencyChecks(records []types.EmployeeRecord, p period.Config) []string {
	var logs []string

	excessVacation := 0
	terminatedBeforeAdmission := 0
	terminationOutsideWindow := 0
	admissionAfterWindow := 0
	for _, rec := range records {
		if rec.VacationDays > p.WorkingDays {
			excessVacation++
		}
		if rec.Termination != nil && rec.Admission != nil && rec.Termination.Before(*rec.Admission) {
			terminatedBeforeAdmission++
		}
		if rec.Termination != nil && p.Competency.Contains(*rec.Termination) {
			if rec.Termination.Before(p.Start) || rec.Termination.After(p.End) {
				terminationOutsideWindow++
			}
		}
		if rec.Admission != nil && rec.Admission.After(p.End) {
			admissionAfterWindow++
		}
	}

	if excessVacation > 0 {
		logs = append(logs, fmt.Sprintf("%d employees report more vacation days than the period holds", excessVacation))
	}
	if terminatedBeforeAdmission > 0 {
		logs = append(logs, fmt.Sprintf("%d employees have a termination date before their admission date", terminatedBeforeAdmission))
	}
	if terminationOutsideWindow > 0 {
		logs = append(logs, fmt.Sprintf("%d competency-month terminations fall outside the reference window", terminationOutsideWindow))
	}
	if admissionAfterWindow > 0 {
		logs = append(logs, fmt.Sprintf("%d admission dates fall after the reference window", admissionAfterWindow))
	}
	return logs
}
