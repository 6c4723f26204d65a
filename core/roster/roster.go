// Package roster resolves category memberships and derives the eligible
// employee set. Exclusion is a set union over the category rules; the
// expatriate and on-leave rules carry explicit exceptions that remove an
// id already staged for exclusion.
package roster

import (
	"fmt"
	"strings"

	"meal-benefit/core/table"
	"meal-benefit/core/types"
)

// Rules configures the title-based exclusion predicate.
type Rules struct {
	// ExcludedTitles are case-insensitive substrings; a role title
	// containing any of them excludes the employee
	ExcludedTitles []string
}

// DefaultExcludedTitles matches the business's standing exclusion list.
func DefaultExcludedTitles() []string {
	return []string{"diretor", "presidente", "ceo"}
}

// Inputs are the category membership tables, already typed.
type Inputs struct {
	Interns     []table.CategoryRow
	Apprentices []table.CategoryRow
	Expatriates []table.CategoryRow
	OnLeave     []table.CategoryRow
}

// Resolution is the outcome of the exclusion pass.
type Resolution struct {
	// Memberships maps each id to the categories it holds
	Memberships map[string]types.CategorySet

	// Excluded is the final excluded-id set
	Excluded map[string]bool

	// Eligible is the active rows minus excluded ids, preserving the
	// active-table row order
	Eligible []table.ActiveRow

	// Logs records exception paths taken and rule counts
	Logs []string
}

// Resolve classifies every id and applies the exclusion rules. The five
// rules are each a pure set condition, so their application order does
// not change the result.
func Resolve(active []table.ActiveRow, in Inputs, rules Rules) Resolution {
	res := Resolution{
		Memberships: make(map[string]types.CategorySet),
		Excluded:    make(map[string]bool),
	}

	// Interns and apprentices: membership alone excludes.
	for _, row := range in.Interns {
		res.member(row.ID, types.CategoryIntern)
		res.Excluded[row.ID] = true
	}
	for _, row := range in.Apprentices {
		res.member(row.ID, types.CategoryApprentice)
		res.Excluded[row.ID] = true
	}

	// Expatriates: excluded unless the returned marker is present.
	returnedAbroad := 0
	for _, row := range in.Expatriates {
		res.member(row.ID, types.CategoryExpatriate)
		if row.Returned {
			returnedAbroad++
			continue
		}
		res.Excluded[row.ID] = true
	}
	if returnedAbroad > 0 {
		res.log("%d employees returned from assignment abroad, kept eligible", returnedAbroad)
	}

	// On-leave: excluded unless a return date is present.
	confirmedReturns := 0
	for _, row := range in.OnLeave {
		res.member(row.ID, types.CategoryOnLeave)
		if row.ReturnDate != nil {
			confirmedReturns++
			continue
		}
		res.Excluded[row.ID] = true
	}
	if confirmedReturns > 0 {
		res.log("%d on-leave employees with a confirmed return date, kept eligible", confirmedReturns)
	}

	// Excluded titles: substring match on the active table itself.
	titleExclusions := 0
	for _, row := range active {
		if TitleExcluded(row.RoleTitle, rules.ExcludedTitles) {
			res.member(row.ID, types.CategoryDirector)
			if !res.Excluded[row.ID] {
				titleExclusions++
			}
			res.Excluded[row.ID] = true
		}
	}
	if titleExclusions > 0 {
		res.log("%d employees excluded by role title", titleExclusions)
	}

	for _, row := range active {
		if !res.Excluded[row.ID] {
			res.Eligible = append(res.Eligible, row)
		}
	}
	res.log("exclusion filter: %d of %d active employees eligible", len(res.Eligible), len(active))

	return res
}

// TitleExcluded reports whether a role title contains any excluded
// substring, case-insensitively.
func TitleExcluded(title string, excluded []string) bool {
	lower := strings.ToLower(title)
	for _, sub := range excluded {
		if sub == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

func (r *Resolution) member(id string, c types.Category) {
	set, ok := r.Memberships[id]
	if !ok {
		set = make(types.CategorySet)
		r.Memberships[id] = set
	}
	set[c] = true
}

func (r *Resolution) log(format string, args ...interface{}) {
	r.Logs = append(r.Logs, fmt.Sprintf(format, args...))
}
