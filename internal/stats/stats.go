// Package stats computes read-only aggregates over already-fetched employee
// and attendance lists. Every function is a deterministic pure fold: same
// inputs, same output, no network access, and empty inputs produce empty or
// zero aggregates rather than errors.
package stats

import (
	"sort"

	"hrconsole/internal/models"
)

// Totals are the headline counters of the dashboard.
type Totals struct {
	Employees int
	Records   int
	Present   int
	Absent    int
}

func ComputeTotals(employees []models.Employee, records []models.AttendanceRecord) Totals {
	t := Totals{Employees: len(employees), Records: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.StatusPresent:
			t.Present++
		case models.StatusAbsent:
			t.Absent++
		}
	}
	return t
}

// PresentDaysByEmployee maps each employee business key to its count of
// PRESENT records, built in a single pass.
func PresentDaysByEmployee(records []models.AttendanceRecord) map[string]int {
	out := make(map[string]int)
	for _, r := range records {
		if r.Status == models.StatusPresent {
			out[r.EmployeeID]++
		}
	}
	return out
}

// Performer is one row of the top-performers view.
type Performer struct {
	EmployeeID  string
	FullName    string
	Department  string
	PresentDays int
}

const topPerformerLimit = 5

// TopPerformers ranks the employees appearing in the present-days mapping
// by present-day count, descending, and keeps the top five. Ties retain the
// order in which an employee first appears in the record list. Name and
// department come from a join against the employee list, defaulting to
// "Unknown" when the record references a key with no matching employee.
func TopPerformers(employees []models.Employee, records []models.AttendanceRecord) []Performer {
	presentDays := PresentDaysByEmployee(records)

	// First-appearance order of the keys keeps the sort stable across runs.
	seen := make(map[string]bool, len(presentDays))
	var order []string
	for _, r := range records {
		if r.Status == models.StatusPresent && !seen[r.EmployeeID] {
			seen[r.EmployeeID] = true
			order = append(order, r.EmployeeID)
		}
	}

	byKey := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byKey[e.EmployeeID] = e
	}

	performers := make([]Performer, 0, len(order))
	for _, id := range order {
		p := Performer{EmployeeID: id, FullName: "Unknown", Department: "Unknown", PresentDays: presentDays[id]}
		if e, ok := byKey[id]; ok {
			p.FullName = e.FullName
			p.Department = e.Department
		}
		performers = append(performers, p)
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].PresentDays > performers[j].PresentDays
	})

	if len(performers) > topPerformerLimit {
		performers = performers[:topPerformerLimit]
	}
	return performers
}

// DepartmentStats is the per-department rollup entry.
type DepartmentStats struct {
	Total       int
	PresentDays int
}

// DepartmentRollup accumulates, per department label, the employee count
// and the sum of those employees' present days. Every employee contributes
// to exactly one department, so the rollup totals always sum to the
// employee count.
func DepartmentRollup(employees []models.Employee, records []models.AttendanceRecord) map[string]DepartmentStats {
	presentDays := PresentDaysByEmployee(records)
	out := make(map[string]DepartmentStats)
	for _, e := range employees {
		d := out[e.Department]
		d.Total++
		d.PresentDays += presentDays[e.EmployeeID]
		out[e.Department] = d
	}
	return out
}

const recentActivityLimit = 10

// RecentActivity returns the records sorted descending by creation
// timestamp (falling back to attendance date), truncated to the ten most
// recent. The input slice is not modified.
func RecentActivity(records []models.AttendanceRecord) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].When().After(out[j].When())
	})
	if len(out) > recentActivityLimit {
		out = out[:recentActivityLimit]
	}
	return out
}
