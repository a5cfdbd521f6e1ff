// Package report renders already-fetched attendance data into an .xlsx
// workbook: one sheet with the raw records, one with the per-department
// rollup. It is a pure function of its inputs plus one file write; nothing
// here keeps state between calls.
package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"hrconsole/internal/models"
	"hrconsole/internal/stats"
)

const (
	recordsSheet = "Attendance"
	summarySheet = "Summary"
)

var recordHeaders = []string{"ID", "Employee ID", "Full Name", "Date", "Status", "Created At"}
var summaryHeaders = []string{"Department", "Employees", "Present Days"}

// WriteAttendance writes the workbook to path, overwriting any existing
// file. Employee names are joined in by business key; records referencing
// an unknown employee get an empty name cell.
func WriteAttendance(path string, employees []models.Employee, records []models.AttendanceRecord) error {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.EmployeeID] = e.FullName
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRow(f, recordsSheet, 1, toCells(recordHeaders)); err != nil {
		return err
	}
	for i, r := range records {
		cells := []any{r.ID, r.EmployeeID, names[r.EmployeeID], r.AttendanceDate, string(r.Status), r.CreatedAt}
		if err := writeRow(f, recordsSheet, i+2, cells); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}
	if err := writeRow(f, summarySheet, 1, toCells(summaryHeaders)); err != nil {
		return err
	}

	rollup := stats.DepartmentRollup(employees, records)
	departments := make([]string, 0, len(rollup))
	for d := range rollup {
		departments = append(departments, d)
	}
	sort.Strings(departments)

	for i, d := range departments {
		cells := []any{d, rollup[d].Total, rollup[d].PresentDays}
		if err := writeRow(f, summarySheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	for col, value := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, name, value); err != nil {
			return fmt.Errorf("set cell %s: %w", name, err)
		}
	}
	return nil
}

func toCells(headers []string) []any {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}
