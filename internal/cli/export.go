package cli

import (
	"context"
	"fmt"

	"hrconsole/internal/api"
	"hrconsole/internal/report"
)

// Export fetches the current lists and writes the attendance workbook to
// path. The workbook is derived output, not console state.
func (a *App) Export(ctx context.Context, path string) error {
	fmt.Fprintln(a.out, "Fetching data for export...")

	employees, err := a.employees.List(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	records, err := a.attendance.List(ctx, api.ListFilter{})
	if err != nil {
		a.printError(err)
		return err
	}

	if err := report.WriteAttendance(path, employees, records); err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "Wrote %d record(s) to %s\n", len(records), path)
	return nil
}
