package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"hrconsole/internal/api"
	"hrconsole/internal/models"
	"hrconsole/internal/validate"
)

// MarkAttendance collects and submits one attendance entry. Whether the
// (employee, date) pair is already marked is the server's call; a duplicate
// comes back as a normalized message on the form.
func (a *App) MarkAttendance(ctx context.Context) error {
	var req models.MarkAttendanceRequest
	var err error

	if req.EmployeeID, err = GetSimpleText(a.reader, "Employee ID", a.out); err != nil {
		return err
	}
	if req.AttendanceDate, err = GetSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	status, err := GetChoice(a.reader, "Status", []string{string(models.StatusPresent), string(models.StatusAbsent)}, a.out)
	if err != nil {
		return err
	}
	req.Status = models.AttendanceStatus(status)

	if errs := validate.Attendance(req); !errs.Ok() {
		a.printFieldErrors(errs)
		return nil
	}

	rec, err := a.attendance.Mark(ctx, req)
	if err != nil {
		a.printFieldErrors(validate.RouteServerError(err))
		return err
	}

	fmt.Fprintf(a.out, "Marked %s as %s on %s.\n", rec.EmployeeID, rec.Status, rec.AttendanceDate)
	return nil
}

// ListAttendance lists records, optionally narrowed by positional filters:
// attendance [start] [end] [status]. A "-" placeholder skips a position.
func (a *App) ListAttendance(ctx context.Context, args []string) error {
	filter, err := parseListFilter(args)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Loading attendance...")
	records, err := a.attendance.List(ctx, filter)
	if err != nil {
		a.printError(err)
		return err
	}
	renderRecords(a.out, records)
	return nil
}

// History lists one employee's records: history <employee_id> [start] [end].
func (a *App) History(ctx context.Context, args []string) error {
	employeeID := args[0]
	var rng api.DateRange
	if len(args) > 1 {
		rng.StartDate = blankIfDash(args[1])
	}
	if len(args) > 2 {
		rng.EndDate = blankIfDash(args[2])
	}
	if err := validate.Date(rng.StartDate); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if err := validate.Date(rng.EndDate); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	records, err := a.attendance.ListByEmployee(ctx, employeeID, rng)
	if err != nil {
		a.printError(err)
		return err
	}
	renderRecords(a.out, records)
	return nil
}

func parseListFilter(args []string) (api.ListFilter, error) {
	var f api.ListFilter
	if len(args) > 0 {
		f.StartDate = blankIfDash(args[0])
	}
	if len(args) > 1 {
		f.EndDate = blankIfDash(args[1])
	}
	if len(args) > 2 && args[2] != "-" {
		f.Status = models.AttendanceStatus(args[2])
		if !f.Status.Valid() {
			return api.ListFilter{}, fmt.Errorf("status %q must be PRESENT or ABSENT", args[2])
		}
	}
	if err := validate.Date(f.StartDate); err != nil {
		return api.ListFilter{}, err
	}
	if err := validate.Date(f.EndDate); err != nil {
		return api.ListFilter{}, err
	}
	return f, nil
}

func blankIfDash(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func renderRecords(w io.Writer, records []models.AttendanceRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No attendance records match.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMPLOYEE\tDATE\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.EmployeeID, r.AttendanceDate, r.Status)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d record(s)\n", len(records))
}
