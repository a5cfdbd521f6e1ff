package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"hrconsole/internal/api"
	"hrconsole/internal/models"
	"hrconsole/internal/stats"
)

// Dashboard fetches the employee and attendance lists concurrently and
// joins them: if either fetch fails the whole dashboard fails, never a
// partial one. The joined lists feed the pure stats folds.
func (a *App) Dashboard(ctx context.Context) error {
	fmt.Fprintln(a.out, "Loading dashboard...")

	var employees []models.Employee
	var records []models.AttendanceRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = a.employees.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = a.attendance.List(gctx, api.ListFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		a.printError(err)
		fmt.Fprintln(a.out, "Run 'dashboard' to retry.")
		return err
	}

	renderDashboard(a.out, employees, records)
	return nil
}

func renderDashboard(w io.Writer, employees []models.Employee, records []models.AttendanceRecord) {
	totals := stats.ComputeTotals(employees, records)
	fmt.Fprintf(w, "Employees: %d   Records: %d   Present: %d   Absent: %d\n\n",
		totals.Employees, totals.Records, totals.Present, totals.Absent)

	fmt.Fprintln(w, "Top performers")
	performers := stats.TopPerformers(employees, records)
	if len(performers) == 0 {
		fmt.Fprintln(w, "  No attendance marked yet.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, p := range performers {
			fmt.Fprintf(tw, "  %d.\t%s\t%s\t%d present day(s)\n", i+1, p.FullName, p.Department, p.PresentDays)
		}
		tw.Flush()
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Departments")
	rollup := stats.DepartmentRollup(employees, records)
	if len(rollup) == 0 {
		fmt.Fprintln(w, "  No employees yet.")
	} else {
		departments := make([]string, 0, len(rollup))
		for d := range rollup {
			departments = append(departments, d)
		}
		sort.Strings(departments)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, d := range departments {
			fmt.Fprintf(tw, "  %s\t%d employee(s)\t%d present day(s)\n", d, rollup[d].Total, rollup[d].PresentDays)
		}
		tw.Flush()
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Recent activity")
	recent := stats.RecentActivity(records)
	if len(recent) == 0 {
		fmt.Fprintln(w, "  Nothing yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range recent {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.AttendanceDate, r.EmployeeID, r.Status)
	}
	tw.Flush()
}
