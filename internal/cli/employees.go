package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"hrconsole/internal/models"
	"hrconsole/internal/validate"
)

func (a *App) ListEmployees(ctx context.Context) error {
	fmt.Fprintln(a.out, "Loading employees...")
	employees, err := a.employees.List(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	a.empCache = employees
	renderEmployees(a.out, employees)
	return nil
}

// AddEmployee collects the employee form, validates it locally (invalid
// forms never reach the network) and submits. Server failures are routed
// back onto form fields where the response structure allows it.
func (a *App) AddEmployee(ctx context.Context) error {
	var req models.CreateEmployeeRequest
	var err error

	if req.EmployeeID, err = GetSimpleText(a.reader, "Employee ID", a.out); err != nil {
		return err
	}
	if req.FullName, err = GetSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if req.Department, err = GetChoice(a.reader, "Department", models.Departments, a.out); err != nil {
		return err
	}

	if errs := validate.Employee(req); !errs.Ok() {
		a.printFieldErrors(errs)
		return nil
	}

	emp, err := a.employees.Create(ctx, req)
	if err != nil {
		a.printFieldErrors(validate.RouteServerError(err))
		return err
	}

	a.empCache = nil // stale now
	fmt.Fprintf(a.out, "Employee %s created.\n", emp.EmployeeID)
	return nil
}

func (a *App) ShowEmployee(ctx context.Context, employeeID string) error {
	emp, err := a.employees.Get(ctx, employeeID)
	if err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "%s  %s\n  email:      %s\n  department: %s\n", emp.EmployeeID, emp.FullName, emp.Email, emp.Department)
	return nil
}

// UpdateEmployee prompts for new values; empty input keeps a field as-is.
func (a *App) UpdateEmployee(ctx context.Context, employeeID string) error {
	var req models.UpdateEmployeeRequest
	var err error

	if req.FullName, err = GetSimpleText(a.reader, "Full name (empty to keep)", a.out); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(a.reader, "Email (empty to keep)", a.out); err != nil {
		return err
	}
	if req.Department, err = GetSimpleText(a.reader, "Department (empty to keep)", a.out); err != nil {
		return err
	}

	if errs := validate.EmployeeUpdate(req); !errs.Ok() {
		a.printFieldErrors(errs)
		return nil
	}

	emp, err := a.employees.Update(ctx, employeeID, req)
	if err != nil {
		a.printFieldErrors(validate.RouteServerError(err))
		return err
	}

	a.empCache = nil
	fmt.Fprintf(a.out, "Employee %s updated.\n", emp.EmployeeID)
	return nil
}

// RemoveEmployee deletes on the server, then drops the row from this
// view's cached list without refetching.
func (a *App) RemoveEmployee(ctx context.Context, employeeID string) error {
	if err := a.employees.Delete(ctx, employeeID); err != nil {
		a.printError(err)
		return err
	}
	a.empCache = removeByID(a.empCache, employeeID)
	fmt.Fprintf(a.out, "Employee %s removed.\n", employeeID)
	return nil
}

func removeByID(employees []models.Employee, employeeID string) []models.Employee {
	out := employees[:0]
	for _, e := range employees {
		if e.EmployeeID != employeeID {
			out = append(out, e)
		}
	}
	return out
}

func renderEmployees(w io.Writer, employees []models.Employee) {
	if len(employees) == 0 {
		fmt.Fprintln(w, "No employees yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE ID\tNAME\tEMAIL\tDEPARTMENT")
	for _, e := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.EmployeeID, e.FullName, e.Email, e.Department)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d employee(s)\n", len(employees))
}

func (a *App) printFieldErrors(errs validate.FieldErrors) {
	if errs.Ok() {
		return
	}
	fmt.Fprintln(a.out, "Could not save:")
	for _, field := range sortedFields(errs) {
		fmt.Fprintf(a.out, "  %s: %s\n", field, errs[field])
	}
}

// sortedFields orders field names alphabetically with any form-level
// message last, so the output is stable run to run.
func sortedFields(errs validate.FieldErrors) []string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		if fields[i] == validate.FormField {
			return false
		}
		if fields[j] == validate.FormField {
			return true
		}
		return fields[i] < fields[j]
	})
	return fields
}
