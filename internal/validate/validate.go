// Package validate performs the client-side form checks that run before any
// network call, and routes normalized server failures back onto form fields.
// Anything beyond field presence and format is the server's job.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hrconsole/internal/api"
	"hrconsole/internal/models"
)

// FormField is the pseudo-field used for errors that belong to the form as
// a whole rather than to one input.
const FormField = "form"

// FieldErrors maps a form field name to its validation message. An empty
// map means the form passed.
type FieldErrors map[string]string

func (f FieldErrors) Ok() bool { return len(f) == 0 }

func (f FieldErrors) String() string {
	if len(f) == 0 {
		return ""
	}
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

var (
	employeeIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const dateLayout = "2006-01-02"

// Employee checks the create-employee form.
func Employee(req models.CreateEmployeeRequest) FieldErrors {
	errs := FieldErrors{}
	switch {
	case strings.TrimSpace(req.EmployeeID) == "":
		errs["employee_id"] = "Employee ID is required"
	case !employeeIDRe.MatchString(req.EmployeeID):
		errs["employee_id"] = "Employee ID may only contain letters, digits, '-' and '_'"
	}
	if strings.TrimSpace(req.FullName) == "" {
		errs["full_name"] = "Full name is required"
	}
	switch {
	case strings.TrimSpace(req.Email) == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(req.Email):
		errs["email"] = "Enter a valid email address"
	}
	switch {
	case req.Department == "":
		errs["department"] = "Department is required"
	case !models.ValidDepartment(req.Department):
		errs["department"] = "Unknown department: " + req.Department
	}
	return errs
}

// EmployeeUpdate checks the update form, where every field is optional but
// a provided value must still be well-formed.
func EmployeeUpdate(req models.UpdateEmployeeRequest) FieldErrors {
	errs := FieldErrors{}
	if req.Email != "" && !emailRe.MatchString(req.Email) {
		errs["email"] = "Enter a valid email address"
	}
	if req.Department != "" && !models.ValidDepartment(req.Department) {
		errs["department"] = "Unknown department: " + req.Department
	}
	return errs
}

// Attendance checks the mark-attendance form.
func Attendance(req models.MarkAttendanceRequest) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(req.EmployeeID) == "" {
		errs["employee_id"] = "Employee ID is required"
	}
	switch {
	case req.AttendanceDate == "":
		errs["attendance_date"] = "Date is required"
	default:
		if _, err := time.Parse(dateLayout, req.AttendanceDate); err != nil {
			errs["attendance_date"] = "Date must be in YYYY-MM-DD form"
		}
	}
	if !req.Status.Valid() {
		errs["status"] = "Status must be PRESENT or ABSENT"
	}
	return errs
}

// Date checks a single optional filter date.
func Date(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("date %q must be in YYYY-MM-DD form", value)
	}
	return nil
}

// RouteServerError maps a failed submit back onto form fields.
//
// Structure first: when the failure body carries a field→messages mapping,
// each field gets its first message verbatim. Only unstructured failures
// fall back to substring matching on the normalized message (duplicate /
// already-exists complaints land on employee_id, email complaints on
// email); everything else is a form-level error.
func RouteServerError(err error) FieldErrors {
	if err == nil {
		return FieldErrors{}
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return FieldErrors{FormField: err.Error()}
	}

	if fields, ok := apiErr.FieldErrors(); ok {
		out := FieldErrors{}
		for field, msgs := range fields {
			if len(msgs) > 0 {
				out[field] = msgs[0]
			}
		}
		return out
	}

	msg := apiErr.UserMessage
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "duplicate") || strings.Contains(lower, "already exists"):
		return FieldErrors{"employee_id": msg}
	case strings.Contains(lower, "email"):
		return FieldErrors{"email": msg}
	default:
		return FieldErrors{FormField: msg}
	}
}
