package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrconsole/internal/api"
	"hrconsole/internal/logging"
	"hrconsole/internal/models"
	"hrconsole/internal/session"
	"hrconsole/internal/validate"
)

// newTestApp wires an App against the given handler, with canned stdin and
// a buffer for output.
func newTestApp(t *testing.T, handler http.Handler, input string) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := &session.MemStore{Token: "tok"}
	var out bytes.Buffer

	a := &App{
		session: sess,
		log:     logging.Discard(),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &out,
	}
	client := api.New(srv.URL, sess, srv.Client(), a.handleUnauthorized, logging.Discard())
	a.employees = api.NewEmployees(client)
	a.attendance = api.NewAttendance(client)
	a.auth = api.NewLocalAuth(sess, a.handleUnauthorized)
	return a, &out
}

func TestApp_LoginRoundTrip(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("admin123"), nil }
	defer func() { readPassword = orig }()

	a, out := newTestApp(t, http.NotFoundHandler(), "admin@hrms.com\n")

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "admin@hrms.com", a.getStatus())
	assert.Contains(t, out.String(), "Logged in as admin@hrms.com")
}

func TestApp_LoginRejected(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("wrong"), nil }
	defer func() { readPassword = orig }()

	a, out := newTestApp(t, http.NotFoundHandler(), "admin@hrms.com\n")

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "logged out", a.getStatus())
	assert.Contains(t, out.String(), "Error: Invalid email or password")
}

func TestApp_HandleUnauthorizedResetsUser(t *testing.T) {
	a, out := newTestApp(t, http.NotFoundHandler(), "")
	a.user = &models.User{Email: "admin@hrms.com"}

	a.handleUnauthorized()

	assert.Nil(t, a.user)
	assert.Contains(t, out.String(), "Session expired. Please login to continue.")
}

func TestApp_ListEmployeesCachesList(t *testing.T) {
	employees := []models.Employee{
		{ID: 1, EmployeeID: "E1", FullName: "Alice Johnson", Email: "alice@hrms.com", Department: "Engineering"},
		{ID: 2, EmployeeID: "E2", FullName: "Bob Lee", Email: "bob@hrms.com", Department: "Sales"},
	}
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(employees)
	}), "")

	require.NoError(t, a.ListEmployees(context.Background()))
	assert.Len(t, a.empCache, 2)
	assert.Contains(t, out.String(), "Alice Johnson")
	assert.Contains(t, out.String(), "2 employee(s)")
}

func TestApp_RemoveEmployeeDropsCachedRow(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), "")
	a.empCache = []models.Employee{{EmployeeID: "E1"}, {EmployeeID: "E2"}}

	require.NoError(t, a.RemoveEmployee(context.Background(), "E1"))
	require.Len(t, a.empCache, 1)
	assert.Equal(t, "E2", a.empCache[0].EmployeeID)
	assert.Contains(t, out.String(), "Employee E1 removed.")
}

func TestApp_AddEmployeeLocalValidationShortCircuits(t *testing.T) {
	var hits int
	// Bad employee ID and email: the form must be rejected before any request.
	input := "bad id!\nAlice Johnson\nnot-an-email\nEngineering\n"
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}), input)

	require.NoError(t, a.AddEmployee(context.Background()))
	assert.Zero(t, hits)
	assert.Contains(t, out.String(), "Could not save:")
	assert.Contains(t, out.String(), "employee_id:")
	assert.Contains(t, out.String(), "email:")
}

func TestApp_AddEmployeeDuplicateRoutedToField(t *testing.T) {
	input := "E1\nAlice Johnson\nalice@hrms.com\nEngineering\n"
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": {"message": "Employee ID already exists"}}`))
	}), input)

	err := a.AddEmployee(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "employee_id: Employee ID already exists")
}

func TestApp_MarkAttendance(t *testing.T) {
	input := "E1\n2026-08-29\nPRESENT\n"
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.AttendanceRecord{
			ID: 1, EmployeeID: "E1", AttendanceDate: "2026-08-29", Status: models.StatusPresent,
		})
	}), input)

	require.NoError(t, a.MarkAttendance(context.Background()))
	assert.Contains(t, out.String(), "Marked E1 as PRESENT on 2026-08-29.")
}

func TestApp_DashboardFailsWhole(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "attendance") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]models.Employee{{EmployeeID: "E1"}})
	}), "")

	err := a.Dashboard(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "Server error. Please try again later.")
	assert.Contains(t, out.String(), "Run 'dashboard' to retry.")
}

func TestParseListFilter(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    api.ListFilter
		wantErr bool
	}{
		{"no args", nil, api.ListFilter{}, false},
		{"full filter", []string{"2026-08-01", "2026-08-31", "PRESENT"},
			api.ListFilter{StartDate: "2026-08-01", EndDate: "2026-08-31", Status: models.StatusPresent}, false},
		{"dash placeholders", []string{"-", "-", "ABSENT"},
			api.ListFilter{Status: models.StatusAbsent}, false},
		{"bad status", []string{"-", "-", "LATE"}, api.ListFilter{}, true},
		{"bad date", []string{"08/01/2026"}, api.ListFilter{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseListFilter(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortedFields_FormLast(t *testing.T) {
	errs := validate.FieldErrors{
		validate.FormField: "something broke",
		"email":            "bad",
		"department":       "unknown",
	}
	assert.Equal(t, []string{"department", "email", validate.FormField}, sortedFields(errs))
}

func TestRenderRecords_Empty(t *testing.T) {
	var out bytes.Buffer
	renderRecords(&out, nil)
	assert.Equal(t, "No attendance records match.\n", out.String())
}

func TestRenderDashboard_Empty(t *testing.T) {
	var out bytes.Buffer
	renderDashboard(&out, nil, nil)
	assert.Contains(t, out.String(), "Employees: 0   Records: 0   Present: 0   Absent: 0")
	assert.Contains(t, out.String(), "No attendance marked yet.")
	assert.Contains(t, out.String(), "No employees yet.")
	assert.Contains(t, out.String(), "Nothing yet.")
}

func TestUserMessage(t *testing.T) {
	apiErr := &api.Error{Status: http.StatusNotFound, UserMessage: "Resource not found."}
	assert.Equal(t, "Resource not found.", userMessage(apiErr))
	assert.Equal(t, "plain failure", userMessage(errors.New("plain failure")))
}
