package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"hrconsole/internal/models"
	"hrconsole/internal/session"
)

func newTestAttendance(t *testing.T, srv *httptest.Server) *Attendance {
	t.Helper()
	return NewAttendance(New(srv.URL, &session.MemStore{Token: "t"}, srv.Client(), nil, nil))
}

func TestAttendance_Mark(t *testing.T) {
	srv, reqs := newFacadeServer(t, 201, `{"id":10,"employee_id":"E1","attendance_date":"2026-08-28","status":"PRESENT"}`)

	req := models.MarkAttendanceRequest{
		EmployeeID:     "E1",
		AttendanceDate: "2026-08-28",
		Status:         models.StatusPresent,
	}
	got, err := newTestAttendance(t, srv).Mark(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, int64(10), got.ID)

	require.Equal(t, http.MethodPost, (*reqs)[0].Method)
	require.Equal(t, "/attendance", (*reqs)[0].Path)

	var sent models.MarkAttendanceRequest
	require.NoError(t, json.Unmarshal((*reqs)[0].Body, &sent))
	require.Equal(t, req, sent)
}

func TestAttendance_ListFilters(t *testing.T) {
	srv, reqs := newFacadeServer(t, 200, `[]`)
	att := newTestAttendance(t, srv)
	ctx := context.Background()

	_, err := att.List(ctx, ListFilter{})
	require.NoError(t, err)

	_, err = att.List(ctx, ListFilter{StartDate: "2026-08-01", EndDate: "2026-08-31", Status: models.StatusAbsent})
	require.NoError(t, err)

	require.Equal(t, "", (*reqs)[0].Query, "zero filter must add no query params")

	q, err := url.ParseQuery((*reqs)[1].Query)
	require.NoError(t, err)
	require.Equal(t, "2026-08-01", q.Get("start_date"))
	require.Equal(t, "2026-08-31", q.Get("end_date"))
	require.Equal(t, "ABSENT", q.Get("status_filter"))
}

func TestAttendance_ListByEmployee(t *testing.T) {
	srv, reqs := newFacadeServer(t, 200, `[{"id":1,"employee_id":"E1","attendance_date":"2026-08-28","status":"PRESENT"}]`)

	got, err := newTestAttendance(t, srv).ListByEmployee(context.Background(), "E1", DateRange{StartDate: "2026-08-01"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.Equal(t, "/attendance/E1", (*reqs)[0].Path)
	q, err := url.ParseQuery((*reqs)[0].Query)
	require.NoError(t, err)
	require.Equal(t, "2026-08-01", q.Get("start_date"))
	require.Equal(t, "", q.Get("end_date"))
}

func TestAttendance_UpdateDelete_KeyedBySurrogateID(t *testing.T) {
	srv, reqs := newFacadeServer(t, 200, `{"id":42}`)
	att := newTestAttendance(t, srv)
	ctx := context.Background()

	_, err := att.Update(ctx, 42, models.MarkAttendanceRequest{Status: models.StatusAbsent})
	require.NoError(t, err)
	require.NoError(t, att.Delete(ctx, 42))

	require.Equal(t, http.MethodPut, (*reqs)[0].Method)
	require.Equal(t, "/attendance/42", (*reqs)[0].Path)
	require.Equal(t, http.MethodDelete, (*reqs)[1].Method)
	require.Equal(t, "/attendance/42", (*reqs)[1].Path)
}

func TestAttendance_UnknownEmployeeSurfacesServerMessage(t *testing.T) {
	srv, _ := newFacadeServer(t, 404, `{"detail":{"message":"Employee not found"}}`)

	_, err := newTestAttendance(t, srv).Mark(context.Background(), models.MarkAttendanceRequest{
		EmployeeID:     "NOPE",
		AttendanceDate: "2026-08-28",
		Status:         models.StatusPresent,
	})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Employee not found", apiErr.UserMessage)
}
