package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"hrconsole/internal/models"
)

// ListFilter narrows GET /attendance. Zero values mean "no filter"; dates
// are ISO-8601 calendar dates.
type ListFilter struct {
	StartDate string
	EndDate   string
	Status    models.AttendanceStatus
}

// DateRange narrows a per-employee history query.
type DateRange struct {
	StartDate string
	EndDate   string
}

// Attendance is the typed facade over the /attendance endpoints. Mutating
// calls are keyed by the record's surrogate id; the per-employee listing is
// keyed by the employee business key.
type Attendance struct {
	c *Client
}

func NewAttendance(c *Client) *Attendance {
	return &Attendance{c: c}
}

// Mark creates one attendance record. Uniqueness of the
// (employee_id, attendance_date) pair is enforced by the server; a
// duplicate comes back as a normalized failure, not a local check.
func (a *Attendance) Mark(ctx context.Context, req models.MarkAttendanceRequest) (*models.AttendanceRecord, error) {
	var out models.AttendanceRecord
	if err := a.c.do(ctx, http.MethodPost, "/attendance", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Attendance) List(ctx context.Context, f ListFilter) ([]models.AttendanceRecord, error) {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	if f.Status != "" {
		q.Set("status_filter", string(f.Status))
	}
	var out []models.AttendanceRecord
	if err := a.c.do(ctx, http.MethodGet, "/attendance", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Attendance) ListByEmployee(ctx context.Context, employeeID string, r DateRange) ([]models.AttendanceRecord, error) {
	q := url.Values{}
	if r.StartDate != "" {
		q.Set("start_date", r.StartDate)
	}
	if r.EndDate != "" {
		q.Set("end_date", r.EndDate)
	}
	var out []models.AttendanceRecord
	if err := a.c.do(ctx, http.MethodGet, "/attendance/"+url.PathEscape(employeeID), q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Attendance) Update(ctx context.Context, id int64, req models.MarkAttendanceRequest) (*models.AttendanceRecord, error) {
	var out models.AttendanceRecord
	if err := a.c.do(ctx, http.MethodPut, "/attendance/"+strconv.FormatInt(id, 10), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Attendance) Delete(ctx context.Context, id int64) error {
	return a.c.do(ctx, http.MethodDelete, "/attendance/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
