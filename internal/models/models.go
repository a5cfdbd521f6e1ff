// Package models defines the transport DTOs exchanged with the HR backend.
// The console never owns authoritative state: every struct here mirrors what
// the server sends, and the server-assigned surrogate id is kept separate
// from the employee business key.
package models

import "time"

// AttendanceStatus enumerates the two attendance states the backend accepts.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

// Valid reports whether s is one of the accepted attendance states.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Departments is the fixed set of department labels the employee form offers.
var Departments = []string{
	"Engineering",
	"HR",
	"Sales",
	"Marketing",
	"Finance",
	"Operations",
}

// ValidDepartment reports whether d is one of the known department labels.
func ValidDepartment(d string) bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

// Employee is an employee record as returned by the backend.
//
// ID is the server-assigned surrogate key; EmployeeID is the business key
// all delete/update/get calls are keyed by.
type Employee struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// CreateEmployeeRequest is the body of POST /employees.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// UpdateEmployeeRequest is the body of PUT /employees/{employee_id}.
type UpdateEmployeeRequest struct {
	FullName   string `json:"full_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
}

// AttendanceRecord is a single per-day attendance entry.
//
// AttendanceDate is an ISO-8601 calendar date without a time component.
// CreatedAt is an optional server timestamp; When prefers it for ordering.
type AttendanceRecord struct {
	ID             int64            `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	AttendanceDate string           `json:"attendance_date"`
	Status         AttendanceStatus `json:"status"`
	CreatedAt      string           `json:"created_at,omitempty"`
}

const dateLayout = "2006-01-02"

// When returns the best date-comparable value for the record: the server
// creation timestamp when present and parseable, otherwise the attendance
// date. Unparseable records collapse to the zero time and sort last in any
// descending ordering.
func (r AttendanceRecord) When() time.Time {
	if r.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
			return t
		}
		if t, err := time.Parse(dateLayout, r.CreatedAt); err == nil {
			return t
		}
	}
	if t, err := time.Parse(dateLayout, r.AttendanceDate); err == nil {
		return t
	}
	return time.Time{}
}

// MarkAttendanceRequest is the body of POST /attendance and
// PUT /attendance/{attendance_id}.
type MarkAttendanceRequest struct {
	EmployeeID     string           `json:"employee_id"`
	AttendanceDate string           `json:"attendance_date"`
	Status         AttendanceStatus `json:"status"`
}

// User is the authenticated operator as reported by the auth layer.
type User struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginRequest is the credential pair exchanged for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token and the resolved user.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// ErrorDetail is the structured failure payload the auth layer (and some
// backend endpoints) nest under a "detail" key.
type ErrorDetail struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ErrorBody is the envelope for a structured failure response.
type ErrorBody struct {
	Detail ErrorDetail `json:"detail"`
}
