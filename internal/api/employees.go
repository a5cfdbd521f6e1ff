package api

import (
	"context"
	"net/http"
	"net/url"

	"hrconsole/internal/models"
)

// Employees is the typed facade over the /employees endpoints. Every method
// shapes a path and payload and delegates to the client core; all
// duplicate detection and referential validation happens server-side.
type Employees struct {
	c *Client
}

func NewEmployees(c *Client) *Employees {
	return &Employees{c: c}
}

func (e *Employees) List(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	if err := e.c.do(ctx, http.MethodGet, "/employees", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one employee by business key.
func (e *Employees) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	var out models.Employee
	if err := e.c.do(ctx, http.MethodGet, "/employees/"+url.PathEscape(employeeID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Employees) Create(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error) {
	var out models.Employee
	if err := e.c.do(ctx, http.MethodPost, "/employees", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifies an employee addressed by business key, not surrogate id.
func (e *Employees) Update(ctx context.Context, employeeID string, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	var out models.Employee
	if err := e.c.do(ctx, http.MethodPut, "/employees/"+url.PathEscape(employeeID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an employee addressed by business key.
func (e *Employees) Delete(ctx context.Context, employeeID string) error {
	return e.c.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(employeeID), nil, nil, nil)
}
