package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	QwID        string `json:"qw_id"`
	AutoAnalyze bool   `json:"auto_analyze"`
	Status      int    `json:"status"`
}

type UpdateEmployeeRequest struct {
	Name          *string `json:"name,omitempty"`
	QwID          *string `json:"qw_id,omitempty"`
	AutoAnalyze   *bool   `json:"auto_analyze,omitempty"`
	Status        *int    `json:"status,omitempty"`
	GroupID       *string `json:"group_id,omitempty"`
	AccountUserID *string `json:"account_user_id,omitempty"`
}

type ListEmployeesQuery struct {
	Page     int
	PageSize int
}

func (c *Client) ListEmployees(ctx context.Context, q ListEmployeesQuery) (*Page[Employee], error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(q.PageSize))
	}
	var page Page[Employee]
	if err := c.do(ctx, http.MethodGet, "/employees", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodPost, "/employees", nil, req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodPut, "/employees/"+id, nil, req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+id, nil, nil, nil)
}

// AssignAccount links a login account to an employee; the backend updates the
// employee's denormalized account fields as a side effect.
func (c *Client) AssignAccount(ctx context.Context, employeeID, accountUserID string) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodPut, "/employees/"+employeeID+"/account/"+accountUserID, nil, nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) RemoveAccount(ctx context.Context, employeeID string) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodDelete, "/employees/"+employeeID+"/account", nil, nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) AvailableAccounts(ctx context.Context) ([]AccountBrief, error) {
	var accounts []AccountBrief
	if err := c.do(ctx, http.MethodGet, "/employees/available-accounts", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
