package backend

import (
	"context"
	"net/http"
)

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LeaderID    string `json:"leader_id,omitempty"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	LeaderID    *string `json:"leader_id,omitempty"`
}

func (c *Client) ListGroups(ctx context.Context) ([]EmployeeGroup, error) {
	var groups []EmployeeGroup
	if err := c.do(ctx, http.MethodGet, "/employee-groups", nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup returns the group detail including its member list.
func (c *Client) GetGroup(ctx context.Context, id string) (*EmployeeGroup, error) {
	var group EmployeeGroup
	if err := c.do(ctx, http.MethodGet, "/employee-groups/"+id, nil, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (*EmployeeGroup, error) {
	var group EmployeeGroup
	if err := c.do(ctx, http.MethodPost, "/employee-groups", nil, req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) UpdateGroup(ctx context.Context, id string, req UpdateGroupRequest) (*EmployeeGroup, error) {
	var group EmployeeGroup
	if err := c.do(ctx, http.MethodPut, "/employee-groups/"+id, nil, req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employee-groups/"+id, nil, nil, nil)
}

func (c *Client) AddGroupMembers(ctx context.Context, groupID string, employeeIDs []string) (*EmployeeGroup, error) {
	var group EmployeeGroup
	body := map[string][]string{"employee_ids": employeeIDs}
	if err := c.do(ctx, http.MethodPost, "/employee-groups/"+groupID+"/members", nil, body, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) RemoveGroupMember(ctx context.Context, groupID, employeeID string) error {
	return c.do(ctx, http.MethodDelete, "/employee-groups/"+groupID+"/members/"+employeeID, nil, nil, nil)
}

func (c *Client) SetGroupLeader(ctx context.Context, groupID, employeeID string) (*EmployeeGroup, error) {
	var group EmployeeGroup
	if err := c.do(ctx, http.MethodPut, "/employee-groups/"+groupID+"/leader/"+employeeID, nil, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) UnassignedEmployees(ctx context.Context) ([]EmployeeBrief, error) {
	var employees []EmployeeBrief
	if err := c.do(ctx, http.MethodGet, "/employee-groups/unassigned-employees", nil, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
