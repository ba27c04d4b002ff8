package backend

import (
	"context"
	"net/http"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

type CreateAccountRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	AccountType int    `json:"account_type,omitempty"`
}

type UpdateAccountRequest struct {
	Username    *string `json:"username,omitempty"`
	Password    *string `json:"password,omitempty"`
	AccountType *int    `json:"account_type,omitempty"`
	Status      *int    `json:"status,omitempty"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListAccounts(ctx context.Context) (*Page[AccountUser], error) {
	var page Page[AccountUser]
	if err := c.do(ctx, http.MethodGet, "/account-users", nil, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (*AccountUser, error) {
	var account AccountUser
	if err := c.do(ctx, http.MethodGet, "/account-users/"+id, nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*AccountUser, error) {
	var account AccountUser
	if err := c.do(ctx, http.MethodPost, "/account-users", nil, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, id string, req UpdateAccountRequest) (*AccountUser, error) {
	var account AccountUser
	if err := c.do(ctx, http.MethodPut, "/account-users/"+id, nil, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/account-users/"+id, nil, nil, nil)
}

func (c *Client) ResetPassword(ctx context.Context, id, newPassword string) (*AccountUser, error) {
	var account AccountUser
	body := map[string]string{"new_password": newPassword}
	if err := c.do(ctx, http.MethodPut, "/account-users/"+id+"/reset-password", nil, body, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
