package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"xcauditing-console/internal/auth"
	"xcauditing-console/internal/backend"
	"xcauditing-console/internal/cache"
)

// reservedAdminUsername cannot be deleted or have its name/type changed; the
// console rejects such requests before any backend call is issued.
const reservedAdminUsername = "admin"

type AccountsHandler struct {
	sessions
	client *backend.Client
	cache  *cache.Cache
}

func NewAccountsHandler(client *backend.Client, store *auth.Store, cookieName string, c *cache.Cache) *AccountsHandler {
	return &AccountsHandler{
		sessions: sessions{store: store, cookieName: cookieName},
		client:   client,
		cache:    c,
	}
}

type updateAccountRequest struct {
	Username    *string `json:"username,omitempty"`
	Password    *string `json:"password,omitempty"`
	AccountType *int    `json:"account_type,omitempty"`
	Status      *int    `json:"status,omitempty"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (h *AccountsHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	key := cache.Key(cache.KeyAccounts, "list")
	var page backend.Page[backend.AccountUser]
	if !h.cache.GetJSON(ctx, key, &page) {
		fresh, err := h.client.ListAccounts(ctx)
		if err != nil {
			h.fail(c, err)
			return
		}
		page = *fresh
		h.cache.SetJSON(ctx, key, page, cache.TTLShort)
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Accounts retrieved successfully", page.Rows(), gin.H{
		"total_elements": page.TotalElements,
	}))
}

func (h *AccountsHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	account, err := h.client.GetAccount(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse("Account retrieved successfully", account))
}

func (h *AccountsHandler) Create(c *gin.Context) {
	var req backend.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	account, err := h.client.CreateAccount(ctx, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyAccounts, cache.KeyAvailableAccounts)
	c.JSON(http.StatusCreated, successResponse("Account created successfully", account))
}

func (h *AccountsHandler) Update(c *gin.Context) {
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	target, err := h.client.GetAccount(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if target.Username == reservedAdminUsername {
		renamed := req.Username != nil && *req.Username != reservedAdminUsername
		retyped := req.AccountType != nil && *req.AccountType != auth.AccountTypeAdmin
		if renamed || retyped {
			c.JSON(http.StatusForbidden, errorResponse("The admin account cannot be renamed or downgraded"))
			return
		}
	}

	account, err := h.client.UpdateAccount(ctx, target.ID, backend.UpdateAccountRequest{
		Username:    req.Username,
		Password:    req.Password,
		AccountType: req.AccountType,
		Status:      req.Status,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyAccounts, cache.KeyAvailableAccounts, cache.KeyStaffs)
	c.JSON(http.StatusOK, successResponse("Account updated successfully", account))
}

func (h *AccountsHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	target, err := h.client.GetAccount(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if target.Username == reservedAdminUsername {
		c.JSON(http.StatusForbidden, errorResponse("The admin account cannot be deleted"))
		return
	}

	if err := h.client.DeleteAccount(ctx, target.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyAccounts, cache.KeyAvailableAccounts, cache.KeyStaffs)
	c.JSON(http.StatusOK, successResponse("Account deleted successfully", nil))
}

func (h *AccountsHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	account, err := h.client.ResetPassword(ctx, c.Param("id"), req.NewPassword)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse("Password reset successfully", account))
}
