package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"xcauditing-console/internal/auth"
	"xcauditing-console/internal/backend"
	"xcauditing-console/internal/cache"
)

type StaffsHandler struct {
	sessions
	client *backend.Client
	cache  *cache.Cache
}

func NewStaffsHandler(client *backend.Client, store *auth.Store, cookieName string, c *cache.Cache) *StaffsHandler {
	return &StaffsHandler{
		sessions: sessions{store: store, cookieName: cookieName},
		client:   client,
		cache:    c,
	}
}

type listStaffsQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=20"`
}

func (h *StaffsHandler) List(c *gin.Context) {
	var query listStaffsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	key := cache.Key(cache.KeyStaffs, "list", strconv.Itoa(query.Page), strconv.Itoa(query.PageSize))
	var page backend.Page[backend.Employee]
	if !h.cache.GetJSON(ctx, key, &page) {
		fresh, err := h.client.ListEmployees(ctx, backend.ListEmployeesQuery{
			Page:     query.Page,
			PageSize: query.PageSize,
		})
		if err != nil {
			h.fail(c, err)
			return
		}
		page = *fresh
		h.cache.SetJSON(ctx, key, page, cache.TTLShort)
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Staffs retrieved successfully", page.Rows(), gin.H{
		"total_elements": page.TotalElements,
	}))
}

func (h *StaffsHandler) Create(c *gin.Context) {
	var req backend.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}
	if req.Name == "" || req.QwID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Name and qw_id are required"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	employee, err := h.client.CreateEmployee(ctx, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyStaffs, cache.KeyUnassignedEmployees)
	c.JSON(http.StatusCreated, successResponse("Staff created successfully", employee))
}

func (h *StaffsHandler) Update(c *gin.Context) {
	var req backend.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	employee, err := h.client.UpdateEmployee(ctx, c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyStaffs, cache.KeyUnassignedEmployees, cache.KeyGroups, cache.KeyGroupDetail)
	c.JSON(http.StatusOK, successResponse("Staff updated successfully", employee))
}

func (h *StaffsHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.client.DeleteEmployee(ctx, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyStaffs, cache.KeyUnassignedEmployees, cache.KeyGroups, cache.KeyGroupDetail)
	c.JSON(http.StatusOK, successResponse("Staff deleted successfully", nil))
}

// AssignAccount links a login account to an employee. The staff list and the
// available-accounts pool both change as a side effect.
func (h *StaffsHandler) AssignAccount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	employee, err := h.client.AssignAccount(ctx, c.Param("id"), c.Param("accountUserId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyStaffs, cache.KeyAvailableAccounts)
	c.JSON(http.StatusOK, successResponse("Account assigned successfully", employee))
}

func (h *StaffsHandler) RemoveAccount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	employee, err := h.client.RemoveAccount(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyStaffs, cache.KeyAvailableAccounts)
	c.JSON(http.StatusOK, successResponse("Account unlinked successfully", employee))
}

func (h *StaffsHandler) AvailableAccounts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	key := cache.Key(cache.KeyAvailableAccounts, "list")
	var accounts []backend.AccountBrief
	if !h.cache.GetJSON(ctx, key, &accounts) {
		fresh, err := h.client.AvailableAccounts(ctx)
		if err != nil {
			h.fail(c, err)
			return
		}
		accounts = fresh
		h.cache.SetJSON(ctx, key, accounts, cache.TTLShort)
	}

	c.JSON(http.StatusOK, successResponse("Available accounts retrieved successfully", accounts))
}
