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

type GroupsHandler struct {
	sessions
	client *backend.Client
	cache  *cache.Cache
}

func NewGroupsHandler(client *backend.Client, store *auth.Store, cookieName string, c *cache.Cache) *GroupsHandler {
	return &GroupsHandler{
		sessions: sessions{store: store, cookieName: cookieName},
		client:   client,
		cache:    c,
	}
}

type addMembersRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1"`
}

func (h *GroupsHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	key := cache.Key(cache.KeyGroups, "list")
	var groups []backend.EmployeeGroup
	if !h.cache.GetJSON(ctx, key, &groups) {
		fresh, err := h.client.ListGroups(ctx)
		if err != nil {
			h.fail(c, err)
			return
		}
		groups = fresh
		h.cache.SetJSON(ctx, key, groups, cache.TTLShort)
	}

	c.JSON(http.StatusOK, successResponse("Groups retrieved successfully", groups))
}

func (h *GroupsHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	id := c.Param("id")
	key := cache.Key(cache.KeyGroupDetail, id)
	var group backend.EmployeeGroup
	if !h.cache.GetJSON(ctx, key, &group) {
		fresh, err := h.client.GetGroup(ctx, id)
		if err != nil {
			h.fail(c, err)
			return
		}
		group = *fresh
		h.cache.SetJSON(ctx, key, group, cache.TTLShort)
	}

	c.JSON(http.StatusOK, successResponse("Group retrieved successfully", group))
}

func (h *GroupsHandler) Create(c *gin.Context) {
	var req backend.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Group name is required"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	group, err := h.client.CreateGroup(ctx, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyGroups)
	c.JSON(http.StatusCreated, successResponse("Group created successfully", group))
}

func (h *GroupsHandler) Update(c *gin.Context) {
	var req backend.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	group, err := h.client.UpdateGroup(ctx, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyGroups, cache.Key(cache.KeyGroupDetail, id))
	c.JSON(http.StatusOK, successResponse("Group updated successfully", group))
}

func (h *GroupsHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	if err := h.client.DeleteGroup(ctx, id); err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx,
		cache.KeyGroups,
		cache.Key(cache.KeyGroupDetail, id),
		cache.KeyUnassignedEmployees,
		cache.KeyStaffs,
	)
	c.JSON(http.StatusOK, successResponse("Group deleted successfully", nil))
}

// AddMembers moves employees into the group; their denormalized group fields
// change, so the global staff list is invalidated alongside the group caches.
func (h *GroupsHandler) AddMembers(c *gin.Context) {
	var req addMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	group, err := h.client.AddGroupMembers(ctx, id, req.EmployeeIDs)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx,
		cache.KeyGroups,
		cache.Key(cache.KeyGroupDetail, id),
		cache.KeyUnassignedEmployees,
		cache.KeyStaffs,
	)
	c.JSON(http.StatusOK, successResponse("Members added successfully", group))
}

func (h *GroupsHandler) RemoveMember(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	if err := h.client.RemoveGroupMember(ctx, id, c.Param("employeeId")); err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx,
		cache.KeyGroups,
		cache.Key(cache.KeyGroupDetail, id),
		cache.KeyUnassignedEmployees,
		cache.KeyStaffs,
	)
	c.JSON(http.StatusOK, successResponse("Member removed successfully", nil))
}

// SetLeader promotes a member to group leader. The leader must be a current
// member; the console checks before calling out, the backend stays
// authoritative.
func (h *GroupsHandler) SetLeader(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	employeeID := c.Param("employeeId")

	current, err := h.client.GetGroup(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	isMember := false
	for _, member := range current.Members {
		if member.ID == employeeID {
			isMember = true
			break
		}
	}
	if !isMember {
		c.JSON(http.StatusBadRequest, errorResponse("Leader must be a member of the group"))
		return
	}

	group, err := h.client.SetGroupLeader(ctx, id, employeeID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.cache.Invalidate(ctx, cache.KeyGroups, cache.Key(cache.KeyGroupDetail, id))
	c.JSON(http.StatusOK, successResponse("Leader updated successfully", group))
}

func (h *GroupsHandler) UnassignedEmployees(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	key := cache.Key(cache.KeyUnassignedEmployees, "list")
	var employees []backend.EmployeeBrief
	if !h.cache.GetJSON(ctx, key, &employees) {
		fresh, err := h.client.UnassignedEmployees(ctx)
		if err != nil {
			h.fail(c, err)
			return
		}
		employees = fresh
		h.cache.SetJSON(ctx, key, employees, cache.TTLShort)
	}

	c.JSON(http.StatusOK, successResponse("Unassigned employees retrieved successfully", employees))
}
