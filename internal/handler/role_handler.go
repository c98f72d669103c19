package handler

import (
	"errors"
	"net/http"

	"jobportal/internal/middleware"
	"jobportal/internal/repository"
	"jobportal/internal/service"
	"jobportal/pkg/pagination"
	"jobportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/roles")
	{
		roles.POST("", h.Create)
		roles.GET("", h.FindAll)
		roles.GET("/:id", h.FindOne)
		roles.PATCH("/:id", h.Update)
		roles.DELETE("/:id", h.Remove)
	}
}

// Policy declares the access level of each role route for the Guard.
// Role management is permission-gated throughout, so no exceptions.
func (h *RoleHandler) Policy(p *middleware.Policy) {}

// Create handles POST /roles
// @Summary      Create a role
// @Tags         roles
// @Security     BearerAuth
// @Router       /roles [post]
func (h *RoleHandler) Create(c *gin.Context) {
	var req service.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	res, err := h.roleService.Create(c.Request.Context(), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessMsg(http.StatusCreated, "Create a new Role", res))
}

// FindAll handles GET /roles with pagination
// @Summary      List roles
// @Tags         roles
// @Security     BearerAuth
// @Router       /roles [get]
func (h *RoleHandler) FindAll(c *gin.Context) {
	p := pagination.Parse(c)
	filter := repository.RoleFilter{Name: c.Query("name")}

	roles, total, err := h.roleService.FindAll(c.Request.Context(), p.Offset, p.Limit, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch roles"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch roles with paginate", gin.H{
		"meta":   p.MetaFor(total),
		"result": roles,
	}))
}

// FindOne handles GET /roles/:id
// @Summary      Get role by ID
// @Tags         roles
// @Security     BearerAuth
// @Router       /roles/{id} [get]
func (h *RoleHandler) FindOne(c *gin.Context) {
	role, err := h.roleService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch role by id", role))
}

// Update handles PATCH /roles/:id
// @Summary      Update role
// @Tags         roles
// @Security     BearerAuth
// @Router       /roles/{id} [patch]
func (h *RoleHandler) Update(c *gin.Context) {
	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	role, err := h.roleService.Update(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Update a Role", role))
}

// Remove handles DELETE /roles/:id (soft delete). The ADMIN role is
// protected and cannot be removed.
// @Summary      Delete role
// @Tags         roles
// @Security     BearerAuth
// @Router       /roles/{id} [delete]
func (h *RoleHandler) Remove(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)
	if err := h.roleService.Remove(c.Request.Context(), c.Param("id"), actor); err != nil {
		status := http.StatusNotFound
		if errors.Is(err, service.ErrProtectedRole) {
			status = http.StatusBadRequest
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Delete a Role", "ok"))
}
