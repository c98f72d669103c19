package handler

import (
	"net/http"

	"jobportal/internal/middleware"
	"jobportal/internal/repository"
	"jobportal/internal/service"
	"jobportal/pkg/pagination"
	"jobportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type PermissionHandler struct {
	permissionService service.PermissionService
}

func NewPermissionHandler(permissionService service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

func (h *PermissionHandler) RegisterRoutes(router *gin.RouterGroup) {
	permissions := router.Group("/permissions")
	{
		permissions.POST("", h.Create)
		permissions.GET("", h.FindAll)
		permissions.GET("/:id", h.FindOne)
		permissions.PATCH("/:id", h.Update)
		permissions.DELETE("/:id", h.Remove)
	}
}

// Policy declares the access level of each permission route for the Guard.
// The permission catalogue is permission-gated throughout.
func (h *PermissionHandler) Policy(p *middleware.Policy) {}

// Create handles POST /permissions
// @Summary      Create a permission
// @Tags         permissions
// @Security     BearerAuth
// @Router       /permissions [post]
func (h *PermissionHandler) Create(c *gin.Context) {
	var req service.CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	res, err := h.permissionService.Create(c.Request.Context(), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessMsg(http.StatusCreated, "Create a new permission", res))
}

// FindAll handles GET /permissions with pagination and filters
// @Summary      List permissions
// @Tags         permissions
// @Security     BearerAuth
// @Router       /permissions [get]
func (h *PermissionHandler) FindAll(c *gin.Context) {
	p := pagination.Parse(c)
	filter := repository.PermissionFilter{
		Module: c.Query("module"),
		Method: c.Query("method"),
	}

	permissions, total, err := h.permissionService.FindAll(c.Request.Context(), p.Offset, p.Limit, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch permissions"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch permissions with paginate", gin.H{
		"meta":   p.MetaFor(total),
		"result": permissions,
	}))
}

// FindOne handles GET /permissions/:id
// @Summary      Get permission by ID
// @Tags         permissions
// @Security     BearerAuth
// @Router       /permissions/{id} [get]
func (h *PermissionHandler) FindOne(c *gin.Context) {
	perm, err := h.permissionService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch a permission by id", perm))
}

// Update handles PATCH /permissions/:id
// @Summary      Update permission
// @Tags         permissions
// @Security     BearerAuth
// @Router       /permissions/{id} [patch]
func (h *PermissionHandler) Update(c *gin.Context) {
	var req service.UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	perm, err := h.permissionService.Update(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Update a permission", perm))
}

// Remove handles DELETE /permissions/:id (soft delete)
// @Summary      Delete permission
// @Tags         permissions
// @Security     BearerAuth
// @Router       /permissions/{id} [delete]
func (h *PermissionHandler) Remove(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)
	if err := h.permissionService.Remove(c.Request.Context(), c.Param("id"), actor); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Delete a permission", "ok"))
}
