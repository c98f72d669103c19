package handler

import (
	"net/http"

	"jobportal/internal/middleware"
	"jobportal/internal/service"
	"jobportal/pkg/pagination"
	"jobportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type SubscriberHandler struct {
	subscriberService service.SubscriberService
}

func NewSubscriberHandler(subscriberService service.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

func (h *SubscriberHandler) RegisterRoutes(router *gin.RouterGroup) {
	subscribers := router.Group("/subscribers")
	{
		subscribers.POST("", h.Create)
		subscribers.POST("/skills", h.Skills)
		subscribers.GET("", h.FindAll)
		subscribers.GET("/:id", h.FindOne)
		subscribers.PATCH("", h.Update)
		subscribers.DELETE("/:id", h.Remove)
	}
}

// Policy declares the access level of each subscriber route for the
// Guard. Managing one's own subscription only needs a valid login.
func (h *SubscriberHandler) Policy(p *middleware.Policy) {
	p.Authenticated("POST", "/subscribers/skills")
	p.Authenticated("PATCH", "/subscribers")
}

// Create handles POST /subscribers
// @Summary      Create a subscriber
// @Tags         subscribers
// @Security     BearerAuth
// @Router       /subscribers [post]
func (h *SubscriberHandler) Create(c *gin.Context) {
	var req service.CreateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	res, err := h.subscriberService.Create(c.Request.Context(), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessMsg(http.StatusCreated, "Create a subscriber", res))
}

// Skills handles POST /subscribers/skills, returning the skill list the
// caller follows.
// @Summary      Get own subscribed skills
// @Tags         subscribers
// @Security     BearerAuth
// @Router       /subscribers/skills [post]
func (h *SubscriberHandler) Skills(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)
	skills, err := h.subscriberService.Skills(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Get subscriber's skills", skills))
}

// FindAll handles GET /subscribers with pagination
// @Summary      List subscribers
// @Tags         subscribers
// @Security     BearerAuth
// @Router       /subscribers [get]
func (h *SubscriberHandler) FindAll(c *gin.Context) {
	p := pagination.Parse(c)

	subscribers, total, err := h.subscriberService.FindAll(c.Request.Context(), p.Offset, p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch subscribers"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch subscribers with paginate", gin.H{
		"meta":   p.MetaFor(total),
		"result": subscribers,
	}))
}

// FindOne handles GET /subscribers/:id
// @Summary      Get subscriber by ID
// @Tags         subscribers
// @Security     BearerAuth
// @Router       /subscribers/{id} [get]
func (h *SubscriberHandler) FindOne(c *gin.Context) {
	sub, err := h.subscriberService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Get a subscriber", sub))
}

// Update handles PATCH /subscribers. The subscription is resolved by the
// caller's own email, so no id appears in the path.
// @Summary      Update own subscription
// @Tags         subscribers
// @Security     BearerAuth
// @Router       /subscribers [patch]
func (h *SubscriberHandler) Update(c *gin.Context) {
	var req service.UpdateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	sub, err := h.subscriberService.Update(c.Request.Context(), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Update a subscriber", sub))
}

// Remove handles DELETE /subscribers/:id (soft delete)
// @Summary      Delete subscriber
// @Tags         subscribers
// @Security     BearerAuth
// @Router       /subscribers/{id} [delete]
func (h *SubscriberHandler) Remove(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)
	if err := h.subscriberService.Remove(c.Request.Context(), c.Param("id"), actor); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Delete a subscriber", "ok"))
}
