package handler

import (
	"net/http"

	"jobportal/internal/middleware"
	"jobportal/internal/repository"
	"jobportal/internal/service"
	"jobportal/pkg/pagination"
	"jobportal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobService service.JobService
}

func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(router *gin.RouterGroup) {
	jobs := router.Group("/jobs")
	{
		jobs.POST("", h.Create)
		jobs.GET("", h.FindAll)
		jobs.GET("/:id", h.FindOne)
		jobs.PATCH("/:id", h.Update)
		jobs.DELETE("/:id", h.Remove)
	}
}

// Policy declares the access level of each job route for the Guard.
// Job listings are open to anyone.
func (h *JobHandler) Policy(p *middleware.Policy) {
	p.Public("GET", "/jobs")
	p.Public("GET", "/jobs/:id")
}

// Create handles POST /jobs
// @Summary      Create a job
// @Tags         jobs
// @Security     BearerAuth
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req service.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	res, err := h.jobService.Create(c.Request.Context(), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessMsg(http.StatusCreated, "Create a new job", res))
}

// FindAll handles GET /jobs with pagination and filters
// @Summary      List jobs
// @Tags         jobs
// @Router       /jobs [get]
func (h *JobHandler) FindAll(c *gin.Context) {
	p := pagination.Parse(c)
	filter := repository.JobFilter{
		Name:     c.Query("name"),
		Location: c.Query("location"),
		Level:    c.Query("level"),
		Skills:   c.QueryArray("skills"),
	}
	if raw := c.Query("company"); raw != "" {
		if companyID, err := uuid.Parse(raw); err == nil {
			filter.CompanyID = &companyID
		}
	}
	if c.Query("active") == "true" {
		filter.OnlyActive = true
	}

	jobs, total, err := h.jobService.FindAll(c.Request.Context(), p.Offset, p.Limit, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch jobs"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch List Jobs with paginate", gin.H{
		"meta":   p.MetaFor(total),
		"result": jobs,
	}))
}

// FindOne handles GET /jobs/:id
// @Summary      Get job by ID
// @Tags         jobs
// @Router       /jobs/{id} [get]
func (h *JobHandler) FindOne(c *gin.Context) {
	job, err := h.jobService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch Job by Id", job))
}

// Update handles PATCH /jobs/:id
// @Summary      Update job
// @Tags         jobs
// @Security     BearerAuth
// @Router       /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	var req service.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	job, err := h.jobService.Update(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Update a job", job))
}

// Remove handles DELETE /jobs/:id (soft delete)
// @Summary      Delete job
// @Tags         jobs
// @Security     BearerAuth
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Remove(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)
	if err := h.jobService.Remove(c.Request.Context(), c.Param("id"), actor); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Delete a job", "ok"))
}
