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

type ResumeHandler struct {
	resumeService service.ResumeService
}

func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

func (h *ResumeHandler) RegisterRoutes(router *gin.RouterGroup) {
	resumes := router.Group("/resumes")
	{
		resumes.POST("", h.Create)
		resumes.POST("/by-user", h.FindByUser)
		resumes.GET("", h.FindAll)
		resumes.GET("/:id", h.FindOne)
		resumes.PATCH("/:id", h.UpdateStatus)
		resumes.DELETE("/:id", h.Remove)
	}
}

// Policy declares the access level of each resume route for the Guard.
// Any signed-in user may submit a resume or list their own; the rest is
// permission-gated HR territory.
func (h *ResumeHandler) Policy(p *middleware.Policy) {
	p.Authenticated("POST", "/resumes")
	p.Authenticated("POST", "/resumes/by-user")
}

// Create handles POST /resumes. The applicant is taken from the access
// token, not the body.
// @Summary      Submit a resume
// @Tags         resumes
// @Security     BearerAuth
// @Router       /resumes [post]
func (h *ResumeHandler) Create(c *gin.Context) {
	var req service.CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	res, err := h.resumeService.Create(c.Request.Context(), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessMsg(http.StatusCreated, "Create a new resume", res))
}

// FindByUser handles POST /resumes/by-user, returning the caller's own
// submissions.
// @Summary      List own resumes
// @Tags         resumes
// @Security     BearerAuth
// @Router       /resumes/by-user [post]
func (h *ResumeHandler) FindByUser(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)
	resumes, err := h.resumeService.FindByUser(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch resumes"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Get Resumes by User", resumes))
}

// FindAll handles GET /resumes with pagination and filters
// @Summary      List resumes
// @Tags         resumes
// @Security     BearerAuth
// @Router       /resumes [get]
func (h *ResumeHandler) FindAll(c *gin.Context) {
	p := pagination.Parse(c)
	filter := repository.ResumeFilter{Status: c.Query("status")}
	if raw := c.Query("company"); raw != "" {
		if companyID, err := uuid.Parse(raw); err == nil {
			filter.CompanyID = &companyID
		}
	}
	if raw := c.Query("job"); raw != "" {
		if jobID, err := uuid.Parse(raw); err == nil {
			filter.JobID = &jobID
		}
	}

	resumes, total, err := h.resumeService.FindAll(c.Request.Context(), p.Offset, p.Limit, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch resumes"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch all resumes with paginate", gin.H{
		"meta":   p.MetaFor(total),
		"result": resumes,
	}))
}

// FindOne handles GET /resumes/:id
// @Summary      Get resume by ID
// @Tags         resumes
// @Security     BearerAuth
// @Router       /resumes/{id} [get]
func (h *ResumeHandler) FindOne(c *gin.Context) {
	resume, err := h.resumeService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch a resume by id", resume))
}

// UpdateStatus handles PATCH /resumes/:id, moving a submission through
// the review pipeline and recording who moved it.
// @Summary      Update resume status
// @Tags         resumes
// @Security     BearerAuth
// @Router       /resumes/{id} [patch]
func (h *ResumeHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	resume, err := h.resumeService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Update a status resume", resume))
}

// Remove handles DELETE /resumes/:id (soft delete)
// @Summary      Delete resume
// @Tags         resumes
// @Security     BearerAuth
// @Router       /resumes/{id} [delete]
func (h *ResumeHandler) Remove(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)
	if err := h.resumeService.Remove(c.Request.Context(), c.Param("id"), actor); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Delete a resume", "ok"))
}
