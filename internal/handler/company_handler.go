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

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) RegisterRoutes(router *gin.RouterGroup) {
	companies := router.Group("/companies")
	{
		companies.POST("", h.Create)
		companies.GET("", h.FindAll)
		companies.GET("/:id", h.FindOne)
		companies.PATCH("/:id", h.Update)
		companies.DELETE("/:id", h.Remove)
	}
}

// Policy declares the access level of each company route for the Guard.
// Browsing companies is open to anyone.
func (h *CompanyHandler) Policy(p *middleware.Policy) {
	p.Public("GET", "/companies")
	p.Public("GET", "/companies/:id")
}

// Create handles POST /companies
// @Summary      Create a company
// @Tags         companies
// @Security     BearerAuth
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	res, err := h.companyService.Create(c.Request.Context(), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessMsg(http.StatusCreated, "Create a new Company", res))
}

// FindAll handles GET /companies with pagination and filters
// @Summary      List companies
// @Tags         companies
// @Router       /companies [get]
func (h *CompanyHandler) FindAll(c *gin.Context) {
	p := pagination.Parse(c)
	filter := repository.CompanyFilter{
		Name:    c.Query("name"),
		Address: c.Query("address"),
	}

	companies, total, err := h.companyService.FindAll(c.Request.Context(), p.Offset, p.Limit, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch companies"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Fetch company with paginate", gin.H{
		"meta":   p.MetaFor(total),
		"result": companies,
	}))
}

// FindOne handles GET /companies/:id
// @Summary      Get company by ID
// @Tags         companies
// @Router       /companies/{id} [get]
func (h *CompanyHandler) FindOne(c *gin.Context) {
	company, err := h.companyService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, company))
}

// Update handles PATCH /companies/:id
// @Summary      Update company
// @Tags         companies
// @Security     BearerAuth
// @Router       /companies/{id} [patch]
func (h *CompanyHandler) Update(c *gin.Context) {
	var req service.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	actor, _ := middleware.CurrentIdentity(c)
	company, err := h.companyService.Update(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Update a Company", company))
}

// Remove handles DELETE /companies/:id (soft delete)
// @Summary      Delete company
// @Tags         companies
// @Security     BearerAuth
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Remove(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)
	if err := h.companyService.Remove(c.Request.Context(), c.Param("id"), actor); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Delete a Company", "ok"))
}
