package handler

import (
	"errors"
	"net/http"

	"jobportal/internal/middleware"
	"jobportal/internal/service"
	"jobportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	// cookieMaxAge is the refresh-token lifetime in seconds, applied to
	// the refresh_token cookie.
	cookieMaxAge int
}

// NewAuthHandler sets up the routing dependencies for auth endpoints
func NewAuthHandler(authService service.AuthService, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{authService: authService, cookieMaxAge: cookieMaxAge}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.GET("/account", h.Account)
	}
}

// Policy declares the access level of each auth route for the Guard.
func (h *AuthHandler) Policy(p *middleware.Policy) {
	p.Public("POST", "/auth/register")
	p.Public("POST", "/auth/login")
	p.Public("GET", "/auth/refresh")
	p.Authenticated("POST", "/auth/logout")
	p.Authenticated("GET", "/auth/account")
}

// Register handles POST /auth/register
// @Summary      Register a new user
// @Description  Creates an account with the default USER role and a hashed password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RegisterRequest  true  "Register Payload"
// @Success      201      {object}  response.Response{data=service.CreatedResponse}
// @Failure      400      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		var dup *service.DuplicateEmailError
		if errors.As(err, &dup) {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, dup.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to register user"))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessMsg(http.StatusCreated, "Register a new user", res))
}

// Login handles POST /auth/login
// @Summary      Login user
// @Description  Verifies credentials, issues an access/refresh token pair and sets the refresh_token cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Credentials"
// @Success      200      {object}  response.Response{data=service.LoginResult}
// @Failure      401      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	identity, err := h.authService.ValidateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to verify credentials"))
		return
	}
	if identity == nil {
		// Unknown email and wrong password answer identically.
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "email hoặc mật khẩu không đúng"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), *identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to login"))
		return
	}

	middleware.SetRefreshCookie(c, result.RefreshToken, h.cookieMaxAge)
	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "User login", result))
}

// Refresh handles GET /auth/refresh
// @Summary      Refresh tokens
// @Description  Exchanges the refresh_token cookie for a new access/refresh pair, rotating the stored token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.LoginResult}
// @Failure      400  {object}  response.Response
// @Router       /auth/refresh [get]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := middleware.RefreshCookie(c)

	result, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, service.ErrInvalidRefreshToken.Error()))
		return
	}

	middleware.SetRefreshCookie(c, result.RefreshToken, h.cookieMaxAge)
	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Get user by refresh token", result))
}

// Logout handles POST /auth/logout
// @Summary      Logout user
// @Description  Clears the stored refresh token and the refresh_token cookie
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), identity); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to logout"))
		return
	}

	middleware.ClearRefreshCookie(c)
	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Logout User", "ok"))
}

// Account handles GET /auth/account
// @Summary      Get current account
// @Description  Returns the identity resolved from the access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/account [get]
func (h *AuthHandler) Account(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMsg(http.StatusOK, "Get user information", gin.H{
		"user": service.AuthUser{
			ID:          identity.ID,
			Name:        identity.Name,
			Email:       identity.Email,
			Role:        identity.Role,
			Permissions: identity.Permissions,
		},
	}))
}
