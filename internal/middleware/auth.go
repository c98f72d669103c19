package middleware

import (
	"net/http"
	"os"
	"strings"

	"jobportal/internal/service"
	"jobportal/internal/token"
	"jobportal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "identity"

// Access is the authorization level a route requires.
type Access int

const (
	// Permissioned routes require a permission entry matching the route's
	// method and path in the caller's access token. This is the default
	// for every route not listed in the policy.
	Permissioned Access = iota
	// Authenticated routes require a valid access token but no specific
	// permission.
	Authenticated
	// Public routes skip the guard entirely.
	Public
)

// Policy is the explicit route → access table consulted by the Guard.
// It replaces per-route annotations with one place to read the whole
// authorization surface.
type Policy struct {
	rules map[string]Access
}

func NewPolicy() *Policy {
	return &Policy{rules: make(map[string]Access)}
}

// Public marks method+path (gin route pattern) as requiring no token.
func (p *Policy) Public(method, path string) *Policy {
	p.rules[method+" "+path] = Public
	return p
}

// Authenticated marks method+path as requiring only a valid token.
func (p *Policy) Authenticated(method, path string) *Policy {
	p.rules[method+" "+path] = Authenticated
	return p
}

func (p *Policy) accessFor(method, path string) Access {
	if a, ok := p.rules[method+" "+path]; ok {
		return a
	}
	return Permissioned
}

// Guard validates the bearer access token and enforces the route policy.
// On success the resolved identity is placed into the gin context for
// handlers to read via CurrentIdentity.
func Guard(secret []byte, policy *Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		method := c.Request.Method

		access := policy.accessFor(method, route)
		if access == Public {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}

		claims, err := token.ParseAccess(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
			return
		}

		id, err := identityFromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token claims"))
			return
		}
		c.Set(identityKey, id)

		if access == Permissioned && !holdsPermission(id, method, route) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: missing permission for "+method+" "+route))
			return
		}

		c.Next()
	}
}

// CurrentIdentity returns the identity the Guard resolved for this request.
func CurrentIdentity(c *gin.Context) (service.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return service.Identity{}, false
	}
	id, ok := v.(service.Identity)
	return id, ok
}

func identityFromClaims(claims *token.Claims) (service.Identity, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return service.Identity{}, err
	}
	return service.Identity{
		ID:          userID,
		Name:        claims.Name,
		Email:       claims.Email,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}, nil
}

func holdsPermission(id service.Identity, method, route string) bool {
	for _, p := range id.Permissions {
		if p.Method == method && p.APIPath == route {
			return true
		}
	}
	return false
}

// --- Refresh-token cookie helpers ---

const refreshCookieName = "refresh_token"

func cookieFlags() (sameSite http.SameSite, secure bool) {
	// Production (cross-origin): SameSiteNoneMode + Secure=true
	// Development (same-site):   SameSiteLaxMode  + Secure=false
	if os.Getenv("GIN_MODE") == "release" {
		return http.SameSiteNoneMode, true
	}
	return http.SameSiteLaxMode, false
}

// SetRefreshCookie stores the refresh token as an HttpOnly cookie with the
// given max-age in seconds.
func SetRefreshCookie(c *gin.Context, refreshToken string, maxAge int) {
	sameSite, secure := cookieFlags()
	c.SetSameSite(sameSite)
	c.SetCookie(refreshCookieName, refreshToken, maxAge, "/", "", secure, true)
}

// ClearRefreshCookie removes the refresh_token cookie.
func ClearRefreshCookie(c *gin.Context) {
	sameSite, secure := cookieFlags()
	c.SetSameSite(sameSite)
	c.SetCookie(refreshCookieName, "", -1, "/", "", secure, true)
}

// RefreshCookie reads the refresh token from the request, if present.
func RefreshCookie(c *gin.Context) string {
	v, err := c.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	return v
}
