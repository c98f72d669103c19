package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobportal/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "guard-test-secret"

func testRouter(policy *Policy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Guard([]byte(testSecret), policy))

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/jobs", ok)
	r.GET("/users", ok)
	r.DELETE("/users/:id", ok)
	r.POST("/resumes", ok)
	r.GET("/whoami", func(c *gin.Context) {
		id, found := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"found": found, "email": id.Email})
	})
	return r
}

func testPolicy() *Policy {
	p := NewPolicy()
	p.Public("GET", "/jobs")
	p.Authenticated("POST", "/resumes")
	p.Authenticated("GET", "/whoami")
	return p
}

func signAccess(t *testing.T, perms []token.PermissionClaim) string {
	t.Helper()
	issuer := token.NewIssuer(testSecret, "other", time.Minute, time.Hour)
	signed, err := issuer.IssueAccess(token.Identity{
		ID:    uuid.NewString(),
		Name:  "Guard Tester",
		Email: "guard@example.com",
		Role:  token.RoleClaim{ID: uuid.NewString(), Name: "USER"},
	}, perms)
	require.NoError(t, err)
	return signed
}

func do(r *gin.Engine, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardPublicRouteNeedsNoToken(t *testing.T) {
	r := testRouter(testPolicy())

	w := do(r, http.MethodGet, "/jobs", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardRejectsMissingToken(t *testing.T) {
	r := testRouter(testPolicy())

	w := do(r, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsMalformedHeader(t *testing.T) {
	r := testRouter(testPolicy())

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsForgedToken(t *testing.T) {
	r := testRouter(testPolicy())

	forger := token.NewIssuer("wrong-secret", "other", time.Minute, time.Hour)
	forged, err := forger.IssueAccess(token.Identity{ID: uuid.NewString()}, nil)
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/users", forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardAuthenticatedRouteAcceptsAnyValidToken(t *testing.T) {
	r := testRouter(testPolicy())

	w := do(r, http.MethodPost, "/resumes", signAccess(t, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardPermissionedRouteEnforcesMethodAndPath(t *testing.T) {
	r := testRouter(testPolicy())

	perms := []token.PermissionClaim{
		{ID: uuid.NewString(), Name: "List users", APIPath: "/users", Method: "GET", Module: "USERS"},
	}
	bearer := signAccess(t, perms)

	// Exact match passes.
	w := do(r, http.MethodGet, "/users", bearer)
	assert.Equal(t, http.StatusOK, w.Code)

	// Same path, different method is forbidden.
	w = do(r, http.MethodDelete, "/users/123", bearer)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGuardMatchesRoutePatternNotRawURL(t *testing.T) {
	r := testRouter(testPolicy())

	perms := []token.PermissionClaim{
		{ID: uuid.NewString(), Name: "Delete user", APIPath: "/users/:id", Method: "DELETE", Module: "USERS"},
	}
	bearer := signAccess(t, perms)

	w := do(r, http.MethodDelete, "/users/8f14e45f-ceea-467f-ab6b-d5e9b4a1c8e0", bearer)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentIdentityExposesClaims(t *testing.T) {
	r := testRouter(testPolicy())

	w := do(r, http.MethodGet, "/whoami", signAccess(t, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"found":true`)
	assert.Contains(t, w.Body.String(), "guard@example.com")
}
