package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() Identity {
	return Identity{
		ID:    "8f14e45f-ceea-467f-ab6b-d5e9b4a1c8e0",
		Name:  "Nguyễn Văn A",
		Email: "a@example.com",
		Role:  RoleClaim{ID: "c9b1d3a0-0000-4000-8000-000000000001", Name: "USER"},
	}
}

func TestRefreshRoundTrip(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)

	signed, err := issuer.IssueRefresh(testIdentity())
	require.NoError(t, err)

	claims, err := issuer.VerifyRefresh(signed)
	require.NoError(t, err)

	assert.Equal(t, "8f14e45f-ceea-467f-ab6b-d5e9b4a1c8e0", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "token refresh", claims.Subject)
	assert.Equal(t, "from server", claims.Issuer)
	assert.Empty(t, claims.Permissions)
}

func TestVerifyRefreshRejectsForgedSignature(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)
	other := NewIssuer("access-secret", "attacker-secret", time.Minute, time.Hour)

	forged, err := other.IssueRefresh(testIdentity())
	require.NoError(t, err)

	_, err = issuer.VerifyRefresh(forged)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestVerifyRefreshRejectsAccessToken(t *testing.T) {
	// Access tokens are signed with a different secret, so presenting one
	// on the refresh path must fail even though it is otherwise valid.
	issuer := NewIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)

	access, err := issuer.IssueAccess(testIdentity(), nil)
	require.NoError(t, err)

	_, err = issuer.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestVerifyRefreshRejectsExpired(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", time.Minute, -time.Minute)

	expired, err := issuer.IssueRefresh(testIdentity())
	require.NoError(t, err)

	_, err = issuer.VerifyRefresh(expired)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestVerifyRefreshRejectsGarbage(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)

	for _, in := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := issuer.VerifyRefresh(in)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken, "input %q", in)
	}
}

func TestAccessCarriesPermissions(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)

	perms := []PermissionClaim{
		{ID: "p1", Name: "List users", APIPath: "/users", Method: "GET", Module: "USERS"},
		{ID: "p2", Name: "Delete job", APIPath: "/jobs/:id", Method: "DELETE", Module: "JOBS"},
	}

	signed, err := issuer.IssueAccess(testIdentity(), perms)
	require.NoError(t, err)

	claims, err := ParseAccess(signed, []byte("access-secret"))
	require.NoError(t, err)

	assert.Equal(t, "token login", claims.Subject)
	assert.Equal(t, perms, claims.Permissions)
	assert.Equal(t, "USER", claims.Role.Name)
}

func TestParseAccessRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)

	signed, err := issuer.IssueAccess(testIdentity(), nil)
	require.NoError(t, err)

	_, err = ParseAccess(signed, []byte("some-other-secret"))
	assert.Error(t, err)
}
