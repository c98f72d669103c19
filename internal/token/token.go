// Package token issues and verifies the portal's access and refresh JWTs.
// The two token kinds are signed with independent secrets and lifetimes;
// only refresh tokens are ever verified here — access tokens are checked
// by the HTTP guard middleware.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	subjectLogin   = "token login"
	subjectRefresh = "token refresh"
	tokenIssuer    = "from server"
)

// ErrInvalidRefreshToken is the single error surfaced for any refresh-token
// failure: forged signature, expiry, malformed input. Callers must not be
// able to tell the causes apart.
var ErrInvalidRefreshToken = errors.New("refresh token không hợp lệ, vui lòng đăng nhập lại")

// RoleClaim is the role reference embedded in token claims.
type RoleClaim struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// PermissionClaim is one (apiPath, method) capability carried by an access token.
type PermissionClaim struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	APIPath string `json:"apiPath"`
	Method  string `json:"method"`
	Module  string `json:"module"`
}

// Claims is the claim set shared by access and refresh tokens. Permissions
// are only populated on access tokens.
type Claims struct {
	UserID      string            `json:"_id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        RoleClaim         `json:"role"`
	Permissions []PermissionClaim `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Identity is what the auth service hands over for signing.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  RoleClaim
}

// Issuer signs tokens with externally configured secrets and expiries.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewIssuer builds an Issuer from the configured secrets and lifetimes.
func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// RefreshTTL exposes the refresh lifetime, used for the cookie max-age.
func (i *Issuer) RefreshTTL() time.Duration { return i.refreshTTL }

// IssueAccess signs a short-lived access token carrying the identity and
// its resolved permission set.
func (i *Issuer) IssueAccess(id Identity, perms []PermissionClaim) (string, error) {
	return i.sign(id, perms, subjectLogin, i.accessSecret, i.accessTTL)
}

// IssueRefresh signs a long-lived refresh token with the same identity
// claims but no permissions.
func (i *Issuer) IssueRefresh(id Identity) (string, error) {
	return i.sign(id, nil, subjectRefresh, i.refreshSecret, i.refreshTTL)
}

func (i *Issuer) sign(id Identity, perms []PermissionClaim, subject string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      id.ID,
		Name:        id.Name,
		Email:       id.Email,
		Role:        id.Role,
		Permissions: perms,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyRefresh validates signature and expiry against the refresh secret.
// Every failure mode collapses into ErrInvalidRefreshToken.
func (i *Issuer) VerifyRefresh(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.refreshSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidRefreshToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidRefreshToken
	}
	return claims, nil
}

// ParseAccess validates an access token and returns its claims. Used by the
// guard middleware and the WebSocket handshake.
func ParseAccess(tokenString string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
