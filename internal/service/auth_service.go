package service

import (
	"context"
	"fmt"

	"jobportal/internal/model"
	"jobportal/internal/repository"
	"jobportal/internal/token"
	"jobportal/pkg/hash"

	"github.com/google/uuid"
)

// ErrInvalidRefreshToken re-exports the token sentinel so handlers depend on
// the service package only.
var ErrInvalidRefreshToken = token.ErrInvalidRefreshToken

// DuplicateEmailError is returned when registration hits an email that
// already belongs to a live account.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %s đã tồn tại !", e.Email)
}

// --- DTOs ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Age      int    `json:"age" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthUser is the public identity projection returned by login and refresh.
// Password hash and raw refresh token never appear here.
type AuthUser struct {
	ID          uuid.UUID               `json:"_id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Role        token.RoleClaim         `json:"role"`
	Permissions []token.PermissionClaim `json:"permissions"`
}

// LoginResult carries the issued pair; the handler turns RefreshToken into
// an http-only cookie and returns only AccessToken + User in the body.
type LoginResult struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"-"`
	User         AuthUser `json:"user"`
}

// Identity is a pre-validated principal, produced by ValidateUser or by the
// guard middleware, and passed explicitly into orchestrator calls.
type Identity struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Role        token.RoleClaim
	Permissions []token.PermissionClaim
}

// AuthService orchestrates credential verification, token issuance,
// refresh-token rotation and logout.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*CreatedResponse, error)
	// ValidateUser returns (nil, nil) on any credential mismatch; unknown
	// email and wrong password are deliberately indistinguishable.
	ValidateUser(ctx context.Context, username, password string) (*Identity, error)
	Login(ctx context.Context, id Identity) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context, id Identity) error
}

type authService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	issuer *token.Issuer
}

// NewAuthService wires the orchestrator to its collaborators.
func NewAuthService(users repository.UserRepository, roles repository.RoleRepository, issuer *token.Issuer) AuthService {
	return &authService{users: users, roles: roles, issuer: issuer}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*CreatedResponse, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, &DuplicateEmailError{Email: req.Email}
	}

	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Age:      req.Age,
		Gender:   req.Gender,
		Address:  req.Address,
	}

	// Default role is looked up by name. A missing USER role leaves the
	// reference unset instead of failing the registration; the seeder
	// guarantees the role exists in any normally migrated database.
	if role, err := s.roles.FindByName(ctx, model.RoleUser); err == nil {
		user.RoleID = &role.ID
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: user.ID, CreatedAt: user.CreatedAt}, nil
}

func (s *authService) ValidateUser(ctx context.Context, username, password string) (*Identity, error) {
	user, err := s.users.GetByEmail(ctx, username)
	if err != nil {
		return nil, nil
	}

	if !hash.Verify(password, user.Password) {
		return nil, nil
	}

	id := identityOf(user)
	id.Permissions = s.resolvePermissions(ctx, user.RoleID)
	return &id, nil
}

func (s *authService) Login(ctx context.Context, id Identity) (*LoginResult, error) {
	return s.issuePair(ctx, id)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	if _, err := s.issuer.VerifyRefresh(refreshToken); err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// Only the most recently issued refresh token is stored, so an exact
	// match is what enforces single-active-token semantics: a token that
	// still verifies but was superseded matches no row.
	user, err := s.users.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	id := identityOf(user)
	id.Permissions = s.resolvePermissions(ctx, user.RoleID)

	result, err := s.issuePair(ctx, id)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	return result, nil
}

func (s *authService) Logout(ctx context.Context, id Identity) error {
	empty := ""
	return s.users.UpdateRefreshToken(ctx, id.ID, &empty)
}

// issuePair issues a fresh access/refresh pair and persists the refresh
// token, overwriting whatever was stored before. The overwrite is the
// rotation mechanism.
func (s *authService) issuePair(ctx context.Context, id Identity) (*LoginResult, error) {
	tokenID := token.Identity{ID: id.ID.String(), Name: id.Name, Email: id.Email, Role: id.Role}

	access, err := s.issuer.IssueAccess(tokenID, id.Permissions)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := s.issuer.IssueRefresh(tokenID)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if err := s.users.UpdateRefreshToken(ctx, id.ID, &refresh); err != nil {
		return nil, fmt.Errorf("persist refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User: AuthUser{
			ID:          id.ID,
			Name:        id.Name,
			Email:       id.Email,
			Role:        id.Role,
			Permissions: id.Permissions,
		},
	}, nil
}

// resolvePermissions looks up the role's permission set. A nil role id or a
// missing role yields an empty set, never an error: "no elevated access" is
// not a failure of the login flow.
func (s *authService) resolvePermissions(ctx context.Context, roleID *uuid.UUID) []token.PermissionClaim {
	if roleID == nil {
		return []token.PermissionClaim{}
	}

	role, err := s.roles.FindByIDWithPermissions(ctx, *roleID)
	if err != nil {
		return []token.PermissionClaim{}
	}

	perms := make([]token.PermissionClaim, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		perms = append(perms, token.PermissionClaim{
			ID:      p.ID.String(),
			Name:    p.Name,
			APIPath: p.APIPath,
			Method:  p.Method,
			Module:  p.Module,
		})
	}
	return perms
}

func identityOf(user *model.User) Identity {
	id := Identity{ID: user.ID, Name: user.Name, Email: user.Email}
	if user.Role != nil {
		id.Role = token.RoleClaim{ID: user.Role.ID.String(), Name: user.Role.Name}
	} else if user.RoleID != nil {
		id.Role = token.RoleClaim{ID: user.RoleID.String()}
	}
	return id
}
