package service

import (
	"context"
	"testing"
	"time"

	"jobportal/internal/model"
	"jobportal/internal/repository"
	"jobportal/internal/token"
	"jobportal/pkg/hash"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- in-memory fakes ---

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByRefreshToken(_ context.Context, refreshToken string) (*model.User, error) {
	for _, u := range f.users {
		if u.RefreshToken != nil && *u.RefreshToken == refreshToken {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int, _ repository.UserFilter) ([]model.User, int64, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateRefreshToken(_ context.Context, id uuid.UUID, refreshToken *string) error {
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.RefreshToken = refreshToken
	return nil
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, id uuid.UUID, _ model.Actor) error {
	delete(f.users, id)
	return nil
}

type fakeRoleRepo struct {
	roles map[uuid.UUID]*model.Role
}

func newFakeRoleRepo(roles ...*model.Role) *fakeRoleRepo {
	f := &fakeRoleRepo{roles: make(map[uuid.UUID]*model.Role)}
	for _, r := range roles {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		f.roles[r.ID] = r
	}
	return f
}

func (f *fakeRoleRepo) Create(_ context.Context, role *model.Role) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) Update(_ context.Context, role *model.Role) error {
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) SoftDelete(_ context.Context, id uuid.UUID, _ model.Actor) error {
	delete(f.roles, id)
	return nil
}

func (f *fakeRoleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Role, error) {
	if r, ok := f.roles[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoleRepo) FindByIDWithPermissions(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeRoleRepo) FindByName(_ context.Context, name string) (*model.Role, error) {
	for _, r := range f.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoleRepo) List(_ context.Context, _, _ int, _ repository.RoleFilter) ([]model.Role, int64, error) {
	out := make([]model.Role, 0, len(f.roles))
	for _, r := range f.roles {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRoleRepo) ReplacePermissions(_ context.Context, role *model.Role, perms []model.Permission) error {
	role.Permissions = perms
	f.roles[role.ID] = role
	return nil
}

// --- fixtures ---

func newTestAuthService(t *testing.T, roles *fakeRoleRepo) (AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	issuer := token.NewIssuer("test-access", "test-refresh", 5*time.Minute, time.Hour)
	return NewAuthService(users, roles, issuer), users
}

func registerTestUser(t *testing.T, svc AuthService, email string) {
	t.Helper()
	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
		Age:      25,
		Gender:   "MALE",
		Address:  "Hà Nội",
	})
	require.NoError(t, err)
}

// --- tests ---

func TestRegisterAssignsDefaultRole(t *testing.T) {
	userRole := &model.Role{Name: model.RoleUser}
	svc, users := newTestAuthService(t, newFakeRoleRepo(userRole))

	registerTestUser(t, svc, "new@example.com")

	u, err := users.GetByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, u.RoleID)
	assert.Equal(t, userRole.ID, *u.RoleID)
	assert.NotEqual(t, "password123", u.Password, "password must be stored hashed")
	assert.True(t, hash.Verify("password123", u.Password))
}

func TestRegisterToleratesMissingDefaultRole(t *testing.T) {
	svc, users := newTestAuthService(t, newFakeRoleRepo())

	registerTestUser(t, svc, "orphan@example.com")

	u, err := users.GetByEmail(context.Background(), "orphan@example.com")
	require.NoError(t, err)
	assert.Nil(t, u.RoleID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeRoleRepo())
	registerTestUser(t, svc, "taken@example.com")

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Second",
		Email:    "taken@example.com",
		Password: "different-pass",
		Age:      30,
		Gender:   "FEMALE",
		Address:  "Đà Nẵng",
	})

	var dup *DuplicateEmailError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "taken@example.com", dup.Email)
	assert.Equal(t, "email taken@example.com đã tồn tại !", err.Error())
}

func TestValidateUserDoesNotDistinguishFailures(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeRoleRepo())
	registerTestUser(t, svc, "known@example.com")

	// Unknown email and wrong password must look identical to the caller.
	id, err := svc.ValidateUser(context.Background(), "unknown@example.com", "password123")
	assert.NoError(t, err)
	assert.Nil(t, id)

	id, err = svc.ValidateUser(context.Background(), "known@example.com", "wrong-password")
	assert.NoError(t, err)
	assert.Nil(t, id)
}

func TestValidateUserResolvesPermissions(t *testing.T) {
	adminRole := &model.Role{
		Name: model.RoleAdmin,
		Permissions: []model.Permission{
			{ID: uuid.New(), Name: "List users", APIPath: "/users", Method: "GET", Module: "USERS"},
		},
	}
	roles := newFakeRoleRepo(adminRole)
	svc, users := newTestAuthService(t, roles)

	hashed, err := hash.Password("admin-pass")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &model.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: hashed,
		RoleID:   &adminRole.ID,
	}))

	id, err := svc.ValidateUser(context.Background(), "admin@example.com", "admin-pass")
	require.NoError(t, err)
	require.NotNil(t, id)
	require.Len(t, id.Permissions, 1)
	assert.Equal(t, "/users", id.Permissions[0].APIPath)
	assert.Equal(t, "GET", id.Permissions[0].Method)
}

func TestLoginSnapshotsPermissionsInClaims(t *testing.T) {
	adminRole := &model.Role{
		Name: model.RoleAdmin,
		Permissions: []model.Permission{
			{ID: uuid.New(), Name: "List users", APIPath: "/users", Method: "GET", Module: "USERS"},
		},
	}
	roles := newFakeRoleRepo(adminRole)
	svc, users := newTestAuthService(t, roles)

	hashed, err := hash.Password("admin-pass")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &model.User{
		Name:     "Admin",
		Email:    "snapshot@example.com",
		Password: hashed,
		RoleID:   &adminRole.ID,
	}))

	id, err := svc.ValidateUser(context.Background(), "snapshot@example.com", "admin-pass")
	require.NoError(t, err)
	require.NotNil(t, id)
	result, err := svc.Login(context.Background(), *id)
	require.NoError(t, err)

	// Editing the role after login must not touch tokens already issued.
	adminRole.Permissions = nil
	roles.roles[adminRole.ID] = adminRole

	claims, err := token.ParseAccess(result.AccessToken, []byte("test-access"))
	require.NoError(t, err)
	require.Len(t, claims.Permissions, 1)
	assert.Equal(t, "/users", claims.Permissions[0].APIPath)
}

func TestLoginStoresRefreshToken(t *testing.T) {
	svc, users := newTestAuthService(t, newFakeRoleRepo())
	registerTestUser(t, svc, "login@example.com")

	id, err := svc.ValidateUser(context.Background(), "login@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, id)

	result, err := svc.Login(context.Background(), *id)
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "login@example.com", result.User.Email)

	u, err := users.GetByEmail(context.Background(), "login@example.com")
	require.NoError(t, err)
	require.NotNil(t, u.RefreshToken)
	assert.Equal(t, result.RefreshToken, *u.RefreshToken)
}

func TestRefreshRotatesAndInvalidatesOldToken(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeRoleRepo())
	registerTestUser(t, svc, "rotate@example.com")

	id, err := svc.ValidateUser(context.Background(), "rotate@example.com", "password123")
	require.NoError(t, err)
	first, err := svc.Login(context.Background(), *id)
	require.NoError(t, err)

	// JWT timestamps have one-second resolution; tokens signed within the
	// same second would be byte-identical.
	time.Sleep(1100 * time.Millisecond)

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The consumed token still verifies cryptographically but no longer
	// matches the stored one, so reuse must fail.
	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// The latest token keeps working.
	_, err = svc.Refresh(context.Background(), second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsForgedToken(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeRoleRepo())
	registerTestUser(t, svc, "victim@example.com")

	forger := token.NewIssuer("test-access", "attacker-secret", 5*time.Minute, time.Hour)
	forged, err := forger.IssueRefresh(token.Identity{ID: uuid.NewString(), Email: "victim@example.com"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), forged)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	svc, users := newTestAuthService(t, newFakeRoleRepo())
	registerTestUser(t, svc, "bye@example.com")

	id, err := svc.ValidateUser(context.Background(), "bye@example.com", "password123")
	require.NoError(t, err)
	result, err := svc.Login(context.Background(), *id)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), *id))

	u, err := users.GetByEmail(context.Background(), "bye@example.com")
	require.NoError(t, err)
	require.NotNil(t, u.RefreshToken)
	assert.Empty(t, *u.RefreshToken)

	_, err = svc.Refresh(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
