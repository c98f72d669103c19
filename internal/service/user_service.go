package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobportal/internal/model"
	"jobportal/internal/repository"
	"jobportal/internal/token"
	"jobportal/pkg/hash"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Age      int    `json:"age" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Address  string `json:"address" binding:"required"`
	RoleID   string `json:"role" binding:"required,uuid"`
}

type UpdateUserRequest struct {
	ID      string `json:"_id" binding:"required,uuid"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
	RoleID  string `json:"role" binding:"omitempty,uuid"`
}

// UserResponse is the User projection with sensitive fields stripped
type UserResponse struct {
	ID        uuid.UUID        `json:"_id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Age       int              `json:"age"`
	Gender    string           `json:"gender"`
	Address   string           `json:"address"`
	Role      *token.RoleClaim `json:"role,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// UserService defines the business logic for user management (the admin
// CRUD surface; registration/login live in AuthService)
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest, actor Identity) (*CreatedResponse, error)
	FindAll(ctx context.Context, offset, limit int, filter repository.UserFilter) ([]UserResponse, int64, error)
	FindOne(ctx context.Context, id string) (*UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest, actor Identity) (*UserResponse, error)
	Remove(ctx context.Context, id string, actor Identity) error
}

type userService struct {
	repo  repository.UserRepository
	roles repository.RoleRepository
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository, roles repository.RoleRepository) UserService {
	return &userService{repo: repo, roles: roles}
}

func mapToUserResponse(user *model.User) *UserResponse {
	res := &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Age:       user.Age,
		Gender:    user.Gender,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Role != nil {
		res.Role = &token.RoleClaim{ID: user.Role.ID.String(), Name: user.Role.Name}
	}
	return res
}

func (s *userService) Create(ctx context.Context, req CreateUserRequest, actor Identity) (*CreatedResponse, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, &DuplicateEmailError{Email: req.Email}
	}

	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, fmt.Errorf("invalid role id: %w", err)
	}
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return nil, errors.New("role not found")
	}

	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Age:       req.Age,
		Gender:    req.Gender,
		Address:   req.Address,
		RoleID:    &roleID,
		CreatedBy: model.StampOf(actor.ID, actor.Email),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: user.ID, CreatedAt: user.CreatedAt}, nil
}

func (s *userService) FindAll(ctx context.Context, offset, limit int, filter repository.UserFilter) ([]UserResponse, int64, error) {
	users, total, err := s.repo.List(ctx, offset, limit, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *mapToUserResponse(&users[i]))
	}
	return responses, total, nil
}

func (s *userService) FindOne(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("user not found")
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	return mapToUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, req UpdateUserRequest, actor Identity) (*UserResponse, error) {
	userID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Age != 0 {
		user.Age = req.Age
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.RoleID != "" {
		roleID, err := uuid.Parse(req.RoleID)
		if err != nil {
			return nil, fmt.Errorf("invalid role id: %w", err)
		}
		if _, err := s.roles.FindByID(ctx, roleID); err != nil {
			return nil, errors.New("role not found")
		}
		user.RoleID = &roleID
		user.Role = nil
	}

	user.UpdatedBy = model.StampOf(actor.ID, actor.Email)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.FindOne(ctx, req.ID)
}

func (s *userService) Remove(ctx context.Context, id string, actor Identity) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("user not found")
	}
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return errors.New("user not found")
	}
	return s.repo.SoftDelete(ctx, userID, model.StampOf(actor.ID, actor.Email))
}
