package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobportal/internal/model"
	"jobportal/internal/repository"

	"github.com/google/uuid"
)

// ErrProtectedRole is returned when a delete targets the ADMIN role.
var ErrProtectedRole = errors.New("không thể xóa role ADMIN")

// --- DTOs ---

type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	IsActive    *bool    `json:"isActive" binding:"required"`
	Permissions []string `json:"permissions" binding:"required,dive,uuid"`
}

type UpdateRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsActive    *bool    `json:"isActive"`
	Permissions []string `json:"permissions" binding:"omitempty,dive,uuid"`
}

type RoleResponse struct {
	ID          uuid.UUID            `json:"_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	IsActive    bool                 `json:"isActive"`
	Permissions []PermissionResponse `json:"permissions"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// --- Interface ---

type RoleService interface {
	Create(ctx context.Context, req CreateRoleRequest, actor Identity) (*CreatedResponse, error)
	FindAll(ctx context.Context, offset, limit int, filter repository.RoleFilter) ([]RoleResponse, int64, error)
	FindOne(ctx context.Context, id string) (*RoleResponse, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest, actor Identity) (*RoleResponse, error)
	Remove(ctx context.Context, id string, actor Identity) error
}

type roleService struct {
	repo  repository.RoleRepository
	perms repository.PermissionRepository
	tx    repository.TransactionManager
}

func NewRoleService(repo repository.RoleRepository, perms repository.PermissionRepository, tx repository.TransactionManager) RoleService {
	return &roleService{repo: repo, perms: perms, tx: tx}
}

// --- Implementation ---

func (s *roleService) Create(ctx context.Context, req CreateRoleRequest, actor Identity) (*CreatedResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("role %s đã tồn tại trong hệ thống !", req.Name)
	}

	perms, err := s.resolvePermissionIDs(ctx, req.Permissions)
	if err != nil {
		return nil, err
	}

	role := &model.Role{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
		Permissions: perms,
		CreatedBy:   model.StampOf(actor.ID, actor.Email),
	}

	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: role.ID, CreatedAt: role.CreatedAt}, nil
}

func (s *roleService) FindAll(ctx context.Context, offset, limit int, filter repository.RoleFilter) ([]RoleResponse, int64, error) {
	roles, total, err := s.repo.List(ctx, offset, limit, filter)
	if err != nil {
		return nil, 0, err
	}

	res := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		res = append(res, toRoleResponse(&roles[i]))
	}
	return res, total, nil
}

func (s *roleService) FindOne(ctx context.Context, id string) (*RoleResponse, error) {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("role not found")
	}
	role, err := s.repo.FindByIDWithPermissions(ctx, roleID)
	if err != nil {
		return nil, errors.New("role not found")
	}
	res := toRoleResponse(role)
	return &res, nil
}

func (s *roleService) Update(ctx context.Context, id string, req UpdateRoleRequest, actor Identity) (*RoleResponse, error) {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("role not found")
	}
	role, err := s.repo.FindByID(ctx, roleID)
	if err != nil {
		return nil, errors.New("role not found")
	}

	if req.Name != "" {
		role.Name = req.Name
	}
	if req.Description != "" {
		role.Description = req.Description
	}
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}
	role.UpdatedBy = model.StampOf(actor.ID, actor.Email)

	// The field update and the permission swap must land together.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, role); err != nil {
			return err
		}
		if req.Permissions != nil {
			perms, err := s.resolvePermissionIDs(txCtx, req.Permissions)
			if err != nil {
				return err
			}
			if err := s.repo.ReplacePermissions(txCtx, role, perms); err != nil {
				return fmt.Errorf("failed to update permissions: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.FindOne(ctx, id)
}

func (s *roleService) Remove(ctx context.Context, id string, actor Identity) error {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("role not found")
	}
	role, err := s.repo.FindByID(ctx, roleID)
	if err != nil {
		return errors.New("role not found")
	}

	if role.Name == model.RoleAdmin {
		return ErrProtectedRole
	}

	return s.repo.SoftDelete(ctx, roleID, model.StampOf(actor.ID, actor.Email))
}

func (s *roleService) resolvePermissionIDs(ctx context.Context, ids []string) ([]model.Permission, error) {
	if len(ids) == 0 {
		return []model.Permission{}, nil
	}

	permIDs := make([]uuid.UUID, 0, len(ids))
	for _, pid := range ids {
		parsed, err := uuid.Parse(pid)
		if err != nil {
			return nil, fmt.Errorf("invalid permission id '%s': %w", pid, err)
		}
		permIDs = append(permIDs, parsed)
	}

	perms, err := s.perms.FindByIDs(ctx, permIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch permissions: %w", err)
	}
	return perms, nil
}

func toRoleResponse(r *model.Role) RoleResponse {
	perms := make([]PermissionResponse, 0, len(r.Permissions))
	for i := range r.Permissions {
		perms = append(perms, toPermissionResponse(&r.Permissions[i]))
	}

	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
		Permissions: perms,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
