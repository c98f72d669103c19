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

// --- DTOs ---

type CreatePermissionRequest struct {
	Name    string `json:"name" binding:"required"`
	APIPath string `json:"apiPath" binding:"required"`
	Method  string `json:"method" binding:"required,oneof=GET POST PUT PATCH DELETE"`
	Module  string `json:"module" binding:"required"`
}

type UpdatePermissionRequest struct {
	Name    string `json:"name"`
	APIPath string `json:"apiPath"`
	Method  string `json:"method" binding:"omitempty,oneof=GET POST PUT PATCH DELETE"`
	Module  string `json:"module"`
}

type PermissionResponse struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	APIPath   string    `json:"apiPath"`
	Method    string    `json:"method"`
	Module    string    `json:"module"`
	CreatedAt time.Time `json:"createdAt"`
}

// --- Interface ---

type PermissionService interface {
	Create(ctx context.Context, req CreatePermissionRequest, actor Identity) (*CreatedResponse, error)
	FindAll(ctx context.Context, offset, limit int, filter repository.PermissionFilter) ([]PermissionResponse, int64, error)
	FindOne(ctx context.Context, id string) (*PermissionResponse, error)
	Update(ctx context.Context, id string, req UpdatePermissionRequest, actor Identity) (*PermissionResponse, error)
	Remove(ctx context.Context, id string, actor Identity) error
}

type permissionService struct {
	repo repository.PermissionRepository
}

func NewPermissionService(repo repository.PermissionRepository) PermissionService {
	return &permissionService{repo: repo}
}

// --- Implementation ---

func (s *permissionService) Create(ctx context.Context, req CreatePermissionRequest, actor Identity) (*CreatedResponse, error) {
	if _, err := s.repo.FindByPathAndMethod(ctx, req.APIPath, req.Method); err == nil {
		return nil, fmt.Errorf("permission với apiPath=%s, method=%s đã tồn tại !", req.APIPath, req.Method)
	}

	perm := &model.Permission{
		Name:      req.Name,
		APIPath:   req.APIPath,
		Method:    req.Method,
		Module:    req.Module,
		CreatedBy: model.StampOf(actor.ID, actor.Email),
	}

	if err := s.repo.Create(ctx, perm); err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: perm.ID, CreatedAt: perm.CreatedAt}, nil
}

func (s *permissionService) FindAll(ctx context.Context, offset, limit int, filter repository.PermissionFilter) ([]PermissionResponse, int64, error) {
	perms, total, err := s.repo.List(ctx, offset, limit, filter)
	if err != nil {
		return nil, 0, err
	}

	res := make([]PermissionResponse, 0, len(perms))
	for i := range perms {
		res = append(res, toPermissionResponse(&perms[i]))
	}
	return res, total, nil
}

func (s *permissionService) FindOne(ctx context.Context, id string) (*PermissionResponse, error) {
	permID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("permission not found")
	}
	perm, err := s.repo.FindByID(ctx, permID)
	if err != nil {
		return nil, errors.New("permission not found")
	}
	res := toPermissionResponse(perm)
	return &res, nil
}

func (s *permissionService) Update(ctx context.Context, id string, req UpdatePermissionRequest, actor Identity) (*PermissionResponse, error) {
	permID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("permission not found")
	}
	perm, err := s.repo.FindByID(ctx, permID)
	if err != nil {
		return nil, errors.New("permission not found")
	}

	if req.Name != "" {
		perm.Name = req.Name
	}
	if req.APIPath != "" {
		perm.APIPath = req.APIPath
	}
	if req.Method != "" {
		perm.Method = req.Method
	}
	if req.Module != "" {
		perm.Module = req.Module
	}
	perm.UpdatedBy = model.StampOf(actor.ID, actor.Email)

	if err := s.repo.Update(ctx, perm); err != nil {
		return nil, err
	}

	res := toPermissionResponse(perm)
	return &res, nil
}

func (s *permissionService) Remove(ctx context.Context, id string, actor Identity) error {
	permID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("permission not found")
	}
	if _, err := s.repo.FindByID(ctx, permID); err != nil {
		return errors.New("permission not found")
	}
	return s.repo.SoftDelete(ctx, permID, model.StampOf(actor.ID, actor.Email))
}

func toPermissionResponse(p *model.Permission) PermissionResponse {
	return PermissionResponse{
		ID:        p.ID,
		Name:      p.Name,
		APIPath:   p.APIPath,
		Method:    p.Method,
		Module:    p.Module,
		CreatedAt: p.CreatedAt,
	}
}
