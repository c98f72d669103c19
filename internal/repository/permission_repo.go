package repository

import (
	"context"

	"jobportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermissionFilter narrows List results; empty fields are ignored.
type PermissionFilter struct {
	Module string
	Method string
}

type PermissionRepository interface {
	Create(ctx context.Context, perm *model.Permission) error
	Update(ctx context.Context, perm *model.Permission) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error)
	FindByPathAndMethod(ctx context.Context, apiPath, method string) (*model.Permission, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Permission, error)
	List(ctx context.Context, offset, limit int, filter PermissionFilter) ([]model.Permission, int64, error)
}

type permissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) Create(ctx context.Context, perm *model.Permission) error {
	return GetDB(ctx, r.db).Create(perm).Error
}

func (r *permissionRepository) Update(ctx context.Context, perm *model.Permission) error {
	return GetDB(ctx, r.db).Save(perm).Error
}

func (r *permissionRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error {
	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Permission{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_by_id":    deletedBy.ID,
		"deleted_by_email": deletedBy.Email,
	}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Permission{}).Error
}

func (r *permissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error) {
	var perm model.Permission
	if err := GetDB(ctx, r.db).First(&perm, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *permissionRepository) FindByPathAndMethod(ctx context.Context, apiPath, method string) (*model.Permission, error) {
	var perm model.Permission
	if err := GetDB(ctx, r.db).Where("api_path = ? AND method = ?", apiPath, method).First(&perm).Error; err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *permissionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Permission, error) {
	var perms []model.Permission
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&perms).Error; err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *permissionRepository) List(ctx context.Context, offset, limit int, filter PermissionFilter) ([]model.Permission, int64, error) {
	var perms []model.Permission
	var total int64

	q := GetDB(ctx, r.db).Model(&model.Permission{})
	if filter.Module != "" {
		q = q.Where("module = ?", filter.Module)
	}
	if filter.Method != "" {
		q = q.Where("method = ?", filter.Method)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Order("module ASC, api_path ASC").Offset(offset).Limit(limit).Find(&perms).Error; err != nil {
		return nil, 0, err
	}

	return perms, total, nil
}
