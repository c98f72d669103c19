package repository

import (
	"context"

	"jobportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResumeFilter narrows List results; zero values are ignored.
type ResumeFilter struct {
	Status    string
	CompanyID *uuid.UUID
	JobID     *uuid.UUID
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) error
	Update(ctx context.Context, resume *model.Resume) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Resume, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Resume, error)
	List(ctx context.Context, offset, limit int, filter ResumeFilter) ([]model.Resume, int64, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	return GetDB(ctx, r.db).Create(resume).Error
}

func (r *resumeRepository) Update(ctx context.Context, resume *model.Resume) error {
	return GetDB(ctx, r.db).Save(resume).Error
}

func (r *resumeRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error {
	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Resume{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_by_id":    deletedBy.ID,
		"deleted_by_email": deletedBy.Email,
	}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Resume{}).Error
}

func (r *resumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	if err := GetDB(ctx, r.db).Preload("Company").Preload("Job").First(&resume, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Resume, error) {
	var resumes []model.Resume
	err := GetDB(ctx, r.db).Preload("Company").Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepository) List(ctx context.Context, offset, limit int, filter ResumeFilter) ([]model.Resume, int64, error) {
	var resumes []model.Resume
	var total int64

	q := GetDB(ctx, r.db).Model(&model.Resume{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CompanyID != nil {
		q = q.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.JobID != nil {
		q = q.Where("job_id = ?", *filter.JobID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Preload("Company").Preload("Job").Order("created_at DESC").Offset(offset).Limit(limit).Find(&resumes).Error; err != nil {
		return nil, 0, err
	}

	return resumes, total, nil
}
