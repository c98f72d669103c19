package repository

import (
	"context"

	"jobportal/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// JobFilter narrows List results; zero values are ignored.
type JobFilter struct {
	Name       string
	Location   string
	Level      string
	CompanyID  *uuid.UUID
	OnlyActive bool
	// Skills matches jobs requiring any of the given skills.
	Skills []string
}

type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	List(ctx context.Context, offset, limit int, filter JobFilter) ([]model.Job, int64, error)
	ListActive(ctx context.Context) ([]model.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return GetDB(ctx, r.db).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return GetDB(ctx, r.db).Save(job).Error
}

func (r *jobRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error {
	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_by_id":    deletedBy.ID,
		"deleted_by_email": deletedBy.Email,
	}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Job{}).Error
}

func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := GetDB(ctx, r.db).Preload("Company").First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context, offset, limit int, filter JobFilter) ([]model.Job, int64, error) {
	var jobs []model.Job
	var total int64

	q := GetDB(ctx, r.db).Model(&model.Job{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Level != "" {
		q = q.Where("level = ?", filter.Level)
	}
	if filter.CompanyID != nil {
		q = q.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.OnlyActive {
		q = q.Where("is_active = true AND end_date > NOW()")
	}
	if len(filter.Skills) > 0 {
		q = q.Where("skills && ?", pq.Array(filter.Skills))
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Preload("Company").Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// ListActive fetches every posting still open for applications, for the
// subscriber digest matcher.
func (r *jobRepository) ListActive(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := GetDB(ctx, r.db).Preload("Company").
		Where("is_active = true AND end_date > NOW()").
		Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
