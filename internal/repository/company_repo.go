package repository

import (
	"context"

	"jobportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyFilter narrows List results; empty fields are ignored.
type CompanyFilter struct {
	Name    string
	Address string
}

type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	List(ctx context.Context, offset, limit int, filter CompanyFilter) ([]model.Company, int64, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	return GetDB(ctx, r.db).Create(company).Error
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) error {
	return GetDB(ctx, r.db).Save(company).Error
}

func (r *companyRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error {
	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Company{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_by_id":    deletedBy.ID,
		"deleted_by_email": deletedBy.Email,
	}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Company{}).Error
}

func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := GetDB(ctx, r.db).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) List(ctx context.Context, offset, limit int, filter CompanyFilter) ([]model.Company, int64, error) {
	var companies []model.Company
	var total int64

	q := GetDB(ctx, r.db).Model(&model.Company{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Address != "" {
		q = q.Where("address ILIKE ?", "%"+filter.Address+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&companies).Error; err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}
