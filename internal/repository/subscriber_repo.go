package repository

import (
	"context"

	"jobportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriberRepository interface {
	Create(ctx context.Context, sub *model.Subscriber) error
	Update(ctx context.Context, sub *model.Subscriber) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subscriber, error)
	FindByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	List(ctx context.Context, offset, limit int) ([]model.Subscriber, int64, error)
	ListAll(ctx context.Context) ([]model.Subscriber, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(ctx context.Context, sub *model.Subscriber) error {
	return GetDB(ctx, r.db).Create(sub).Error
}

func (r *subscriberRepository) Update(ctx context.Context, sub *model.Subscriber) error {
	return GetDB(ctx, r.db).Save(sub).Error
}

func (r *subscriberRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy model.Actor) error {
	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Subscriber{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_by_id":    deletedBy.ID,
		"deleted_by_email": deletedBy.Email,
	}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Subscriber{}).Error
}

func (r *subscriberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subscriber, error) {
	var sub model.Subscriber
	if err := GetDB(ctx, r.db).First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var sub model.Subscriber
	if err := GetDB(ctx, r.db).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) List(ctx context.Context, offset, limit int) ([]model.Subscriber, int64, error) {
	var subs []model.Subscriber
	var total int64

	if err := GetDB(ctx, r.db).Model(&model.Subscriber{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := GetDB(ctx, r.db).Order("created_at DESC").Offset(offset).Limit(limit).Find(&subs).Error; err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

// ListAll is used by the weekly digest; subscriber counts stay small enough
// to load in one pass.
func (r *subscriberRepository) ListAll(ctx context.Context) ([]model.Subscriber, error) {
	var subs []model.Subscriber
	if err := GetDB(ctx, r.db).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
