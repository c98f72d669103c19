package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Subscriber represents a newsletter subscriber and the skills they follow
type Subscriber struct {
	ID     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name   string         `gorm:"type:varchar(255);not null" json:"name"`
	Email  string         `gorm:"type:varchar(255);not null;index:idx_subscribers_email,unique,where:deleted_at IS NULL" json:"email"`
	Skills pq.StringArray `gorm:"type:text[]" json:"skills"`

	CreatedBy Actor `gorm:"embedded;embeddedPrefix:created_by_" json:"createdBy,omitempty"`
	UpdatedBy Actor `gorm:"embedded;embeddedPrefix:updated_by_" json:"updatedBy,omitempty"`
	DeletedBy Actor `gorm:"embedded;embeddedPrefix:deleted_by_" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
