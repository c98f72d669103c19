package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents an employer profile that owns job postings
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Address     string    `gorm:"type:varchar(255)" json:"address"`
	Description string    `gorm:"type:text" json:"description"`
	Logo        string    `gorm:"type:varchar(255)" json:"logo"`

	CreatedBy Actor `gorm:"embedded;embeddedPrefix:created_by_" json:"createdBy,omitempty"`
	UpdatedBy Actor `gorm:"embedded;embeddedPrefix:updated_by_" json:"updatedBy,omitempty"`
	DeletedBy Actor `gorm:"embedded;embeddedPrefix:deleted_by_" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
