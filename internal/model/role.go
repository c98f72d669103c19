package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Built-in role names. RoleAdmin is protected from deletion, RoleUser is
// the default assigned at registration.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Role represents a named bundle of permissions assigned to users
type Role struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name        string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	IsActive    bool         `gorm:"default:true" json:"isActive"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions"`

	CreatedBy Actor `gorm:"embedded;embeddedPrefix:created_by_" json:"createdBy,omitempty"`
	UpdatedBy Actor `gorm:"embedded;embeddedPrefix:updated_by_" json:"updatedBy,omitempty"`
	DeletedBy Actor `gorm:"embedded;embeddedPrefix:deleted_by_" json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Permission represents a single (apiPath, method) capability grantable to roles
type Permission struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	APIPath string    `gorm:"column:api_path;type:varchar(255);not null;uniqueIndex:idx_permissions_path_method" json:"apiPath"`
	Method  string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_permissions_path_method" json:"method"`
	Module  string    `gorm:"type:varchar(50);not null;index" json:"module"` // "USERS", "JOBS", "RESUMES"...

	CreatedBy Actor `gorm:"embedded;embeddedPrefix:created_by_" json:"createdBy,omitempty"`
	UpdatedBy Actor `gorm:"embedded;embeddedPrefix:updated_by_" json:"updatedBy,omitempty"`
	DeletedBy Actor `gorm:"embedded;embeddedPrefix:deleted_by_" json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
