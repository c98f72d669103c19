package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an authenticatable account on the portal
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Email    string    `gorm:"type:varchar(255);not null;index:idx_users_email,unique,where:deleted_at IS NULL" json:"email"`
	Password string    `gorm:"type:varchar(255);not null" json:"-"` // Omit password hash from JSON requests/responses
	Age      int       `gorm:"default:0" json:"age"`
	Gender   string    `gorm:"type:varchar(20)" json:"gender"`
	Address  string    `gorm:"type:varchar(255)" json:"address"`

	// RoleID is nullable on purpose: registration tolerates a missing
	// default role and leaves the reference unset.
	RoleID *uuid.UUID `gorm:"type:uuid;index" json:"roleId,omitempty"`
	Role   *Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`

	// RefreshToken holds the single currently-valid refresh token for this
	// account. Login and refresh overwrite it, logout clears it.
	RefreshToken *string `gorm:"type:text" json:"-"`

	CreatedBy Actor `gorm:"embedded;embeddedPrefix:created_by_" json:"createdBy,omitempty"`
	UpdatedBy Actor `gorm:"embedded;embeddedPrefix:updated_by_" json:"updatedBy,omitempty"`
	DeletedBy Actor `gorm:"embedded;embeddedPrefix:deleted_by_" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // GORM soft delete
}
