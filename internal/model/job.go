package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Job represents a job posting published by a company
type Job struct {
	ID     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name   string         `gorm:"type:varchar(255);not null" json:"name"`
	Skills pq.StringArray `gorm:"type:text[]" json:"skills"`

	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	Location    string          `gorm:"type:varchar(255)" json:"location"`
	Salary      decimal.Decimal `gorm:"type:numeric(14,2)" json:"salary"`
	Quantity    int             `gorm:"default:1" json:"quantity"`
	Level       string          `gorm:"type:varchar(50)" json:"level"` // INTERN, FRESHER, JUNIOR, SENIOR
	Description string          `gorm:"type:text" json:"description"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`

	CreatedBy Actor `gorm:"embedded;embeddedPrefix:created_by_" json:"createdBy,omitempty"`
	UpdatedBy Actor `gorm:"embedded;embeddedPrefix:updated_by_" json:"updatedBy,omitempty"`
	DeletedBy Actor `gorm:"embedded;embeddedPrefix:deleted_by_" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
