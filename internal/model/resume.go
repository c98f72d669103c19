package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resume application statuses, in the order HR moves them through.
const (
	ResumePending   = "PENDING"
	ResumeReviewing = "REVIEWING"
	ResumeApproved  = "APPROVED"
	ResumeRejected  = "REJECTED"
)

// ResumeStatusEvent records one step of a resume's status history
type ResumeStatusEvent struct {
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy Actor     `json:"updatedBy"`
}

// Resume represents a CV submitted by a user for a specific job
type Resume struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email  string    `gorm:"type:varchar(255);not null;index" json:"email"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	URL    string    `gorm:"type:varchar(255);not null" json:"url"`
	Status string    `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`

	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index" json:"jobId"`
	Job       *Job      `gorm:"foreignKey:JobID" json:"job,omitempty"`

	History []ResumeStatusEvent `gorm:"serializer:json;type:jsonb" json:"history"`

	CreatedBy Actor `gorm:"embedded;embeddedPrefix:created_by_" json:"createdBy,omitempty"`
	UpdatedBy Actor `gorm:"embedded;embeddedPrefix:updated_by_" json:"updatedBy,omitempty"`
	DeletedBy Actor `gorm:"embedded;embeddedPrefix:deleted_by_" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ValidResumeStatus reports whether s is one of the known statuses.
func ValidResumeStatus(s string) bool {
	switch s {
	case ResumePending, ResumeReviewing, ResumeApproved, ResumeRejected:
		return true
	}
	return false
}
