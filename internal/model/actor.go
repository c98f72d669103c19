package model

import "github.com/google/uuid"

// Actor is the embedded {id, email} stamp recorded on create/update/delete
// so every mutation can be traced back to the user who performed it.
type Actor struct {
	ID    *uuid.UUID `gorm:"type:uuid" json:"_id,omitempty"`
	Email string     `gorm:"type:varchar(255)" json:"email,omitempty"`
}

// StampOf builds an Actor from a user's identity fields.
func StampOf(id uuid.UUID, email string) Actor {
	return Actor{ID: &id, Email: email}
}
