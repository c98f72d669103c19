package service

import (
	"time"

	"github.com/google/uuid"
)

// CreatedResponse is the minimal acknowledgement returned by create
// operations: the new record's id and creation timestamp, nothing else.
type CreatedResponse struct {
	ID        uuid.UUID `json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
}
