package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact belongs to exactly one user. Phone numbers may be blank or
// malformed; they are filtered at notification time, not rejected on write.
type EmergencyContact struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Relationship string    `gorm:"size:50" json:"relationship"`
	PhoneNumber  string    `gorm:"size:20" json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
