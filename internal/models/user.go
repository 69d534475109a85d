package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is owned by the authentication collaborator; this service only reads
// name and phone_number for the coordinator's self-identification fields.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Email       string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	PhoneNumber string         `gorm:"size:20" json:"phone_number"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
