package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AlertStatusActive   = "active"
	AlertStatusResolved = "resolved"
)

// SOSAlert is the per-user alert row. The partial unique index on user_id
// enforces at most one active alert per user at the schema level; concurrent
// raises converge onto the same row (see services.AlertService).
type SOSAlert struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"alert_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_sos_alerts_one_active,unique,where:status = 'active'" json:"user_id"`
	EmergencyType string    `gorm:"size:50;not null" json:"emergency_type"`
	Latitude      float64   `gorm:"not null" json:"latitude"`
	Longitude     float64   `gorm:"not null" json:"longitude"`
	Status        string    `gorm:"size:20;not null;default:'active';index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SOSLocationPing is an immutable location-history event, appended on every
// alert create or heartbeat and replayed newest first.
type SOSLocationPing struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AlertID       uuid.UUID `gorm:"type:uuid;not null;index" json:"alert_id"`
	Latitude      float64   `gorm:"not null" json:"latitude"`
	Longitude     float64   `gorm:"not null" json:"longitude"`
	EmergencyType string    `gorm:"size:50" json:"emergency_type"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}
