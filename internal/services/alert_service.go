package services

import (
	"errors"
	"fmt"

	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAlertNotFound = errors.New("alert not found")

const maxHistoryLimit = 100

// AlertService owns SOSAlert persistence. The partial unique index on
// sos_alerts (user_id WHERE status = 'active') guarantees at most one active
// alert per user; a concurrent create that loses the race is retried as an
// update of the winner's row.
type AlertService struct {
	db *gorm.DB
}

func NewAlertService(db *gorm.DB) *AlertService {
	return &AlertService{db: db}
}

// UpsertActiveAlert updates the user's active alert with fresh coordinates, or
// creates one if none exists. Every call also appends an immutable location
// ping, so repeated calls double as a location heartbeat.
func (s *AlertService) UpsertActiveAlert(userID uuid.UUID, emergencyType string, lat, lon float64) (uuid.UUID, error) {
	alertID, err := s.tryUpsert(userID, emergencyType, lat, lon)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the create race against a concurrent raise; the active row
		// exists now, so take the update path.
		alertID, err = s.tryUpsert(userID, emergencyType, lat, lon)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert active alert: %w", err)
	}
	return alertID, nil
}

func (s *AlertService) tryUpsert(userID uuid.UUID, emergencyType string, lat, lon float64) (uuid.UUID, error) {
	var alertID uuid.UUID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var alert models.SOSAlert
		err := tx.Where("user_id = ? AND status = ?", userID, models.AlertStatusActive).
			First(&alert).Error
		switch {
		case err == nil:
			alertID = alert.ID
			if err := tx.Model(&alert).Updates(map[string]interface{}{
				"latitude":       lat,
				"longitude":      lon,
				"emergency_type": emergencyType,
			}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			alert = models.SOSAlert{
				ID:            uuid.New(),
				UserID:        userID,
				EmergencyType: emergencyType,
				Latitude:      lat,
				Longitude:     lon,
				Status:        models.AlertStatusActive,
			}
			if err := tx.Create(&alert).Error; err != nil {
				return err
			}
			alertID = alert.ID
		default:
			return err
		}

		ping := models.SOSLocationPing{
			ID:            uuid.New(),
			AlertID:       alertID,
			Latitude:      lat,
			Longitude:     lon,
			EmergencyType: emergencyType,
		}
		return tx.Create(&ping).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return alertID, nil
}

// ResolveActiveAlerts marks every active alert for the user as resolved.
// Calling it with no active alert is a no-op, not an error.
func (s *AlertService) ResolveActiveAlerts(userID uuid.UUID) error {
	err := s.db.Model(&models.SOSAlert{}).
		Where("user_id = ? AND status = ?", userID, models.AlertStatusActive).
		Update("status", models.AlertStatusResolved).Error
	if err != nil {
		return fmt.Errorf("failed to resolve alerts: %w", err)
	}
	return nil
}

// GetLocationHistory returns the alert's pings newest first, bounded by limit.
// Ownership is checked first so a foreign alert id reads as not found.
func (s *AlertService) GetLocationHistory(alertID, userID uuid.UUID, limit int) ([]models.SOSLocationPing, error) {
	if limit < 1 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var alert models.SOSAlert
	err := s.db.Where("id = ? AND user_id = ?", alertID, userID).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up alert: %w", err)
	}

	var pings []models.SOSLocationPing
	err = s.db.Where("alert_id = ?", alertID).
		Order("created_at DESC").
		Limit(limit).
		Find(&pings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch location history: %w", err)
	}
	return pings, nil
}
