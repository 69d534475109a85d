package services

import (
	"errors"
	"fmt"

	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTooFewContacts  = errors.New("at least two emergency contacts are required")
	ErrContactNotFound = errors.New("contact not found")
)

// ContactService owns EmergencyContact persistence.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// List returns the user's contacts in stable creation order.
func (s *ContactService) List(userID uuid.UUID) ([]models.EmergencyContact, error) {
	var contacts []models.EmergencyContact
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}
	return contacts, nil
}

// Add appends a single contact without touching the rest of the list.
func (s *ContactService) Add(userID uuid.UUID, name, relationship, phoneNumber string) (uuid.UUID, error) {
	contact := models.EmergencyContact{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Relationship: relationship,
		PhoneNumber:  phoneNumber,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to add contact: %w", err)
	}
	return contact.ID, nil
}

// Replace swaps the user's entire contact list in one transaction. Clients
// resubmit everything they know, which sidesteps partial-update ambiguity; a
// list shorter than two contacts is rejected before anything is deleted.
func (s *ContactService) Replace(userID uuid.UUID, contacts []models.EmergencyContact) error {
	if len(contacts) < 2 {
		return ErrTooFewContacts
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.EmergencyContact{}).Error; err != nil {
			return err
		}
		for i := range contacts {
			contacts[i].ID = uuid.New()
			contacts[i].UserID = userID
		}
		return tx.Create(&contacts).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace contacts: %w", err)
	}
	return nil
}

// Delete removes one contact. A contact owned by someone else reads as not
// found; ownership is never disclosed.
func (s *ContactService) Delete(userID, contactID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", contactID, userID).
		Delete(&models.EmergencyContact{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
