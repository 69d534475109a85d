package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/dto"
	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidEmergencyType = errors.New("invalid emergency type")
	ErrNoContacts           = errors.New("no emergency contacts found")
	ErrNoUsablePhones       = errors.New("no valid phone numbers found in emergency contacts")
)

// validEmergencyTypes is the allow-list for incoming alerts. The composer has
// a generic fallback, so adding a category here works even before a dedicated
// template exists.
var validEmergencyTypes = []string{
	"Stalking", "Harassment", "Accident", "Violence", "Home Invasion", "Cab trouble", "Stranded",
}

// SOSService coordinates the alert lifecycle: it validates the raw SOS
// request, drives the alert store, resolves recipients, and assembles the
// notification payload. Delivery belongs to the client device.
type SOSService struct {
	users          *UserService
	contacts       *ContactService
	alerts         *AlertService
	shortener      URLShortener
	publicBaseURL  string
	shortenTimeout time.Duration
}

// URLShortener always yields a usable URL; degradation is internal to the
// implementation and never visible here.
type URLShortener interface {
	Shorten(ctx context.Context, longURL string) string
}

func NewSOSService(users *UserService, contacts *ContactService, alerts *AlertService, shortener URLShortener, publicBaseURL string, shortenTimeout time.Duration) *SOSService {
	return &SOSService{
		users:          users,
		contacts:       contacts,
		alerts:         alerts,
		shortener:      shortener,
		publicBaseURL:  strings.TrimRight(publicBaseURL, "/"),
		shortenTimeout: shortenTimeout,
	}
}

// RaiseOrUpdate turns a distress signal into the outbound notification
// payload. While an alert is active, repeated calls act as location
// heartbeats against the same alert row.
func (s *SOSService) RaiseOrUpdate(ctx context.Context, userID uuid.UUID, emergencyType string, lat, lon float64) (*dto.NotificationPayload, error) {
	if !isValidEmergencyType(emergencyType) {
		return nil, ErrInvalidEmergencyType
	}

	user, err := s.users.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	contacts, err := s.contacts.List(userID)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrNoContacts
	}

	recipients := usablePhoneNumbers(contacts)
	if len(recipients) == 0 {
		// An alert without a single reachable contact is not actionable;
		// refuse instead of emitting an empty fan-out list.
		return nil, ErrNoUsablePhones
	}

	alertID, err := s.alerts.UpsertActiveAlert(userID, emergencyType, lat, lon)
	if err != nil {
		return nil, err
	}

	trackingURL := s.publicBaseURL + "/track/" + userID.String()
	mapsURL := "https://maps.google.com/?q=" + formatCoord(lat) + "," + formatCoord(lon)

	shortenCtx, cancel := context.WithTimeout(ctx, s.shortenTimeout)
	defer cancel()
	locationURL := s.shortener.Shorten(shortenCtx, mapsURL)

	message := ComposeEmergencyMessage(emergencyType, locationURL)

	contactInfos := make([]dto.ContactInfo, len(contacts))
	for i, contact := range contacts {
		contactInfos[i] = dto.ContactInfo{
			Name:         contact.Name,
			Phone:        contact.PhoneNumber,
			Relationship: contact.Relationship,
		}
	}

	return &dto.NotificationPayload{
		AlertID:       alertID.String(),
		UserID:        userID.String(),
		EmergencyType: emergencyType,
		UserName:      user.Name,
		UserPhone:     user.PhoneNumber,
		Contacts:      contactInfos,
		TrackingURL:   trackingURL,
		LocationURL:   locationURL,
		Message:       message,
		SMSData: dto.SMSData{
			Message:          message,
			Recipients:       recipients,
			RecipientsString: strings.Join(recipients, ","),
		},
	}, nil
}

// Stop resolves every active alert for the user. Stopping with nothing active
// is a no-op, so client retries are harmless.
func (s *SOSService) Stop(userID uuid.UUID) error {
	return s.alerts.ResolveActiveAlerts(userID)
}

// History replays the alert's location pings newest first, each with a
// ready-to-display maps link.
func (s *SOSService) History(userID, alertID uuid.UUID, limit int) ([]dto.LocationHistoryEntry, error) {
	pings, err := s.alerts.GetLocationHistory(alertID, userID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LocationHistoryEntry, len(pings))
	for i, ping := range pings {
		entries[i] = dto.LocationHistoryEntry{
			Latitude:      ping.Latitude,
			Longitude:     ping.Longitude,
			CreatedAt:     ping.CreatedAt,
			EmergencyType: ping.EmergencyType,
			LocationURL:   "https://www.google.com/maps?q=" + formatCoord(ping.Latitude) + "," + formatCoord(ping.Longitude),
		}
	}
	return entries, nil
}

func isValidEmergencyType(emergencyType string) bool {
	for _, t := range validEmergencyTypes {
		if t == emergencyType {
			return true
		}
	}
	return false
}

// usablePhoneNumbers filters out blank or whitespace-only numbers. Malformed
// contacts are skipped, never rejected.
func usablePhoneNumbers(contacts []models.EmergencyContact) []string {
	numbers := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		if phone := strings.TrimSpace(contact.PhoneNumber); phone != "" {
			numbers = append(numbers, phone)
		}
	}
	return numbers
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
