package dto

import "time"

type SOSAlertRequest struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	EmergencyType string  `json:"emergencyType"`
}

type ContactRequest struct {
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Relationship string `json:"relationship"`
}

type ReplaceContactsRequest struct {
	Contacts []ContactRequest `json:"contacts"`
}

type AddContactResponse struct {
	ContactID string `json:"contact_id"`
	Message   string `json:"message"`
}

type ContactInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// SMSData is the ready-to-send block the client hands to the device's SMS or
// share APIs. The server never delivers the message itself.
type SMSData struct {
	Message          string   `json:"message"`
	Recipients       []string `json:"recipients"`
	RecipientsString string   `json:"recipientsString"`
}

// NotificationPayload is ephemeral; it is rebuilt on every alert create or
// heartbeat and returned to the caller for client-side delivery.
type NotificationPayload struct {
	AlertID       string        `json:"alert_id"`
	UserID        string        `json:"user_id"`
	EmergencyType string        `json:"emergency_type"`
	UserName      string        `json:"user_name"`
	UserPhone     string        `json:"user_phone"`
	Contacts      []ContactInfo `json:"contacts"`
	TrackingURL   string        `json:"tracking_url"`
	LocationURL   string        `json:"location_url"`
	Message       string        `json:"message"`
	SMSData       SMSData       `json:"sms_data"`
}

type LocationHistoryEntry struct {
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     time.Time `json:"created_at"`
	EmergencyType string    `json:"emergency_type"`
	LocationURL   string    `json:"location_url"`
}
