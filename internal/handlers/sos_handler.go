package handlers

import (
	"errors"

	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/dto"
	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/identity"
	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/models"
	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SOSHandler struct {
	sosService     *services.SOSService
	contactService *services.ContactService
}

func NewSOSHandler(sosService *services.SOSService, contactService *services.ContactService) *SOSHandler {
	return &SOSHandler{sosService: sosService, contactService: contactService}
}

// GetContacts handles GET /sos/contacts - returns the caller's emergency contacts.
func (h *SOSHandler) GetContacts(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	contacts, err := h.contactService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch contacts",
		})
	}
	return c.JSON(contacts)
}

// AddContact handles POST /sos/contacts - appends one emergency contact.
func (h *SOSHandler) AddContact(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	contactID, err := h.contactService.Add(userID, req.Name, req.Relationship, req.PhoneNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add contact",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AddContactResponse{
		ContactID: contactID.String(),
		Message:   "Contact added successfully",
	})
}

// ReplaceContacts handles PUT /sos/contacts - swaps the full contact list.
func (h *SOSHandler) ReplaceContacts(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ReplaceContactsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	contacts := make([]models.EmergencyContact, len(req.Contacts))
	for i, contact := range req.Contacts {
		contacts[i] = models.EmergencyContact{
			Name:         contact.Name,
			Relationship: contact.Relationship,
			PhoneNumber:  contact.PhoneNumber,
		}
	}

	if err := h.contactService.Replace(userID, contacts); err != nil {
		if errors.Is(err, services.ErrTooFewContacts) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "At least two emergency contacts are required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update contacts",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Emergency contacts updated successfully"})
}

// DeleteContact handles DELETE /sos/contacts/:id.
func (h *SOSHandler) DeleteContact(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid contact ID",
		})
	}

	if err := h.contactService.Delete(userID, contactID); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Contact not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete contact",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Contact deleted"})
}

// Alert handles POST /sos/alert - raises a new alert or refreshes the active
// one, returning the notification payload for client-side delivery.
func (h *SOSHandler) Alert(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SOSAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	payload, err := h.sosService.RaiseOrUpdate(c.Context(), userID, req.EmergencyType, req.Latitude, req.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmergencyType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid emergency type",
			})
		case errors.Is(err, services.ErrNoContacts):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "No emergency contacts found",
			})
		case errors.Is(err, services.ErrNoUsablePhones):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "No valid phone numbers found in emergency contacts",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send SOS alert",
		})
	}

	return c.JSON(payload)
}

// StopSOS handles POST /sos/stop-sos - resolves the caller's active alerts.
func (h *SOSHandler) StopSOS(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.sosService.Stop(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to stop SOS alert",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "SOS alert stopped successfully"})
}

// LocationHistory handles GET /sos/location-history/:alertId.
func (h *SOSHandler) LocationHistory(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	alertID, err := uuid.Parse(c.Params("alertId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid alert ID",
		})
	}

	limit := c.QueryInt("limit", 100)
	entries, err := h.sosService.History(userID, alertID, limit)
	if err != nil {
		if errors.Is(err, services.ErrAlertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Alert not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch location history",
		})
	}

	return c.JSON(entries)
}

// EmergencyNumbers handles GET /emergency-numbers - static emergency services
// the client can dial directly.
func (h *SOSHandler) EmergencyNumbers(c *fiber.Ctx) error {
	return c.JSON(dto.EmergencyNumbersResponse{
		Message: "Select an emergency service to call:",
		Options: []dto.EmergencyNumber{
			{Service: "Police", Number: 122},
			{Service: "Ambulance", Number: 123},
		},
	})
}
