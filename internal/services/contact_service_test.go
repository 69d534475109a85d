package services

import (
	"testing"

	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceContactsMinimumCardinality(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	userID := createTestUser(t, db, "Zeina", "+201000000000")
	seedContacts(t, db, userID, "+201111111111", "+202222222222", "+203333333333")

	err := svc.Replace(userID, []models.EmergencyContact{
		{Name: "Only One", PhoneNumber: "+204444444444"},
	})
	assert.ErrorIs(t, err, ErrTooFewContacts)

	// The rejected replace must not have touched the existing list.
	contacts, err := svc.List(userID)
	require.NoError(t, err)
	assert.Len(t, contacts, 3)

	err = svc.Replace(userID, []models.EmergencyContact{
		{Name: "Mom", Relationship: "mother", PhoneNumber: "+204444444444"},
		{Name: "Dad", Relationship: "father", PhoneNumber: "+205555555555"},
	})
	require.NoError(t, err)

	contacts, err = svc.List(userID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Mom", contacts[0].Name)
	assert.Equal(t, "Dad", contacts[1].Name)
	for _, contact := range contacts {
		assert.Equal(t, userID, contact.UserID)
	}
}

func TestAddAndListContacts(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	userID := createTestUser(t, db, "Zeina", "+201000000000")

	id, err := svc.Add(userID, "Sara", "sister", "+201234567890")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	contacts, err := svc.List(userID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Sara", contacts[0].Name)
	assert.Equal(t, "sister", contacts[0].Relationship)
}

func TestDeleteContactOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	owner := createTestUser(t, db, "Owner", "+201000000001")
	other := createTestUser(t, db, "Other", "+201000000002")

	contactID, err := svc.Add(owner, "Sara", "sister", "+201234567890")
	require.NoError(t, err)

	// A foreign contact id reads as not found, never as forbidden.
	assert.ErrorIs(t, svc.Delete(other, contactID), ErrContactNotFound)

	require.NoError(t, svc.Delete(owner, contactID))
	assert.ErrorIs(t, svc.Delete(owner, contactID), ErrContactNotFound)
}
