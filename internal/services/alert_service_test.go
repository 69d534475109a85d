package services

import (
	"sync"
	"testing"

	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeAlertCount(t *testing.T, svc *AlertService, userID uuid.UUID) int64 {
	t.Helper()
	var count int64
	require.NoError(t, svc.db.Model(&models.SOSAlert{}).
		Where("user_id = ? AND status = ?", userID, models.AlertStatusActive).
		Count(&count).Error)
	return count
}

func TestUpsertActiveAlertCreateThenHeartbeat(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)
	userID := createTestUser(t, db, "Zeina", "+201000000000")

	first, err := svc.UpsertActiveAlert(userID, "Stalking", 30.0444, 31.2357)
	require.NoError(t, err)

	// Heartbeat: same user raises again with fresh coordinates.
	second, err := svc.UpsertActiveAlert(userID, "Violence", 30.05, 31.24)
	require.NoError(t, err)
	assert.Equal(t, first, second, "heartbeat must reuse the active alert")
	assert.EqualValues(t, 1, activeAlertCount(t, svc, userID))

	var alert models.SOSAlert
	require.NoError(t, db.First(&alert, "id = ?", first).Error)
	assert.Equal(t, 30.05, alert.Latitude)
	assert.Equal(t, 31.24, alert.Longitude)
	assert.Equal(t, "Violence", alert.EmergencyType)

	var pings int64
	require.NoError(t, db.Model(&models.SOSLocationPing{}).Where("alert_id = ?", first).Count(&pings).Error)
	assert.EqualValues(t, 2, pings, "every raise appends one ping")
}

func TestUpsertActiveAlertConcurrentRaises(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)
	userID := createTestUser(t, db, "Zeina", "+201000000000")

	const raises = 8
	ids := make([]uuid.UUID, raises)
	errs := make([]error, raises)

	var wg sync.WaitGroup
	for i := 0; i < raises; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = svc.UpsertActiveAlert(userID, "Accident", float64(i), float64(i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < raises; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i], "all raises must converge on one alert")
	}
	assert.EqualValues(t, 1, activeAlertCount(t, svc, userID))
}

func TestResolveActiveAlertsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)
	userID := createTestUser(t, db, "Zeina", "+201000000000")

	first, err := svc.UpsertActiveAlert(userID, "Stranded", 1, 2)
	require.NoError(t, err)

	require.NoError(t, svc.ResolveActiveAlerts(userID))
	assert.EqualValues(t, 0, activeAlertCount(t, svc, userID))

	// Second stop with nothing active is a no-op, not an error.
	require.NoError(t, svc.ResolveActiveAlerts(userID))

	// A raise after stop opens a fresh alert.
	next, err := svc.UpsertActiveAlert(userID, "Stranded", 3, 4)
	require.NoError(t, err)
	assert.NotEqual(t, first, next)
	assert.EqualValues(t, 1, activeAlertCount(t, svc, userID))
}

func TestGetLocationHistoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)
	userID := createTestUser(t, db, "Zeina", "+201000000000")

	alertID, err := svc.UpsertActiveAlert(userID, "Harassment", 10, 20)
	require.NoError(t, err)
	_, err = svc.UpsertActiveAlert(userID, "Harassment", 11, 21)
	require.NoError(t, err)

	history, err := svc.GetLocationHistory(alertID, userID, 100)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 11.0, history[0].Latitude, "newest ping first")
	assert.Equal(t, 21.0, history[0].Longitude)
	assert.Equal(t, 10.0, history[1].Latitude)

	limited, err := svc.GetLocationHistory(alertID, userID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, 11.0, limited[0].Latitude)
}

func TestGetLocationHistoryForeignAlert(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)
	owner := createTestUser(t, db, "Owner", "+201000000001")
	other := createTestUser(t, db, "Other", "+201000000002")

	alertID, err := svc.UpsertActiveAlert(owner, "Violence", 5, 6)
	require.NoError(t, err)

	_, err = svc.GetLocationHistory(alertID, other, 100)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}
