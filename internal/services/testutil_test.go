package services

import (
	"testing"

	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns an isolated in-memory database. A single pooled
// connection keeps every goroutine on the same memory instance and serializes
// writes the way Postgres row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.EmergencyContact{},
		&models.SOSAlert{},
		&models.SOSLocationPing{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, phone string) uuid.UUID {
	t.Helper()

	user := models.User{
		ID:          uuid.New(),
		Name:        name,
		Email:       uuid.New().String() + "@example.com",
		Password:    "hashed",
		PhoneNumber: phone,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func seedContacts(t *testing.T, db *gorm.DB, userID uuid.UUID, phones ...string) {
	t.Helper()

	svc := NewContactService(db)
	for i, phone := range phones {
		_, err := svc.Add(userID, "Contact "+string(rune('A'+i)), "friend", phone)
		require.NoError(t, err)
	}
}
