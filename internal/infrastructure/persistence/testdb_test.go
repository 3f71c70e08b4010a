package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

// setupTestDB opens an in-memory SQLite database and migrates the given models
func setupTestDB(t *testing.T, dst ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	if len(dst) == 0 {
		dst = []interface{}{
			&models.ProfileModel{},
			&models.ApartmentModel{},
			&models.ComplaintModel{},
			&models.NotificationModel{},
			&models.AnnouncementModel{},
			&models.TransactionModel{},
			&models.PaymentRequestModel{},
			&models.AppLogModel{},
		}
	}
	require.NoError(t, db.AutoMigrate(dst...))

	return db
}
