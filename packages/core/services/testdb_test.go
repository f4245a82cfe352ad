package services

import (
	"testing"

	"core/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// TranslateError makes duplicate key failures detectable the same way the
// postgres driver reports them.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Championship{},
		&models.UserChampionship{},
		&models.Pairing{},
		&models.Game{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, externalID, fullname string) models.User {
	t.Helper()

	user := models.User{ExternalID: externalID, Fullname: fullname}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestChampionship(t *testing.T, db *gorm.DB, name string) models.Championship {
	t.Helper()

	championship := models.Championship{Name: name, Status: models.ChampionshipActive}
	require.NoError(t, db.Create(&championship).Error)
	return championship
}
