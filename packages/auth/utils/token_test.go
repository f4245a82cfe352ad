package utils

import (
	"testing"
	"time"

	"auth/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() models.Config {
	return models.Config{
		JWTSecret:         []byte("test-secret"),
		AdminEmail:        "admin@zehnly.example",
		AdminPassword:     "hunter2",
		AccessTokenExpiry: time.Hour,
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.RefreshToken{}))
	return db
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateAccessToken(cfg)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, cfg.AdminEmail, claims.Subject)
	assert.Equal(t, cfg.AdminEmail, claims.Email)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateAccessToken(cfg)
	require.NoError(t, err)

	other := cfg
	other.JWTSecret = []byte("other-secret")
	_, err = ValidateAccessToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenExpiry = -time.Minute

	token, err := GenerateAccessToken(cfg)
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateTokenPairRevokesPreviousTokens(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	first, err := GenerateTokenPair(db, cfg)
	require.NoError(t, err)
	second, err := GenerateTokenPair(db, cfg)
	require.NoError(t, err)

	// Only the latest refresh token survives
	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = RefreshAccessToken(db, cfg, first.RefreshToken)
	assert.Error(t, err)

	refreshed, err := RefreshAccessToken(db, cfg, second.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	pair, err := GenerateTokenPair(db, cfg)
	require.NoError(t, err)

	refreshed, err := RefreshAccessToken(db, cfg, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, refreshed.RefreshToken)

	// The old refresh token is gone after rotation
	_, err = RefreshAccessToken(db, cfg, pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshExpiredTokenIsRejected(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	expired := models.RefreshToken{
		Subject:   cfg.AdminEmail,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)

	_, err := RefreshAccessToken(db, cfg, "expired-token")
	assert.Error(t, err)

	// The expired token was purged on the way
	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRevokeAndCleanTokens(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	pair, err := GenerateTokenPair(db, cfg)
	require.NoError(t, err)

	require.NoError(t, RevokeRefreshToken(db, pair.RefreshToken))
	_, err = RefreshAccessToken(db, cfg, pair.RefreshToken)
	assert.Error(t, err)

	stale := models.RefreshToken{
		Subject:   cfg.AdminEmail,
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	fresh := models.RefreshToken{
		Subject:   cfg.AdminEmail,
		Token:     "fresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&fresh).Error)

	require.NoError(t, CleanExpiredTokens(db))

	var remaining []models.RefreshToken
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].Token)
}
