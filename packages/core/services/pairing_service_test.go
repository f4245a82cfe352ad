package services

import (
	"fmt"
	"testing"

	"core/apperr"
	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePairingsEvenCount(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	var userIDs []uint
	for i := 0; i < 6; i++ {
		user := createTestUser(t, db, fmt.Sprintf("ext-%d", i), fmt.Sprintf("User %d", i))
		userIDs = append(userIDs, user.ID)
	}

	response, err := service.GeneratePairings(championship.ID, userIDs)
	require.NoError(t, err)

	assert.Len(t, response.GeneratedPairings, 3)
	assert.Empty(t, response.UnpairedUsers)

	// Every user appears in exactly one pairing
	seen := make(map[uint]int)
	for _, pairing := range response.GeneratedPairings {
		seen[pairing.Player1.ID]++
		seen[pairing.Player2.ID]++
	}
	for _, id := range userIDs {
		assert.Equal(t, 1, seen[id])
	}

	// All users were enrolled on the roster
	var memberships int64
	require.NoError(t, db.Model(&models.UserChampionship{}).
		Where("championship_id = ?", championship.ID).
		Count(&memberships).Error)
	assert.EqualValues(t, 6, memberships)
}

func TestGeneratePairingsOddCount(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	var userIDs []uint
	for i := 0; i < 5; i++ {
		user := createTestUser(t, db, fmt.Sprintf("ext-%d", i), fmt.Sprintf("User %d", i))
		userIDs = append(userIDs, user.ID)
	}

	response, err := service.GeneratePairings(championship.ID, userIDs)
	require.NoError(t, err)

	assert.Len(t, response.GeneratedPairings, 2)
	require.Len(t, response.UnpairedUsers, 1)
	assert.Equal(t, "Odd number of users", response.UnpairedUsers[0].Reason)

	// The leftover is still enrolled on the roster
	var memberships int64
	require.NoError(t, db.Model(&models.UserChampionship{}).
		Where("championship_id = ?", championship.ID).
		Count(&memberships).Error)
	assert.EqualValues(t, 5, memberships)
}

func TestGeneratePairingsDeduplicatesInput(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")

	response, err := service.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID, u1.ID, u2.ID})
	require.NoError(t, err)
	assert.Len(t, response.GeneratedPairings, 1)
}

func TestGeneratePairingsChampionshipNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)

	user := createTestUser(t, db, "ext-1", "User 1")

	_, err := service.GeneratePairings(999, []uint{user.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGeneratePairingsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	user := createTestUser(t, db, "ext-1", "User 1")

	_, err := service.GeneratePairings(championship.ID, []uint{user.ID, 999})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// Nothing was persisted
	var memberships int64
	require.NoError(t, db.Model(&models.UserChampionship{}).Count(&memberships).Error)
	assert.EqualValues(t, 0, memberships)
}

func TestGeneratePairingsRejectsExistingPair(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")

	_, err := service.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.NoError(t, err)

	_, err = service.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConstraintViolation, apperr.KindOf(err))

	var pairings int64
	require.NoError(t, db.Model(&models.Pairing{}).Count(&pairings).Error)
	assert.EqualValues(t, 1, pairings)
}

func TestGeneratePairingsEnrollmentIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")
	u3 := createTestUser(t, db, "ext-3", "User 3")
	u4 := createTestUser(t, db, "ext-4", "User 4")

	_, err := service.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.NoError(t, err)

	// u1 and u2 are already enrolled; pairing them with fresh partners
	// must not duplicate their memberships
	_, err = service.GeneratePairings(championship.ID, []uint{u1.ID, u3.ID})
	require.NoError(t, err)
	_, err = service.GeneratePairings(championship.ID, []uint{u2.ID, u4.ID})
	require.NoError(t, err)

	var memberships int64
	require.NoError(t, db.Model(&models.UserChampionship{}).
		Where("championship_id = ?", championship.ID).
		Count(&memberships).Error)
	assert.EqualValues(t, 4, memberships)
}

// TestGeneratePairingsShuffleIsUniform checks that repeated generation does
// not favor any particular partner. With 4 users each one has 3 possible
// partners, so over many trials each partner should show up about a third
// of the time.
func TestGeneratePairingsShuffleIsUniform(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)

	users := make([]models.User, 4)
	var userIDs []uint
	for i := range users {
		users[i] = createTestUser(t, db, fmt.Sprintf("ext-%d", i), fmt.Sprintf("User %d", i))
		userIDs = append(userIDs, users[i].ID)
	}

	const trials = 1500
	partnerCounts := make(map[uint]int)

	for trial := 0; trial < trials; trial++ {
		championship := createTestChampionship(t, db, fmt.Sprintf("Trial %d", trial))

		response, err := service.GeneratePairings(championship.ID, userIDs)
		require.NoError(t, err)
		require.Len(t, response.GeneratedPairings, 2)

		for _, pairing := range response.GeneratedPairings {
			if pairing.Player1.ID == users[0].ID {
				partnerCounts[pairing.Player2.ID]++
			} else if pairing.Player2.ID == users[0].ID {
				partnerCounts[pairing.Player1.ID]++
			}
		}
	}

	for _, partner := range users[1:] {
		frequency := float64(partnerCounts[partner.ID]) / float64(trials)
		assert.InDelta(t, 1.0/3.0, frequency, 0.07, "partner %d drawn with frequency %f", partner.ID, frequency)
	}
}

func TestUpdatePairingStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")

	response, err := service.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.NoError(t, err)

	updated, err := service.UpdatePairingStatus(response.GeneratedPairings[0].ID, models.PairingEliminated)
	require.NoError(t, err)
	assert.Equal(t, models.PairingEliminated, updated.Status)

	_, err = service.UpdatePairingStatus(999, models.PairingEliminated)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdatePairingStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")

	response, err := service.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.NoError(t, err)

	_, err = service.UpdatePairingStatus(response.GeneratedPairings[0].ID, "finished")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	var stored models.Pairing
	require.NoError(t, db.First(&stored, response.GeneratedPairings[0].ID).Error)
	assert.Equal(t, models.PairingActive, stored.Status)
}

func TestGetChampionshipPairings(t *testing.T) {
	db := newTestDB(t)
	service := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	var userIDs []uint
	for i := 0; i < 4; i++ {
		user := createTestUser(t, db, fmt.Sprintf("ext-%d", i), fmt.Sprintf("User %d", i))
		userIDs = append(userIDs, user.ID)
	}

	_, err := service.GeneratePairings(championship.ID, userIDs)
	require.NoError(t, err)

	pairings, err := service.GetChampionshipPairings(championship.ID)
	require.NoError(t, err)
	require.Len(t, pairings, 2)

	for _, pairing := range pairings {
		assert.NotEmpty(t, pairing.Player1.Fullname)
		assert.NotEmpty(t, pairing.Player2.Fullname)
		assert.Equal(t, pairing.Player1Wins+pairing.Player2Wins, pairing.TotalGames)
	}
}
