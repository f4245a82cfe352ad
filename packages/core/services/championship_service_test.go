package services

import (
	"testing"

	"core/apperr"
	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndUpdateChampionship(t *testing.T) {
	db := newTestDB(t)
	service := NewChampionshipService(db)

	created, err := service.CreateChampionship(models.CreateChampionshipRequest{Name: "Spring Open"})
	require.NoError(t, err)
	assert.Equal(t, models.ChampionshipActive, created.Status)

	newName := "Spring Open 2026"
	inactive := models.ChampionshipInactive
	updated, err := service.UpdateChampionship(created.ID, models.UpdateChampionshipRequest{
		Name:   &newName,
		Status: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Spring Open 2026", updated.Name)
	assert.Equal(t, models.ChampionshipInactive, updated.Status)

	_, err = service.UpdateChampionship(999, models.UpdateChampionshipRequest{Name: &newName})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteChampionshipCascades(t *testing.T) {
	db := newTestDB(t)
	service := NewChampionshipService(db)
	pairingService := NewPairingService(db)
	roundService := NewRoundService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")

	_, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.NoError(t, err)
	_, err = roundService.AdvanceRound(championship.ID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteChampionship(championship.ID))

	var championships, memberships, pairings, games int64
	require.NoError(t, db.Model(&models.Championship{}).Count(&championships).Error)
	require.NoError(t, db.Model(&models.UserChampionship{}).Count(&memberships).Error)
	require.NoError(t, db.Model(&models.Pairing{}).Count(&pairings).Error)
	require.NoError(t, db.Model(&models.Game{}).Count(&games).Error)
	assert.Zero(t, championships)
	assert.Zero(t, memberships)
	assert.Zero(t, pairings)
	assert.Zero(t, games)

	// Users survive the cascade
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 2, users)

	err = service.DeleteChampionship(championship.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestChampionshipSummaries(t *testing.T) {
	db := newTestDB(t)
	service := NewChampionshipService(db)
	pairingService := NewPairingService(db)
	roundService := NewRoundService(db)
	gameService := NewGameService(db)
	championship := createTestChampionship(t, db, "Spring Open")
	createTestChampionship(t, db, "Empty Cup")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")
	u3 := createTestUser(t, db, "ext-3", "User 3")
	u4 := createTestUser(t, db, "ext-4", "User 4")

	_, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID, u3.ID, u4.ID})
	require.NoError(t, err)
	_, err = roundService.AdvanceRound(championship.ID)
	require.NoError(t, err)

	var game models.Game
	require.NoError(t, db.First(&game).Error)
	_, err = gameService.RecordResult(models.GameResultRequest{
		GameExternalID:   game.ExternalID,
		WinnerExternalID: u1.ExternalID,
	})
	if err != nil {
		// u1 may not be in the first pairing after the shuffle
		var pairing models.Pairing
		require.NoError(t, db.First(&pairing, game.PairingID).Error)
		var winner models.User
		require.NoError(t, db.First(&winner, pairing.Player1ID).Error)
		_, err = gameService.RecordResult(models.GameResultRequest{
			GameExternalID:   game.ExternalID,
			WinnerExternalID: winner.ExternalID,
		})
		require.NoError(t, err)
	}

	summaries, err := service.GetChampionshipSummaries()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	full := summaries[0]
	assert.Equal(t, championship.ID, full.ID)
	assert.Equal(t, 1, full.CurrentRound)
	assert.EqualValues(t, 4, full.UserCount)
	assert.EqualValues(t, 2, full.PairingCount)
	assert.EqualValues(t, 2, full.TotalGames)
	assert.EqualValues(t, 1, full.FinishedGames)

	empty := summaries[1]
	assert.Equal(t, 0, empty.CurrentRound)
	assert.EqualValues(t, 0, empty.UserCount)
	assert.EqualValues(t, 0, empty.TotalGames)
}

func TestSetRosterStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewChampionshipService(db)
	pairingService := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")

	_, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.NoError(t, err)

	membership, err := service.SetRosterStatus(championship.ID, u1.ID, models.RosterEliminated)
	require.NoError(t, err)
	assert.Equal(t, models.RosterEliminated, membership.Status)

	var stored models.UserChampionship
	require.NoError(t, db.Where("championship_id = ? AND user_id = ?", championship.ID, u1.ID).
		First(&stored).Error)
	assert.Equal(t, models.RosterEliminated, stored.Status)

	_, err = service.SetRosterStatus(championship.ID, 999, models.RosterEliminated)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSetRosterStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	service := NewChampionshipService(db)
	pairingService := NewPairingService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")

	_, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.NoError(t, err)

	_, err = service.SetRosterStatus(championship.ID, u1.ID, "benched")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	var stored models.UserChampionship
	require.NoError(t, db.Where("championship_id = ? AND user_id = ?", championship.ID, u1.ID).
		First(&stored).Error)
	assert.Equal(t, models.RosterActive, stored.Status)
}
