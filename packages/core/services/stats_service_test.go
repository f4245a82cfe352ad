package services

import (
	"testing"

	"core/apperr"
	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampionshipStats(t *testing.T) {
	db := newTestDB(t)
	service := NewStatsService(db)
	pairingService := NewPairingService(db)
	roundService := NewRoundService(db)
	gameService := NewGameService(db)
	championshipService := NewChampionshipService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")
	u3 := createTestUser(t, db, "ext-3", "User 3")
	u4 := createTestUser(t, db, "ext-4", "User 4")

	generated, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID, u3.ID, u4.ID})
	require.NoError(t, err)

	// Play round 1 to completion for one pairing, then advance twice so
	// round 2 is fully forfeited and round 3 is open
	_, err = roundService.AdvanceRound(championship.ID)
	require.NoError(t, err)

	var round1 []models.Game
	require.NoError(t, db.Where("round_number = ?", 1).Preload("Pairing").Find(&round1).Error)
	require.Len(t, round1, 2)

	var winner models.User
	require.NoError(t, db.First(&winner, round1[0].Pairing.Player1ID).Error)
	_, err = gameService.RecordResult(models.GameResultRequest{
		GameExternalID:   round1[0].ExternalID,
		WinnerExternalID: winner.ExternalID,
	})
	require.NoError(t, err)

	_, err = roundService.AdvanceRound(championship.ID)
	require.NoError(t, err)
	_, err = roundService.AdvanceRound(championship.ID)
	require.NoError(t, err)

	_, err = pairingService.UpdatePairingStatus(generated.GeneratedPairings[0].ID, models.PairingEliminated)
	require.NoError(t, err)
	_, err = championshipService.SetRosterStatus(championship.ID, u1.ID, models.RosterEliminated)
	require.NoError(t, err)

	stats, err := service.GetChampionshipStats(championship.ID)
	require.NoError(t, err)

	assert.Equal(t, championship.ID, stats.Championship.ID)
	assert.Equal(t, "Spring Open", stats.Championship.Name)

	assert.EqualValues(t, 4, stats.Users.Total)
	assert.EqualValues(t, 3, stats.Users.Active)
	assert.EqualValues(t, 1, stats.Users.Eliminated)

	assert.EqualValues(t, 2, stats.Pairings.Total)
	assert.EqualValues(t, 1, stats.Pairings.Active)
	assert.EqualValues(t, 1, stats.Pairings.Eliminated)

	// 2 games in round 1, 2 in round 2, 2 in round 3
	assert.EqualValues(t, 6, stats.Games.Total)
	assert.EqualValues(t, 4, stats.Games.Finished)
	assert.EqualValues(t, 2, stats.Games.Pending)
	assert.EqualValues(t, 2, stats.Games.ByRound["round_1"])
	assert.EqualValues(t, 2, stats.Games.ByRound["round_2"])
	assert.EqualValues(t, 2, stats.Games.ByRound["round_3"])
}

func TestChampionshipStatsNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewStatsService(db)

	_, err := service.GetChampionshipStats(999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
