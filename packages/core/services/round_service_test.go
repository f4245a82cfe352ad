package services

import (
	"errors"
	"testing"

	"core/apperr"
	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAdvanceRoundFirstRound(t *testing.T) {
	db := newTestDB(t)
	pairingService := NewPairingService(db)
	service := NewRoundService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")
	u3 := createTestUser(t, db, "ext-3", "User 3")
	u4 := createTestUser(t, db, "ext-4", "User 4")

	_, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID, u3.ID, u4.ID})
	require.NoError(t, err)

	response, err := service.AdvanceRound(championship.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, response.PreviousRound)
	assert.Equal(t, 1, response.CurrentRound)
	assert.Equal(t, 0, response.ForfeitedGames)
	assert.Equal(t, 2, response.NewGamesCreated)

	var games []models.Game
	require.NoError(t, db.Find(&games).Error)
	require.Len(t, games, 2)
	for _, game := range games {
		assert.Equal(t, 1, game.RoundNumber)
		assert.False(t, game.Started)
		assert.False(t, game.IsFinished)
		assert.NotEmpty(t, game.ExternalID)
	}
}

func TestAdvanceRoundForfeitsPendingGames(t *testing.T) {
	db := newTestDB(t)
	pairingService := NewPairingService(db)
	gameService := NewGameService(db)
	service := NewRoundService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")
	u3 := createTestUser(t, db, "ext-3", "User 3")
	u4 := createTestUser(t, db, "ext-4", "User 4")

	_, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID, u3.ID, u4.ID})
	require.NoError(t, err)

	_, err = service.AdvanceRound(championship.ID)
	require.NoError(t, err)

	// Record a result for one of the two round-1 games
	var games []models.Game
	require.NoError(t, db.Preload("Pairing").Find(&games).Error)
	require.Len(t, games, 2)

	played := games[0]
	winner := models.User{}
	require.NoError(t, db.First(&winner, played.Pairing.Player1ID).Error)

	_, err = gameService.RecordResult(models.GameResultRequest{
		GameExternalID:   played.ExternalID,
		WinnerExternalID: winner.ExternalID,
	})
	require.NoError(t, err)

	response, err := service.AdvanceRound(championship.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, response.PreviousRound)
	assert.Equal(t, 2, response.CurrentRound)
	assert.Equal(t, 1, response.ForfeitedGames)
	assert.Equal(t, 2, response.NewGamesCreated)

	// The forfeited game is finished with no winner
	var forfeited models.Game
	require.NoError(t, db.First(&forfeited, games[1].ID).Error)
	assert.True(t, forfeited.IsFinished)
	assert.Nil(t, forfeited.WinnerID)

	// The recorded result was not touched
	var recorded models.Game
	require.NoError(t, db.First(&recorded, played.ID).Error)
	require.NotNil(t, recorded.WinnerID)
	assert.Equal(t, winner.ID, *recorded.WinnerID)

	// A forfeit moves neither win tally
	var forfeitedPairing models.Pairing
	require.NoError(t, db.First(&forfeitedPairing, games[1].PairingID).Error)
	assert.Equal(t, 0, forfeitedPairing.Player1Wins)
	assert.Equal(t, 0, forfeitedPairing.Player2Wins)
}

func TestAdvanceRoundSkipsEliminatedPairings(t *testing.T) {
	db := newTestDB(t)
	pairingService := NewPairingService(db)
	service := NewRoundService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")
	u3 := createTestUser(t, db, "ext-3", "User 3")
	u4 := createTestUser(t, db, "ext-4", "User 4")

	generated, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID, u3.ID, u4.ID})
	require.NoError(t, err)

	_, err = pairingService.UpdatePairingStatus(generated.GeneratedPairings[0].ID, models.PairingEliminated)
	require.NoError(t, err)

	response, err := service.AdvanceRound(championship.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, response.NewGamesCreated)

	var games []models.Game
	require.NoError(t, db.Find(&games).Error)
	require.Len(t, games, 1)
	assert.Equal(t, generated.GeneratedPairings[1].ID, games[0].PairingID)
}

func TestAdvanceRoundRepeatedly(t *testing.T) {
	db := newTestDB(t)
	pairingService := NewPairingService(db)
	service := NewRoundService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")

	_, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.NoError(t, err)

	for round := 1; round <= 3; round++ {
		response, err := service.AdvanceRound(championship.ID)
		require.NoError(t, err)
		assert.Equal(t, round, response.CurrentRound)
	}

	// Round 1 and 2 games were forfeited on the way, round 3 is open
	var finished, open int64
	require.NoError(t, db.Model(&models.Game{}).Where("is_finished = ?", true).Count(&finished).Error)
	require.NoError(t, db.Model(&models.Game{}).Where("is_finished = ?", false).Count(&open).Error)
	assert.EqualValues(t, 2, finished)
	assert.EqualValues(t, 1, open)

	current, err := service.CurrentRound(championship.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, current)
}

func TestDuplicateRoundGameRejectedByIndex(t *testing.T) {
	db := newTestDB(t)
	pairingService := NewPairingService(db)
	roundService := NewRoundService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	u1 := createTestUser(t, db, "ext-1", "User 1")
	u2 := createTestUser(t, db, "ext-2", "User 2")

	_, err := pairingService.GeneratePairings(championship.ID, []uint{u1.ID, u2.ID})
	require.NoError(t, err)
	_, err = roundService.AdvanceRound(championship.ID)
	require.NoError(t, err)

	var game models.Game
	require.NoError(t, db.First(&game).Error)

	// A second round-1 game for the same pairing must die on the unique
	// index. This is what fails the loser if two advances ever race.
	dup := models.Game{
		ExternalID:  "some-other-match-id",
		PairingID:   game.PairingID,
		RoundNumber: game.RoundNumber,
	}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	var count int64
	require.NoError(t, db.Model(&models.Game{}).
		Where("pairing_id = ? AND round_number = ?", game.PairingID, game.RoundNumber).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAdvanceRoundChampionshipNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewRoundService(db)

	_, err := service.AdvanceRound(999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCurrentRoundEmptyChampionship(t *testing.T) {
	db := newTestDB(t)
	service := NewRoundService(db)
	championship := createTestChampionship(t, db, "Spring Open")

	current, err := service.CurrentRound(championship.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, current)
}
