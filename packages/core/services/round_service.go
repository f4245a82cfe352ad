package services

import (
	"errors"
	"fmt"

	"core/apperr"
	"core/models"

	"gorm.io/gorm"
)

type RoundService struct {
	db *gorm.DB
}

func NewRoundService(db *gorm.DB) *RoundService {
	return &RoundService{
		db: db,
	}
}

// AdvanceRound moves a championship from its current round R to R+1. Every
// unfinished round-R game is forfeited (finished with no winner, so neither
// tally moves) and every still-active pairing gets exactly one new game at
// round R+1. The whole transition is one transaction; the unique index on
// (pairing_id, round_number) fails the loser if two advances race.
func (s *RoundService) AdvanceRound(championshipID uint) (*models.AdvanceRoundResponse, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var championship models.Championship
	if err := tx.First(&championship, championshipID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("championship not found")
		}
		return nil, err
	}

	currentRound, err := currentRoundInTx(tx, championshipID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	nextRound := currentRound + 1

	// Forfeit whatever is still open in the current round. The guard on
	// is_finished keeps already-recorded results untouched.
	forfeit := tx.Model(&models.Game{}).
		Where("pairing_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&models.Pairing{}).
				Select("id").
				Where("championship_id = ?", championshipID)).
		Where("round_number = ? AND is_finished = ?", currentRound, false).
		Updates(map[string]interface{}{
			"winner_id":   nil,
			"is_finished": true,
		})
	if forfeit.Error != nil {
		tx.Rollback()
		return nil, forfeit.Error
	}
	forfeitedCount := int(forfeit.RowsAffected)

	var pairings []models.Pairing
	if err := tx.Where("championship_id = ? AND status = ?", championshipID, models.PairingActive).
		Find(&pairings).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	newGamesCount := 0
	for _, pairing := range pairings {
		game := models.Game{
			ExternalID:  placeholderExternalID(championshipID, pairing.ID, nextRound),
			PairingID:   pairing.ID,
			RoundNumber: nextRound,
			Started:     false,
			IsFinished:  false,
		}
		if err := tx.Create(&game).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperr.ConstraintViolation(
					"round %d already has a game for pairing %d", nextRound, pairing.ID)
			}
			return nil, err
		}
		newGamesCount++
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &models.AdvanceRoundResponse{
		ChampionshipID:  championshipID,
		PreviousRound:   currentRound,
		CurrentRound:    nextRound,
		ForfeitedGames:  forfeitedCount,
		NewGamesCreated: newGamesCount,
		Message: fmt.Sprintf(
			"Advanced to round %d. %d pending games marked as forfeited (both players lose).",
			nextRound, forfeitedCount),
	}, nil
}

// CurrentRound returns the highest round number across the championship's
// games, 0 if none have been created yet.
func (s *RoundService) CurrentRound(championshipID uint) (int, error) {
	return currentRoundInTx(s.db, championshipID)
}

func currentRoundInTx(db *gorm.DB, championshipID uint) (int, error) {
	var round *int
	err := db.Model(&models.Game{}).
		Select("MAX(round_number)").
		Where("pairing_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Model(&models.Pairing{}).
				Select("id").
				Where("championship_id = ?", championshipID)).
		Scan(&round).Error
	if err != nil {
		return 0, err
	}
	if round == nil {
		return 0, nil
	}
	return *round, nil
}

// Placeholder until the external match system claims the game through the
// start handshake.
func placeholderExternalID(championshipID, pairingID uint, round int) string {
	return fmt.Sprintf("game_%d_%d_%d", championshipID, pairingID, round)
}
