package services

import (
	"errors"

	"core/apperr"
	"core/models"

	"gorm.io/gorm"
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{
		db: db,
	}
}

// RecordResult records the outcome of a single game, addressed by the
// external identifiers the match system knows. This is the only path that
// increments pairing win counters, and a finished game is final: the guarded
// update makes a second recording (or the loser of a race) fail with
// AlreadyFinished instead of double-counting.
func (s *GameService) RecordResult(req models.GameResultRequest) (*models.GameResultResponse, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var game models.Game
	if err := tx.Where("external_id = ?", req.GameExternalID).First(&game).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("game not found")
		}
		return nil, err
	}

	if game.IsFinished {
		tx.Rollback()
		return nil, apperr.AlreadyFinished("game result has already been recorded")
	}

	var winner models.User
	if err := tx.Where("external_id = ?", req.WinnerExternalID).First(&winner).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("winner not found")
		}
		return nil, err
	}

	var pairing models.Pairing
	if err := tx.First(&pairing, game.PairingID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if winner.ID != pairing.Player1ID && winner.ID != pairing.Player2ID {
		tx.Rollback()
		return nil, apperr.InvalidWinner("winner must be one of the pairing's players")
	}

	// Finish the game only if nobody beat us to it.
	finish := tx.Model(&models.Game{}).
		Where("id = ? AND is_finished = ?", game.ID, false).
		Updates(map[string]interface{}{
			"winner_id":   winner.ID,
			"is_finished": true,
		})
	if finish.Error != nil {
		tx.Rollback()
		return nil, finish.Error
	}
	if finish.RowsAffected == 0 {
		tx.Rollback()
		return nil, apperr.AlreadyFinished("game result has already been recorded")
	}

	winsColumn := "player1_wins"
	if winner.ID == pairing.Player2ID {
		winsColumn = "player2_wins"
	}
	if err := tx.Model(&models.Pairing{}).
		Where("id = ?", pairing.ID).
		Update(winsColumn, gorm.Expr(winsColumn+" + 1")).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&game, game.ID).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&pairing, pairing.ID).Error; err != nil {
		return nil, err
	}

	return &models.GameResultResponse{
		Game:        game,
		Player1Wins: pairing.Player1Wins,
		Player2Wins: pairing.Player2Wins,
	}, nil
}

// StartGame is the start-of-match handshake. The external match system names
// the two players and the match id it minted; we resolve their active pairing,
// take its pending game and claim it by swapping the placeholder external id
// for the real one and flipping started. Re-claiming an already-started game
// returns it unchanged so the handshake can be retried safely.
func (s *GameService) StartGame(req models.StartGameRequest) (*models.Game, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	player1, err := userByExternalID(tx, req.Player1ExternalID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	player2, err := userByExternalID(tx, req.Player2ExternalID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	var pairing models.Pairing
	err = tx.Where(
		"((player1_id = ? AND player2_id = ?) OR (player1_id = ? AND player2_id = ?)) AND status = ?",
		player1.ID, player2.ID, player2.ID, player1.ID, models.PairingActive,
	).Where("championship_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.Championship{}).
			Select("id").
			Where("status = ?", models.ChampionshipActive)).
		First(&pairing).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no active pairing between these players")
		}
		return nil, err
	}

	var game models.Game
	err = tx.Where("pairing_id = ? AND is_finished = ?", pairing.ID, false).
		Order("round_number DESC").
		First(&game).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no pending game for this pairing")
		}
		return nil, err
	}

	if game.Started {
		tx.Rollback()
		return &game, nil
	}

	if err := tx.Model(&game).Updates(map[string]interface{}{
		"external_id": req.ExternalID,
		"started":     true,
	}).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ConstraintViolation("external id %s is already in use", req.ExternalID)
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	game.ExternalID = req.ExternalID
	game.Started = true
	return &game, nil
}

func (s *GameService) GetGameByID(id uint) (*models.Game, error) {
	var game models.Game
	err := s.db.Preload("Pairing.Player1").
		Preload("Pairing.Player2").
		Preload("Winner").
		First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("game not found")
		}
		return nil, err
	}
	return &game, nil
}

func (s *GameService) GetGameByExternalID(externalID string) (*models.Game, error) {
	var game models.Game
	err := s.db.Preload("Pairing.Player1").
		Preload("Pairing.Player2").
		Preload("Winner").
		Where("external_id = ?", externalID).
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("game not found")
		}
		return nil, err
	}
	return &game, nil
}

func userByExternalID(db *gorm.DB, externalID string) (*models.User, error) {
	var user models.User
	if err := db.Where("external_id = ?", externalID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user %s not found", externalID)
		}
		return nil, err
	}
	return &user, nil
}
