package services

import (
	"errors"

	"core/apperr"
	"core/models"

	"gorm.io/gorm"
)

type ChampionshipService struct {
	db *gorm.DB
}

func NewChampionshipService(db *gorm.DB) *ChampionshipService {
	return &ChampionshipService{
		db: db,
	}
}

func (s *ChampionshipService) CreateChampionship(req models.CreateChampionshipRequest) (*models.Championship, error) {
	championship := &models.Championship{
		Name:      req.Name,
		Status:    models.ChampionshipActive,
		StartDate: req.StartDate,
	}

	if err := s.db.Create(championship).Error; err != nil {
		return nil, err
	}

	return championship, nil
}

func (s *ChampionshipService) GetChampionshipByID(id uint) (*models.Championship, error) {
	var championship models.Championship

	if err := s.db.First(&championship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("championship not found")
		}
		return nil, err
	}

	return &championship, nil
}

func (s *ChampionshipService) GetAllChampionships() ([]models.Championship, error) {
	var championships []models.Championship
	if err := s.db.Order("id ASC").Find(&championships).Error; err != nil {
		return nil, err
	}
	return championships, nil
}

// GetChampionshipSummaries is the admin listing: every championship with its
// current round and roster/pairing/game counters, computed by scanning the
// store (there is no derived index to keep in sync).
func (s *ChampionshipService) GetChampionshipSummaries() ([]models.ChampionshipSummary, error) {
	championships, err := s.GetAllChampionships()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ChampionshipSummary, 0, len(championships))
	for _, championship := range championships {
		summary := models.ChampionshipSummary{
			ID:     championship.ID,
			Name:   championship.Name,
			Status: championship.Status,
		}

		currentRound, err := currentRoundInTx(s.db, championship.ID)
		if err != nil {
			return nil, err
		}
		summary.CurrentRound = currentRound

		if err := s.db.Model(&models.UserChampionship{}).
			Where("championship_id = ?", championship.ID).
			Count(&summary.UserCount).Error; err != nil {
			return nil, err
		}

		if err := s.db.Model(&models.Pairing{}).
			Where("championship_id = ?", championship.ID).
			Count(&summary.PairingCount).Error; err != nil {
			return nil, err
		}

		gamesQuery := s.db.Model(&models.Game{}).
			Joins("JOIN pairings ON pairings.id = games.pairing_id").
			Where("pairings.championship_id = ?", championship.ID)
		if err := gamesQuery.Count(&summary.TotalGames).Error; err != nil {
			return nil, err
		}
		if err := gamesQuery.Where("games.is_finished = ?", true).
			Count(&summary.FinishedGames).Error; err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *ChampionshipService) UpdateChampionship(id uint, req models.UpdateChampionshipRequest) (*models.Championship, error) {
	championship, err := s.GetChampionshipByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(championship).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetChampionshipByID(id)
}

// DeleteChampionship removes a championship; pairings, games and roster
// memberships go with it through the ON DELETE CASCADE constraints.
func (s *ChampionshipService) DeleteChampionship(id uint) error {
	result := s.db.Delete(&models.Championship{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperr.NotFound("championship not found")
	}

	return nil
}

// SetRosterStatus is the administrative elimination action for a roster
// membership. Roster elimination never cascades automatically from game
// outcomes; an admin decides.
func (s *ChampionshipService) SetRosterStatus(championshipID, userID uint, status string) (*models.UserChampionship, error) {
	if status != models.RosterActive && status != models.RosterEliminated {
		return nil, apperr.InvalidInput(
			"status must be %s or %s", models.RosterActive, models.RosterEliminated)
	}

	var membership models.UserChampionship
	err := s.db.Where("championship_id = ? AND user_id = ?", championshipID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user is not on this championship's roster")
		}
		return nil, err
	}

	if err := s.db.Model(&membership).Update("status", status).Error; err != nil {
		return nil, err
	}

	return &membership, nil
}
