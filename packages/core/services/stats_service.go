package services

import (
	"fmt"

	"core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// GetChampionshipStats aggregates roster, pairing and game counters for a
// single championship, with games additionally bucketed per round.
func (s *StatsService) GetChampionshipStats(championshipID uint) (*models.ChampionshipStats, error) {
	championshipService := NewChampionshipService(s.db)
	championship, err := championshipService.GetChampionshipByID(championshipID)
	if err != nil {
		return nil, err
	}

	stats := &models.ChampionshipStats{
		Championship: models.ChampionshipStatsHeader{
			ID:     championship.ID,
			Name:   championship.Name,
			Status: championship.Status,
		},
		Games: models.GameStats{
			ByRound: make(map[string]int64),
		},
	}

	rosterQuery := s.db.Model(&models.UserChampionship{}).
		Where("championship_id = ?", championshipID)
	if err := rosterQuery.Count(&stats.Users.Total).Error; err != nil {
		return nil, err
	}
	if err := rosterQuery.Where("status = ?", models.RosterActive).
		Count(&stats.Users.Active).Error; err != nil {
		return nil, err
	}
	stats.Users.Eliminated = stats.Users.Total - stats.Users.Active

	pairingQuery := s.db.Model(&models.Pairing{}).
		Where("championship_id = ?", championshipID)
	if err := pairingQuery.Count(&stats.Pairings.Total).Error; err != nil {
		return nil, err
	}
	if err := pairingQuery.Where("status = ?", models.PairingActive).
		Count(&stats.Pairings.Active).Error; err != nil {
		return nil, err
	}
	stats.Pairings.Eliminated = stats.Pairings.Total - stats.Pairings.Active

	gamesQuery := s.db.Model(&models.Game{}).
		Joins("JOIN pairings ON pairings.id = games.pairing_id").
		Where("pairings.championship_id = ?", championshipID)
	if err := gamesQuery.Count(&stats.Games.Total).Error; err != nil {
		return nil, err
	}
	if err := gamesQuery.Where("games.is_finished = ?", true).
		Count(&stats.Games.Finished).Error; err != nil {
		return nil, err
	}
	stats.Games.Pending = stats.Games.Total - stats.Games.Finished

	type roundCount struct {
		RoundNumber int
		Count       int64
	}
	var rounds []roundCount
	err = s.db.Model(&models.Game{}).
		Select("games.round_number AS round_number, COUNT(*) AS count").
		Joins("JOIN pairings ON pairings.id = games.pairing_id").
		Where("pairings.championship_id = ?", championshipID).
		Group("games.round_number").
		Order("games.round_number ASC").
		Scan(&rounds).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rounds {
		stats.Games.ByRound[fmt.Sprintf("round_%d", r.RoundNumber)] = r.Count
	}

	return stats, nil
}
