package services

import (
	"errors"

	"core/apperr"
	"core/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db: db,
	}
}

func (s *UserService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		ExternalID: req.ExternalID,
		Fullname:   req.Fullname,
		PhotoURL:   req.PhotoURL,
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ConstraintViolation("a user with external id %s already exists", req.ExternalID)
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetUserByExternalID(externalID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("external_id = ?", externalID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserTournaments lists every championship the user is enrolled in,
// with both the championship status and the user's roster status.
func (s *UserService) GetUserTournaments(externalID string) ([]models.UserTournamentStatus, error) {
	user, err := s.GetUserByExternalID(externalID)
	if err != nil {
		return nil, err
	}

	var memberships []models.UserChampionship
	err = s.db.Preload("Championship").
		Where("user_id = ?", user.ID).
		Order("championship_id ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}

	tournaments := make([]models.UserTournamentStatus, 0, len(memberships))
	for _, membership := range memberships {
		tournaments = append(tournaments, models.UserTournamentStatus{
			ChampionshipID:     membership.ChampionshipID,
			ChampionshipName:   membership.Championship.Name,
			ChampionshipStatus: membership.Championship.Status,
			RosterStatus:       membership.Status,
		})
	}

	return tournaments, nil
}

// GetUserGames returns the user's game history across all championships,
// newest round first, with the opponent resolved from whichever pairing
// seat the user does not occupy.
func (s *UserService) GetUserGames(externalID string) ([]models.GameHistoryItem, error) {
	user, err := s.GetUserByExternalID(externalID)
	if err != nil {
		return nil, err
	}

	var games []models.Game
	err = s.db.Preload("Pairing.Player1").Preload("Pairing.Player2").
		Joins("JOIN pairings ON pairings.id = games.pairing_id").
		Where("pairings.player1_id = ? OR pairings.player2_id = ?", user.ID, user.ID).
		Order("games.round_number DESC, games.id DESC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}

	history := make([]models.GameHistoryItem, 0, len(games))
	for _, game := range games {
		opponent := game.Pairing.Player1
		if opponent.ID == user.ID {
			opponent = game.Pairing.Player2
		}

		item := models.GameHistoryItem{
			ID:             game.ID,
			ExternalID:     game.ExternalID,
			ChampionshipID: game.Pairing.ChampionshipID,
			RoundNumber:    game.RoundNumber,
			Opponent:       userSummary(opponent),
			Started:        game.Started,
			IsFinished:     game.IsFinished,
		}
		if game.IsFinished && game.WinnerID != nil {
			won := *game.WinnerID == user.ID
			item.Won = &won
		}

		history = append(history, item)
	}

	return history, nil
}
