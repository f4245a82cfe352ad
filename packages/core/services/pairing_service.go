package services

import (
	"errors"
	"math/rand/v2"

	"core/apperr"
	"core/models"

	"gorm.io/gorm"
)

type PairingService struct {
	db *gorm.DB
}

func NewPairingService(db *gorm.DB) *PairingService {
	return &PairingService{
		db: db,
	}
}

// GeneratePairings enrolls the given users in the championship roster and
// matches them two by two in uniformly random order. Enrollment is
// idempotent; pairing creation is not. Asking for a pairing that already
// exists (in either seat order) fails the whole invocation. With an odd
// input, the last shuffled user is reported unpaired.
func (s *PairingService) GeneratePairings(championshipID uint, userIDs []uint) (*models.GeneratePairingsResponse, error) {
	ids := dedupeIDs(userIDs)

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

	var users []models.User
	if len(ids) > 0 {
		if err := tx.Where("id IN ?", ids).Find(&users).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if len(users) != len(ids) {
		tx.Rollback()
		return nil, apperr.NotFound("some users not found")
	}

	// Add users to the championship roster. Re-adding is a no-op.
	for _, user := range users {
		var existing models.UserChampionship
		err := tx.Where("user_id = ? AND championship_id = ?", user.ID, championshipID).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return nil, err
		}

		membership := models.UserChampionship{
			UserID:         user.ID,
			ChampionshipID: championshipID,
			Status:         models.RosterActive,
		}
		if err := tx.Create(&membership).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	shuffled := make([]models.User, len(users))
	copy(shuffled, users)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	response := &models.GeneratePairingsResponse{
		GeneratedPairings: []models.GeneratedPairing{},
		UnpairedUsers:     []models.UnpairedUser{},
	}

	for i := 0; i+1 < len(shuffled); i += 2 {
		player1 := shuffled[i]
		player2 := shuffled[i+1]

		// The unique index only covers one seat order; check both.
		var existing models.Pairing
		err := tx.Where(
			"championship_id = ? AND ((player1_id = ? AND player2_id = ?) OR (player1_id = ? AND player2_id = ?))",
			championshipID, player1.ID, player2.ID, player2.ID, player1.ID,
		).First(&existing).Error
		if err == nil {
			tx.Rollback()
			return nil, apperr.ConstraintViolation(
				"pairing between %s and %s already exists in this championship",
				player1.Fullname, player2.Fullname)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return nil, err
		}

		pairing := models.Pairing{
			ChampionshipID: championshipID,
			Player1ID:      player1.ID,
			Player2ID:      player2.ID,
			Status:         models.PairingActive,
		}
		if err := tx.Create(&pairing).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperr.ConstraintViolation(
					"pairing between %s and %s already exists in this championship",
					player1.Fullname, player2.Fullname)
			}
			return nil, err
		}

		response.GeneratedPairings = append(response.GeneratedPairings, models.GeneratedPairing{
			ID:             pairing.ID,
			ChampionshipID: championshipID,
			Player1:        userSummary(player1),
			Player2:        userSummary(player2),
			Status:         pairing.Status,
		})
	}

	if len(shuffled)%2 == 1 {
		leftover := shuffled[len(shuffled)-1]
		response.UnpairedUsers = append(response.UnpairedUsers, models.UnpairedUser{
			ID:       leftover.ID,
			Fullname: leftover.Fullname,
			Reason:   "Odd number of users",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return response, nil
}

func (s *PairingService) GetPairingByID(id uint) (*models.PairingItem, error) {
	var pairing models.Pairing
	err := s.db.Preload("Player1").Preload("Player2").First(&pairing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("pairing not found")
		}
		return nil, err
	}

	item := pairingItem(pairing)
	return &item, nil
}

func (s *PairingService) GetChampionshipPairings(championshipID uint) ([]models.PairingItem, error) {
	var championship models.Championship
	if err := s.db.First(&championship, championshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("championship not found")
		}
		return nil, err
	}

	var pairings []models.Pairing
	if err := s.db.Where("championship_id = ?", championshipID).
		Preload("Player1").
		Preload("Player2").
		Order("id ASC").
		Find(&pairings).Error; err != nil {
		return nil, err
	}

	items := make([]models.PairingItem, len(pairings))
	for i, pairing := range pairings {
		items[i] = pairingItem(pairing)
	}

	return items, nil
}

// UpdatePairingStatus is the administrative elimination action. Eliminated
// pairings stop receiving games on round advancement.
func (s *PairingService) UpdatePairingStatus(id uint, status string) (*models.PairingItem, error) {
	if status != models.PairingActive && status != models.PairingEliminated {
		return nil, apperr.InvalidInput(
			"status must be %s or %s", models.PairingActive, models.PairingEliminated)
	}

	var pairing models.Pairing
	if err := s.db.First(&pairing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("pairing not found")
		}
		return nil, err
	}

	if err := s.db.Model(&pairing).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.GetPairingByID(id)
}

func pairingItem(pairing models.Pairing) models.PairingItem {
	return models.PairingItem{
		ID:          pairing.ID,
		Player1:     userSummary(pairing.Player1),
		Player2:     userSummary(pairing.Player2),
		Player1Wins: pairing.Player1Wins,
		Player2Wins: pairing.Player2Wins,
		TotalGames:  pairing.Player1Wins + pairing.Player2Wins,
		Status:      pairing.Status,
	}
}

func userSummary(user models.User) models.UserSummary {
	return models.UserSummary{
		ID:       user.ID,
		Fullname: user.Fullname,
		PhotoURL: user.PhotoURL,
	}
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
