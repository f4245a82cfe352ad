package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData creates demo users, two championships, pairings and a
// couple of played rounds with recorded results.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	users, err := f.generateUsers()
	if err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	championships, err := f.generateChampionships()
	if err != nil {
		return fmt.Errorf("failed to generate championships: %w", err)
	}

	pairings, err := f.generatePairings(championships[0], users)
	if err != nil {
		return fmt.Errorf("failed to generate pairings: %w", err)
	}

	if err := f.generateGames(pairings); err != nil {
		return fmt.Errorf("failed to generate games: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d users, %d championships and %d pairings with game history", len(users), len(championships), len(pairings))
	return nil
}

// externalID mimics the 24-char hex ids the upstream identity system mints.
func externalID() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:12])
}

func (f *Fixtures) generateUsers() ([]models.User, error) {
	fullnames := []string{
		"Alexandre Dupont", "Marie Lambert", "Julien Moreau", "Sophie Garnier",
		"Thomas Rousseau", "Camille Fontaine", "Nicolas Berger", "Laura Chevalier",
		"Antoine Lemoine", "Emma Perrot",
	}

	var users []models.User

	for i, fullname := range fullnames {
		photoURL := fmt.Sprintf("https://cdn.zehnly.example/avatars/%d.png", i+1)

		user := models.User{
			ExternalID: externalID(),
			Fullname:   fullname,
			PhotoURL:   &photoURL,
		}

		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	log.Printf("Created %d users", len(users))
	return users, nil
}

func (f *Fixtures) generateChampionships() ([]models.Championship, error) {
	now := time.Now()
	lastMonth := now.AddDate(0, -1, 0)

	championships := []models.Championship{
		{Name: "Spring Open", Status: models.ChampionshipActive, StartDate: &now},
		{Name: "Winter Classic", Status: models.ChampionshipInactive, StartDate: &lastMonth},
	}

	for i := range championships {
		if err := f.db.Create(&championships[i]).Error; err != nil {
			return nil, err
		}
	}

	log.Printf("Created %d championships", len(championships))
	return championships, nil
}

func (f *Fixtures) generatePairings(championship models.Championship, users []models.User) ([]models.Pairing, error) {
	var pairings []models.Pairing

	for _, user := range users {
		membership := models.UserChampionship{
			UserID:         user.ID,
			ChampionshipID: championship.ID,
			Status:         models.RosterActive,
		}
		if err := f.db.Create(&membership).Error; err != nil {
			return nil, err
		}
	}

	for i := 0; i+1 < len(users); i += 2 {
		pairing := models.Pairing{
			ChampionshipID: championship.ID,
			Player1ID:      users[i].ID,
			Player2ID:      users[i+1].ID,
			Status:         models.PairingActive,
		}
		if err := f.db.Create(&pairing).Error; err != nil {
			return nil, err
		}
		pairings = append(pairings, pairing)
	}

	log.Printf("Created %d pairings", len(pairings))
	return pairings, nil
}

func (f *Fixtures) generateGames(pairings []models.Pairing) error {
	gameCount := 0

	for _, pairing := range pairings {
		// Two finished rounds with random winners, one pending round
		for round := 1; round <= 3; round++ {
			game := models.Game{
				ExternalID:  externalID(),
				PairingID:   pairing.ID,
				RoundNumber: round,
				Started:     round < 3,
			}

			if round < 3 {
				winnerID := pairing.Player1ID
				winsColumn := "player1_wins"
				if rand.Intn(2) == 1 { // #nosec G404
					winnerID = pairing.Player2ID
					winsColumn = "player2_wins"
				}
				game.WinnerID = &winnerID
				game.IsFinished = true

				if err := f.db.Model(&models.Pairing{}).
					Where("id = ?", pairing.ID).
					Update(winsColumn, gorm.Expr(winsColumn+" + 1")).Error; err != nil {
					return err
				}
			}

			if err := f.db.Create(&game).Error; err != nil {
				return err
			}
			gameCount++
		}
	}

	log.Printf("Created %d games", gameCount)
	return nil
}

// ClearAllData wipes every fixture table in dependency order.
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	tables := []string{"games", "pairings", "user_championships", "championships", "users", "refresh_tokens"}
	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	log.Println("All fixture data cleared")
	return nil
}
