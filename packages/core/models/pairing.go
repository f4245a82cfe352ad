package models

import (
	"time"
)

const (
	PairingActive     = "active"
	PairingEliminated = "eliminated"
)

// Pairing is the persistent two-player series within one championship. It
// spans every round the two players face each other; individual rounds are
// Games owned by the pairing.
type Pairing struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChampionshipID uint      `gorm:"not null;uniqueIndex:uniq_championship_pairing" json:"championship_id"`
	Player1ID      uint      `gorm:"not null;uniqueIndex:uniq_championship_pairing" json:"player1_id"`
	Player2ID      uint      `gorm:"not null;uniqueIndex:uniq_championship_pairing;check:chk_distinct_players,player1_id <> player2_id" json:"player2_id"`
	Player1Wins    int       `gorm:"not null;default:0" json:"player1_wins"`
	Player2Wins    int       `gorm:"not null;default:0" json:"player2_wins"`
	Status         string    `gorm:"size:20;not null;default:active;check:status IN ('active', 'eliminated')" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Championship Championship `gorm:"foreignKey:ChampionshipID;references:ID" json:"championship,omitempty"`
	Player1      User         `gorm:"foreignKey:Player1ID;references:ID" json:"player1,omitempty"`
	Player2      User         `gorm:"foreignKey:Player2ID;references:ID" json:"player2,omitempty"`
	Games        []Game       `gorm:"foreignKey:PairingID;constraint:OnDelete:CASCADE" json:"games,omitempty"`
}

func (Pairing) TableName() string {
	return "pairings"
}

// DTOs

type GeneratePairingsRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required"`
}

type UpdatePairingRequest struct {
	Status string `json:"status" binding:"required,oneof=active eliminated"`
}

// Responses

// PairingItem is the read shape for a pairing: players with their photos,
// the running tallies, and total_games = sum of both win counters (forfeits
// score for neither side, so they are not included).
type PairingItem struct {
	ID          uint        `json:"id"`
	Player1     UserSummary `json:"player1"`
	Player2     UserSummary `json:"player2"`
	Player1Wins int         `json:"player1_wins"`
	Player2Wins int         `json:"player2_wins"`
	TotalGames  int         `json:"total_games"`
	Status      string      `json:"status"`
}

type GeneratedPairing struct {
	ID             uint        `json:"id"`
	ChampionshipID uint        `json:"championship_id"`
	Player1        UserSummary `json:"player1"`
	Player2        UserSummary `json:"player2"`
	Status         string      `json:"status"`
}

type UnpairedUser struct {
	ID       uint   `json:"id"`
	Fullname string `json:"fullname"`
	Reason   string `json:"reason"`
}

type GeneratePairingsResponse struct {
	GeneratedPairings []GeneratedPairing `json:"generated_pairings"`
	UnpairedUsers     []UnpairedUser     `json:"unpaired_users"`
}
