package models

import (
	"time"
)

// Game is one round's match within a pairing. It is created with a
// locally-minted placeholder external_id and started = false; the external
// match-execution system claims it through the start handshake, which swaps
// in the real external id and flips started. A finished game is terminal:
// winner_id is set by result recording, or left NULL by a forfeit.
type Game struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID  string    `gorm:"size:255;uniqueIndex;not null" json:"external_id"`
	PairingID   uint      `gorm:"not null;uniqueIndex:uniq_pairing_round" json:"pairing_id"`
	RoundNumber int       `gorm:"not null;uniqueIndex:uniq_pairing_round;check:round_number > 0" json:"round_number"`
	WinnerID    *uint     `json:"winner_id"`
	Started     bool      `gorm:"not null;default:false" json:"started"`
	IsFinished  bool      `gorm:"not null;default:false" json:"is_finished"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Pairing Pairing `gorm:"foreignKey:PairingID;references:ID" json:"pairing,omitempty"`
	Winner  *User   `gorm:"foreignKey:WinnerID;references:ID" json:"winner,omitempty"`
}

func (Game) TableName() string {
	return "games"
}

// DTOs

// StartGameRequest is sent by the external match system when a match between
// two players begins. ExternalID is the id that system minted for the match.
type StartGameRequest struct {
	Player1ExternalID string `json:"player1_external_id" binding:"required"`
	Player2ExternalID string `json:"player2_external_id" binding:"required"`
	ExternalID        string `json:"external_id" binding:"required"`
}

type GameResultRequest struct {
	GameExternalID   string `json:"game_external_id" binding:"required"`
	WinnerExternalID string `json:"winner_external_id" binding:"required"`
}

// Responses

type GameResultResponse struct {
	Game        Game `json:"game"`
	Player1Wins int  `json:"player1_wins"`
	Player2Wins int  `json:"player2_wins"`
}

type AdvanceRoundResponse struct {
	ChampionshipID  uint   `json:"championship_id"`
	PreviousRound   int    `json:"previous_round"`
	CurrentRound    int    `json:"current_round"`
	ForfeitedGames  int    `json:"forfeited_games"`
	NewGamesCreated int    `json:"new_games_created"`
	Message         string `json:"message"`
}

// GameHistoryItem is a row of a user's game history, with enough pairing
// context to render it without further lookups.
type GameHistoryItem struct {
	ID             uint        `json:"id"`
	ExternalID     string      `json:"external_id"`
	ChampionshipID uint        `json:"championship_id"`
	RoundNumber    int         `json:"round_number"`
	Opponent       UserSummary `json:"opponent"`
	Started        bool        `json:"started"`
	IsFinished     bool        `json:"is_finished"`
	Won            *bool       `json:"won"` // nil while unresolved or forfeited
}
