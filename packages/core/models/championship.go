package models

import (
	"time"
)

const (
	ChampionshipActive   = "active"
	ChampionshipInactive = "inactive"
)

type Championship struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Status    string     `gorm:"size:20;not null;default:active;check:status IN ('active', 'inactive')" json:"status"`
	StartDate *time.Time `json:"start_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationships
	Pairings          []Pairing          `gorm:"foreignKey:ChampionshipID;constraint:OnDelete:CASCADE" json:"pairings,omitempty"`
	UserChampionships []UserChampionship `gorm:"foreignKey:ChampionshipID;constraint:OnDelete:CASCADE" json:"user_championships,omitempty"`
}

func (Championship) TableName() string {
	return "championships"
}

// DTOs

type CreateChampionshipRequest struct {
	Name      string     `json:"name" binding:"required"`
	StartDate *time.Time `json:"start_date,omitempty"`
}

type UpdateChampionshipRequest struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// Responses

// ChampionshipSummary is the admin listing row: the championship plus its
// current round and roster/pairing/game counters computed on demand.
type ChampionshipSummary struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	CurrentRound  int    `json:"current_round"`
	UserCount     int64  `json:"user_count"`
	PairingCount  int64  `json:"pairing_count"`
	TotalGames    int64  `json:"total_games"`
	FinishedGames int64  `json:"finished_games"`
}

type ChampionshipStats struct {
	Championship ChampionshipStatsHeader `json:"championship"`
	Users        RosterStats             `json:"users"`
	Pairings     PairingStats            `json:"pairings"`
	Games        GameStats               `json:"games"`
}

type ChampionshipStatsHeader struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type RosterStats struct {
	Total      int64 `json:"total"`
	Active     int64 `json:"active"`
	Eliminated int64 `json:"eliminated"`
}

type PairingStats struct {
	Total      int64 `json:"total"`
	Active     int64 `json:"active"`
	Eliminated int64 `json:"eliminated"`
}

type GameStats struct {
	Total    int64            `json:"total"`
	Finished int64            `json:"finished"`
	Pending  int64            `json:"pending"`
	ByRound  map[string]int64 `json:"by_round"`
}
