package models

import (
	"time"
)

const (
	RosterActive     = "active"
	RosterEliminated = "eliminated"
)

// User is a tournament participant. Identity lives in an upstream system;
// external_id is the stable handle that system addresses users by.
type User struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID string    `gorm:"size:255;uniqueIndex;not null" json:"external_id"`
	Fullname   string    `gorm:"size:255;not null" json:"fullname"`
	PhotoURL   *string   `gorm:"size:512" json:"photo_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	UserChampionships []UserChampionship `gorm:"foreignKey:UserID" json:"user_championships,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserChampionship is a roster membership: one user's enrollment in one
// championship, carrying whether they are still live in that bracket.
type UserChampionship struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:uniq_user_championship" json:"user_id"`
	ChampionshipID uint      `gorm:"not null;uniqueIndex:uniq_user_championship" json:"championship_id"`
	Status         string    `gorm:"size:20;not null;default:active;check:status IN ('active', 'eliminated')" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	User         User         `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Championship Championship `gorm:"foreignKey:ChampionshipID;references:ID" json:"championship,omitempty"`
}

func (UserChampionship) TableName() string {
	return "user_championships"
}

// DTOs

type UpdateRosterStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active eliminated"`
}

type CreateUserRequest struct {
	ExternalID string  `json:"external_id" binding:"required"`
	Fullname   string  `json:"fullname" binding:"required"`
	PhotoURL   *string `json:"photo_url,omitempty"`
}

// Responses

type UserSummary struct {
	ID       uint    `json:"id"`
	Fullname string  `json:"fullname"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// UserTournamentStatus reports one user's standing in one championship.
type UserTournamentStatus struct {
	ChampionshipID     uint   `json:"championship_id"`
	ChampionshipName   string `json:"championship_name"`
	ChampionshipStatus string `json:"championship_status"`
	RosterStatus       string `json:"roster_status"`
}
