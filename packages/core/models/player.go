package models

import (
	"time"

	"gorm.io/gorm"
)

type Player struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName     string         `gorm:"size:255;not null;index:idx_players_name" json:"first_name"`
	LastName      string         `gorm:"size:255;not null;index:idx_players_name" json:"last_name"`
	Slug          string         `gorm:"size:255;index" json:"slug"`
	MatchesPlayed int            `gorm:"not null;default:0" json:"matches_played"`
	GoalsScored   int            `gorm:"not null;default:0" json:"goals_scored"`
	GoalsConceded int            `gorm:"not null;default:0" json:"goals_conceded"`
	MatchesWon    int            `gorm:"not null;default:0" json:"matches_won"`
	Points        int            `gorm:"not null;default:0;index" json:"points"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Player) TableName() string {
	return "players"
}

// FullName is the display name used by the league views.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

type PlayerRequest struct {
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name" binding:"required"`
}

type PlayerAddedResponse struct {
	PlayerAdded bool   `json:"player_added" example:"true"`
	ID          uint   `json:"id" example:"1"`
	FirstName   string `json:"first_name" example:"Ben"`
	LastName    string `json:"last_name" example:"Sunny"`
}

type PlayerDeletedResponse struct {
	PlayerDeleted bool   `json:"player_deleted" example:"true"`
	Removed       int64  `json:"removed" example:"1"`
	FirstName     string `json:"first_name" example:"Ben"`
	LastName      string `json:"last_name" example:"Sunny"`
}
