package models

import (
	"time"
)

const (
	MatchStatusScheduled = "scheduled"
	MatchStatusPlayed    = "played"
)

type Match struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	HomePlayerID uint       `gorm:"not null;index" json:"home_player_id"`
	AwayPlayerID uint       `gorm:"not null;index" json:"away_player_id"`
	HomeGoals    int        `gorm:"not null;default:0" json:"home_goals"`
	AwayGoals    int        `gorm:"not null;default:0" json:"away_goals"`
	WinnerID     *uint      `gorm:"index" json:"winner_id"`
	Status       string     `gorm:"size:20;not null;default:scheduled;index" json:"status"` // scheduled, played
	PlayedAt     *time.Time `json:"played_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relationships
	HomePlayer Player  `gorm:"foreignKey:HomePlayerID;references:ID" json:"home_player,omitempty"`
	AwayPlayer Player  `gorm:"foreignKey:AwayPlayerID;references:ID" json:"away_player,omitempty"`
	Winner     *Player `gorm:"foreignKey:WinnerID;references:ID" json:"winner,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

func (m Match) IsPlayed() bool {
	return m.Status == MatchStatusPlayed
}

// WinnerName returns the winner's full name, or "NULL" while the match is scheduled.
func (m Match) WinnerName() string {
	if m.WinnerID == nil {
		return "NULL"
	}
	switch *m.WinnerID {
	case m.HomePlayerID:
		return m.HomePlayer.FullName()
	case m.AwayPlayerID:
		return m.AwayPlayer.FullName()
	}
	if m.Winner != nil {
		return m.Winner.FullName()
	}
	return "NULL"
}

type RecordResultRequest struct {
	MatchID   uint `json:"match_id" binding:"required"`
	HomeGoals *int `json:"home_goals" binding:"required,min=0,max=10"`
	AwayGoals *int `json:"away_goals" binding:"required,min=0,max=10"`
}

type ResultAddedResponse struct {
	ResultAdded bool   `json:"result_added" example:"true"`
	MatchID     uint   `json:"match_id" example:"1"`
	WinnerID    uint   `json:"winner_id" example:"2"`
	Winner      string `json:"winner" example:"Jack New"`
}
