package models

type Stats struct {
	TotalPlayers     int64 `json:"total_players"`
	TotalMatches     int64 `json:"total_matches"`
	PlayedMatches    int64 `json:"played_matches"`
	ScheduledMatches int64 `json:"scheduled_matches"`
	TotalGoals       int64 `json:"total_goals"`
}
