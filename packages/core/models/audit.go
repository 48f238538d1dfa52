package models

import "time"

// Discrepancy describes one counter that does not match the played matches.
type Discrepancy struct {
	PlayerID uint   `json:"player_id"`
	Name     string `json:"name"`
	Field    string `json:"field"`
	Stored   int    `json:"stored"`
	Expected int    `json:"expected"`
}

type AuditReport struct {
	CheckedAt      time.Time     `json:"checked_at"`
	PlayersChecked int           `json:"players_checked"`
	MatchesChecked int           `json:"matches_checked"`
	Discrepancies  []Discrepancy `json:"discrepancies"`
}

func (r AuditReport) Consistent() bool {
	return len(r.Discrepancies) == 0
}
