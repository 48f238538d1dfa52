package services

import (
	"context"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/store"
)

type StatsService struct {
	store *store.Store
}

func NewStatsService(s *store.Store) *StatsService {
	return &StatsService{
		store: s,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	db := s.store.DB().WithContext(ctx)

	var totalPlayers int64
	var totalMatches int64
	var playedMatches int64

	// Count registered players
	if err := db.Model(&models.Player{}).Count(&totalPlayers).Error; err != nil {
		return nil, err
	}

	// Count scheduled and played matches
	if err := db.Model(&models.Match{}).Count(&totalMatches).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Match{}).
		Where("status = ?", models.MatchStatusPlayed).
		Count(&playedMatches).Error; err != nil {
		return nil, err
	}

	var totalGoals struct{ Goals int64 }
	if err := db.Model(&models.Match{}).
		Select("COALESCE(SUM(home_goals + away_goals), 0) AS goals").
		Where("status = ?", models.MatchStatusPlayed).
		Scan(&totalGoals).Error; err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalPlayers:     totalPlayers,
		TotalMatches:     totalMatches,
		PlayedMatches:    playedMatches,
		ScheduledMatches: totalMatches - playedMatches,
		TotalGoals:       totalGoals.Goals,
	}

	return stats, nil
}
