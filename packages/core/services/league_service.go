package services

import (
	"context"
	"errors"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/store"
	"foosball-league/packages/core/utils"
)

// LeagueService builds the read-only league views.
type LeagueService struct {
	store *store.Store
}

func NewLeagueService(s *store.Store) *LeagueService {
	return &LeagueService{
		store: s,
	}
}

// Standings returns every player by points, highest first. Equal points keep
// registration order.
func (s *LeagueService) Standings(ctx context.Context) ([]models.Player, error) {
	players, err := s.store.FindPlayers(ctx, store.PlayerFilter{ByPoints: true})
	if errors.Is(err, store.ErrNoData) {
		return []models.Player{}, nil
	}
	return players, err
}

func (s *LeagueService) Fixtures(ctx context.Context) ([]models.Match, error) {
	matches, err := s.store.FindMatches(ctx, store.MatchFilter{})
	if errors.Is(err, store.ErrNoData) {
		return []models.Match{}, nil
	}
	return matches, err
}

func (s *LeagueService) StandingsTable(ctx context.Context) (string, error) {
	players, err := s.Standings(ctx)
	if err != nil {
		return "", err
	}
	return utils.RenderStandings(players), nil
}

func (s *LeagueService) FixturesTable(ctx context.Context) (string, error) {
	matches, err := s.Fixtures(ctx)
	if err != nil {
		return "", err
	}
	return utils.RenderFixtures(matches), nil
}
