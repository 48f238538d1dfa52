package services

import (
	"context"
	"errors"
	"time"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/store"
	"foosball-league/packages/core/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const fixtureBatchSize = 100

type MatchService struct {
	store *store.Store
}

func NewMatchService(s *store.Store) *MatchService {
	return &MatchService{
		store: s,
	}
}

// GenerateFixtures schedules one match for every ordered pair of distinct
// players, so each pairing is played home and away. Running it again schedules
// the whole set again.
func (s *MatchService) GenerateFixtures(ctx context.Context) ([]models.Match, error) {
	players, err := s.store.FindPlayers(ctx, store.PlayerFilter{})
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			return []models.Match{}, nil
		}
		return nil, err
	}

	fixtures := make([]models.Match, 0, len(players)*(len(players)-1))
	for _, home := range players {
		for _, away := range players {
			if home.ID == away.ID {
				continue
			}
			fixtures = append(fixtures, models.Match{
				HomePlayerID: home.ID,
				AwayPlayerID: away.ID,
				Status:       models.MatchStatusScheduled,
				HomePlayer:   home,
				AwayPlayer:   away,
			})
		}
	}

	if len(fixtures) == 0 {
		return fixtures, nil
	}

	err = s.store.Execute(ctx, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(&fixtures, fixtureBatchSize).Error
	})
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Int("players", len(players)).
		Int("fixtures", len(fixtures)).
		Msg("fixtures generated")

	return fixtures, nil
}

// RecordResult stores the score of a scheduled match and updates both players'
// counters in the same transaction.
func (s *MatchService) RecordResult(ctx context.Context, matchID uint, homeGoals, awayGoals int) (*models.Match, error) {
	var recorded models.Match

	err := s.store.Execute(ctx, func(tx *gorm.DB) error {
		match, err := getMatch(tx, matchID)
		if err != nil {
			return err
		}

		if match.IsPlayed() {
			return ErrMatchAlreadyPlayed
		}

		home, err := getActivePlayer(tx, match.HomePlayerID)
		if err != nil {
			return err
		}
		away, err := getActivePlayer(tx, match.AwayPlayerID)
		if err != nil {
			return err
		}

		outcome := utils.DecideOutcome(home.ID, away.ID, homeGoals, awayGoals)

		// The status condition stops two submissions for the same match from both landing.
		now := time.Now()
		result := tx.Model(&models.Match{}).
			Where("id = ? AND status = ?", match.ID, models.MatchStatusScheduled).
			Updates(map[string]interface{}{
				"home_goals": homeGoals,
				"away_goals": awayGoals,
				"winner_id":  outcome.WinnerID,
				"status":     models.MatchStatusPlayed,
				"played_at":  now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMatchAlreadyPlayed
		}

		if err := applyStatDelta(tx, home.ID, outcome.Home); err != nil {
			return err
		}
		if err := applyStatDelta(tx, away.ID, outcome.Away); err != nil {
			return err
		}

		updated, err := getMatch(tx, match.ID)
		if err != nil {
			return err
		}
		recorded = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Uint("match_id", recorded.ID).
		Int("home_goals", homeGoals).
		Int("away_goals", awayGoals).
		Str("winner", recorded.WinnerName()).
		Msg("result recorded")

	return &recorded, nil
}

func (s *MatchService) GetMatchByID(ctx context.Context, id uint) (*models.Match, error) {
	matches, err := s.store.FindMatches(ctx, store.MatchFilter{ID: &id})
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return &matches[0], nil
}

// ListMatches returns every match in id order, optionally filtered by status.
func (s *MatchService) ListMatches(ctx context.Context, status string) ([]models.Match, error) {
	matches, err := s.store.FindMatches(ctx, store.MatchFilter{Status: status})
	if errors.Is(err, store.ErrNoData) {
		return []models.Match{}, nil
	}
	return matches, err
}

func getMatch(tx *gorm.DB, id uint) (*models.Match, error) {
	matches, err := store.FindMatchesTx(tx, store.MatchFilter{ID: &id})
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &matches[0], nil
}

// getActivePlayer fails for players that were removed after the fixture was made.
func getActivePlayer(tx *gorm.DB, id uint) (*models.Player, error) {
	players, err := store.FindPlayersTx(tx, store.PlayerFilter{ID: &id})
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &players[0], nil
}

func applyStatDelta(tx *gorm.DB, playerID uint, delta utils.StatDelta) error {
	result := tx.Model(&models.Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"matches_played": gorm.Expr("matches_played + ?", delta.Played),
			"goals_scored":   gorm.Expr("goals_scored + ?", delta.GoalsScored),
			"goals_conceded": gorm.Expr("goals_conceded + ?", delta.GoalsConceded),
			"matches_won":    gorm.Expr("matches_won + ?", delta.Won),
			"points":         gorm.Expr("points + ?", delta.Points),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
