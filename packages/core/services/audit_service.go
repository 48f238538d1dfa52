package services

import (
	"context"
	"errors"
	"time"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/store"
	"foosball-league/packages/core/utils"

	"github.com/rs/zerolog/log"
)

// AuditService recomputes every player's counters from the played matches and
// reports any that disagree with what is stored.
type AuditService struct {
	store *store.Store
}

func NewAuditService(s *store.Store) *AuditService {
	return &AuditService{
		store: s,
	}
}

func (s *AuditService) Audit(ctx context.Context) (*models.AuditReport, error) {
	report := &models.AuditReport{
		CheckedAt:     time.Now(),
		Discrepancies: []models.Discrepancy{},
	}

	players, err := s.store.FindPlayers(ctx, store.PlayerFilter{})
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			return report, nil
		}
		return nil, err
	}

	matches, err := s.store.FindMatches(ctx, store.MatchFilter{Status: models.MatchStatusPlayed})
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return nil, err
	}

	expected := make(map[uint]*utils.StatDelta, len(players))
	for _, p := range players {
		expected[p.ID] = &utils.StatDelta{}
	}
	for _, m := range matches {
		outcome := utils.DecideOutcome(m.HomePlayerID, m.AwayPlayerID, m.HomeGoals, m.AwayGoals)
		addDelta(expected[m.HomePlayerID], outcome.Home)
		addDelta(expected[m.AwayPlayerID], outcome.Away)
	}

	for _, p := range players {
		want := expected[p.ID]
		check := func(field string, stored, wanted int) {
			if stored != wanted {
				report.Discrepancies = append(report.Discrepancies, models.Discrepancy{
					PlayerID: p.ID,
					Name:     p.FullName(),
					Field:    field,
					Stored:   stored,
					Expected: wanted,
				})
			}
		}
		check("matches_played", p.MatchesPlayed, want.Played)
		check("goals_scored", p.GoalsScored, want.GoalsScored)
		check("goals_conceded", p.GoalsConceded, want.GoalsConceded)
		check("matches_won", p.MatchesWon, want.Won)
		check("points", p.Points, utils.PointsPerWin*p.MatchesWon)
	}

	report.PlayersChecked = len(players)
	report.MatchesChecked = len(matches)

	logger := log.Ctx(ctx)
	if report.Consistent() {
		logger.Debug().Int("players", report.PlayersChecked).Msg("league audit clean")
	} else {
		logger.Warn().
			Int("players", report.PlayersChecked).
			Int("discrepancies", len(report.Discrepancies)).
			Msg("league audit found inconsistent counters")
	}

	return report, nil
}

// addDelta ignores matches whose player has since been removed.
func addDelta(total *utils.StatDelta, d utils.StatDelta) {
	if total == nil {
		return
	}
	total.Played += d.Played
	total.GoalsScored += d.GoalsScored
	total.GoalsConceded += d.GoalsConceded
	total.Won += d.Won
	total.Points += d.Points
}
