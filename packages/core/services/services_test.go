package services

import (
	"context"
	"testing"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/store"
	"foosball-league/packages/core/testutil"

	"github.com/stretchr/testify/require"
)

type league struct {
	store   *store.Store
	players *PlayerService
	matches *MatchService
	views   *LeagueService
	stats   *StatsService
	audit   *AuditService
}

func newLeague(t *testing.T) *league {
	t.Helper()
	s := testutil.NewStore(t)
	return &league{
		store:   s,
		players: NewPlayerService(s),
		matches: NewMatchService(s),
		views:   NewLeagueService(s),
		stats:   NewStatsService(s),
		audit:   NewAuditService(s),
	}
}

func (l *league) register(t *testing.T, names ...string) []*models.Player {
	t.Helper()
	require.Zero(t, len(names)%2, "names come in first/last pairs")

	var out []*models.Player
	for i := 0; i < len(names); i += 2 {
		p, err := l.players.RegisterPlayer(context.Background(), names[i], names[i+1])
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}
