package services

import (
	"context"
	"strings"
	"testing"

	"foosball-league/packages/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingsOrdering(t *testing.T) {
	l := newLeague(t)
	ctx := context.Background()
	l.register(t, "Ben", "Sunny", "Jack", "New", "Rick", "Sarge")

	_, err := l.matches.GenerateFixtures(ctx)
	require.NoError(t, err)

	// 1: Ben v Jack, 2: Ben v Rick, 3: Jack v Ben, 4: Jack v Rick, 5: Rick v Ben, 6: Rick v Jack
	for _, r := range []struct {
		id         uint
		home, away int
	}{
		{1, 2, 5}, // Jack
		{4, 1, 3}, // Rick
		{5, 6, 0}, // Rick
	} {
		_, err := l.matches.RecordResult(ctx, r.id, r.home, r.away)
		require.NoError(t, err)
	}

	standings, err := l.views.Standings(ctx)
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, "Rick Sarge", standings[0].FullName())
	assert.Equal(t, 6, standings[0].Points)
	assert.Equal(t, "Jack New", standings[1].FullName())
	assert.Equal(t, "Ben Sunny", standings[2].FullName())
	assert.Equal(t, 2, standings[2].MatchesPlayed)
	assert.Equal(t, 2, standings[2].GoalsScored)
	assert.Equal(t, 11, standings[2].GoalsConceded)
}

func TestStandingsTiesKeepRegistrationOrder(t *testing.T) {
	l := newLeague(t)
	l.register(t, "Ben", "Sunny", "Jack", "New", "Rick", "Sarge")

	standings, err := l.views.Standings(context.Background())
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, "Ben Sunny", standings[0].FullName())
	assert.Equal(t, "Jack New", standings[1].FullName())
	assert.Equal(t, "Rick Sarge", standings[2].FullName())
}

func TestFixturesTable(t *testing.T) {
	l := newLeague(t)
	ctx := context.Background()
	l.register(t, "Ben", "Sunny", "Jack", "New")

	_, err := l.matches.GenerateFixtures(ctx)
	require.NoError(t, err)
	_, err = l.matches.RecordResult(ctx, 1, 5, 7)
	require.NoError(t, err)

	table, err := l.views.FixturesTable(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Match_id")
	assert.Contains(t, lines[0], "Winner")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[2]), "Jack New"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[3]), "NULL"))
}

func TestViewsWhenEmpty(t *testing.T) {
	l := newLeague(t)
	ctx := context.Background()

	matches, err := l.views.Fixtures(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)

	table, err := l.views.StandingsTable(ctx)
	require.NoError(t, err)
	assert.Contains(t, table, "Player_id")
}

func TestRemovedPlayerStillNamedInFixtures(t *testing.T) {
	l := newLeague(t)
	ctx := context.Background()
	l.register(t, "Ben", "Sunny", "Jack", "New")

	_, err := l.matches.GenerateFixtures(ctx)
	require.NoError(t, err)
	_, err = l.players.RemovePlayer(ctx, "Jack", "New")
	require.NoError(t, err)

	table, err := l.views.FixturesTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(table, "Jack New"))

	standings, err := l.views.Standings(ctx)
	require.NoError(t, err)
	assert.Len(t, standings, 1)
}

func TestStats(t *testing.T) {
	l := newLeague(t)
	ctx := context.Background()
	l.register(t, "Ben", "Sunny", "Jack", "New", "Rick", "Sarge")

	_, err := l.matches.GenerateFixtures(ctx)
	require.NoError(t, err)
	_, err = l.matches.RecordResult(ctx, 1, 5, 7)
	require.NoError(t, err)
	_, err = l.matches.RecordResult(ctx, 2, 3, 0)
	require.NoError(t, err)

	stats, err := l.stats.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Stats{
		TotalPlayers:     3,
		TotalMatches:     6,
		PlayedMatches:    2,
		ScheduledMatches: 4,
		TotalGoals:       15,
	}, *stats)
}

func TestAuditDetectsDrift(t *testing.T) {
	l := newLeague(t)
	ctx := context.Background()
	players := l.register(t, "Ben", "Sunny", "Jack", "New")

	_, err := l.matches.GenerateFixtures(ctx)
	require.NoError(t, err)
	_, err = l.matches.RecordResult(ctx, 1, 5, 7)
	require.NoError(t, err)

	report, err := l.audit.Audit(ctx)
	require.NoError(t, err)
	assert.True(t, report.Consistent())
	assert.Equal(t, 2, report.PlayersChecked)
	assert.Equal(t, 1, report.MatchesChecked)

	require.NoError(t, l.store.DB().Model(&models.Player{}).
		Where("id = ?", players[1].ID).
		Update("points", 4).Error)

	report, err = l.audit.Audit(ctx)
	require.NoError(t, err)
	require.Len(t, report.Discrepancies, 1)
	d := report.Discrepancies[0]
	assert.Equal(t, players[1].ID, d.PlayerID)
	assert.Equal(t, "points", d.Field)
	assert.Equal(t, 4, d.Stored)
	assert.Equal(t, 3, d.Expected)
}

func TestAuditEmptyLeague(t *testing.T) {
	l := newLeague(t)

	report, err := l.audit.Audit(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Consistent())
	assert.Zero(t, report.PlayersChecked)
}
