package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPlayer(t *testing.T) {
	l := newLeague(t)
	ctx := context.Background()

	player, err := l.players.RegisterPlayer(ctx, " Ben ", "Sunny")
	require.NoError(t, err)

	assert.NotZero(t, player.ID)
	assert.Equal(t, "Ben", player.FirstName)
	assert.Equal(t, "ben-sunny", player.Slug)

	stored, err := l.players.GetPlayerByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.MatchesPlayed)
	assert.Zero(t, stored.GoalsScored)
	assert.Zero(t, stored.GoalsConceded)
	assert.Zero(t, stored.MatchesWon)
	assert.Zero(t, stored.Points)
}

func TestRegisterDuplicateNamesAllowed(t *testing.T) {
	l := newLeague(t)
	players := l.register(t, "Rick", "Sarge", "Rick", "Sarge")

	assert.NotEqual(t, players[0].ID, players[1].ID)

	all, err := l.players.ListPlayers(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRemovePlayer(t *testing.T) {
	l := newLeague(t)
	ctx := context.Background()
	l.register(t, "Ben", "Sunny", "Rick", "Sarge", "Rick", "Sarge")

	removed, err := l.players.RemovePlayer(ctx, "Rick", "Sarge")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	all, err := l.players.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ben Sunny", all[0].FullName())
}

func TestRemoveUnknownPlayer(t *testing.T) {
	l := newLeague(t)

	_, err := l.players.RemovePlayer(context.Background(), "Nobody", "Here")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestFindPlayerByName(t *testing.T) {
	l := newLeague(t)
	ctx := context.Background()
	l.register(t, "Ben", "Sunny", "Jack", "New", "Rick", "Sarge", "rick", "sarge")

	jack, err := l.players.FindPlayerByName(ctx, "jack", "")
	require.NoError(t, err)
	assert.Equal(t, "New", jack.LastName)

	_, err = l.players.FindPlayerByName(ctx, "Rick", "Sarge")
	assert.ErrorIs(t, err, ErrAmbiguousPlayer)

	_, err = l.players.FindPlayerByName(ctx, "Alice", "")
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	_, err = l.players.FindPlayerByName(ctx, "", " ")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestGetPlayerByIDNotFound(t *testing.T) {
	l := newLeague(t)

	_, err := l.players.GetPlayerByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestListPlayersEmpty(t *testing.T) {
	l := newLeague(t)

	players, err := l.players.ListPlayers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}
