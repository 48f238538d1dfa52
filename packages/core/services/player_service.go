package services

import (
	"context"
	"errors"
	"strings"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/store"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
)

type PlayerService struct {
	store *store.Store
}

func NewPlayerService(s *store.Store) *PlayerService {
	return &PlayerService{
		store: s,
	}
}

// RegisterPlayer adds a player with every counter at zero. Names are not
// required to be unique.
func (s *PlayerService) RegisterPlayer(ctx context.Context, firstName, lastName string) (*models.Player, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	player := &models.Player{
		FirstName: firstName,
		LastName:  lastName,
		Slug:      slug.Make(firstName + " " + lastName),
	}

	if err := s.store.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Uint("player_id", player.ID).
		Str("name", player.FullName()).
		Msg("player registered")

	return player, nil
}

// RemovePlayer removes every player with exactly this name. Matches that
// reference them are kept.
func (s *PlayerService) RemovePlayer(ctx context.Context, firstName, lastName string) (int64, error) {
	removed, err := s.store.DeletePlayers(ctx, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, ErrPlayerNotFound
	}

	log.Ctx(ctx).Info().
		Int64("removed", removed).
		Str("first_name", firstName).
		Str("last_name", lastName).
		Msg("player removed")

	return removed, nil
}

func (s *PlayerService) GetPlayerByID(ctx context.Context, id uint) (*models.Player, error) {
	players, err := s.store.FindPlayers(ctx, store.PlayerFilter{ID: &id})
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	return &players[0], nil
}

// FindPlayerByName returns the single player with that name. It never picks
// one of several namesakes; either name may be left empty.
func (s *PlayerService) FindPlayerByName(ctx context.Context, firstName, lastName string) (*models.Player, error) {
	filter := store.PlayerFilter{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
	if filter.FirstName == "" && filter.LastName == "" {
		return nil, ErrPlayerNotFound
	}

	players, err := s.store.FindPlayers(ctx, filter)
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if len(players) > 1 {
		return nil, ErrAmbiguousPlayer
	}

	return &players[0], nil
}

// ListPlayers returns the roster in registration order.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.store.FindPlayers(ctx, store.PlayerFilter{})
	if errors.Is(err, store.ErrNoData) {
		return []models.Player{}, nil
	}
	return players, err
}
