package store

import (
	"context"

	"foosball-league/packages/core/models"

	"gorm.io/gorm"
)

// PlayerFilter selects players. Empty names are ignored; names match
// case-insensitively. ByPoints orders by points descending, otherwise rows come
// back in insertion order.
type PlayerFilter struct {
	ID        *uint
	FirstName string
	LastName  string
	ByPoints  bool
}

type MatchFilter struct {
	ID     *uint
	Status string
}

func (s *Store) FindPlayers(ctx context.Context, filter PlayerFilter) ([]models.Player, error) {
	return findPlayers(s.db.WithContext(ctx), filter)
}

func (s *Store) FindMatches(ctx context.Context, filter MatchFilter) ([]models.Match, error) {
	return findMatches(s.db.WithContext(ctx), filter)
}

// FindPlayersTx and FindMatchesTx run the same queries inside an Execute batch.
func FindPlayersTx(tx *gorm.DB, filter PlayerFilter) ([]models.Player, error) {
	return findPlayers(tx, filter)
}

func FindMatchesTx(tx *gorm.DB, filter MatchFilter) ([]models.Match, error) {
	return findMatches(tx, filter)
}

func findPlayers(db *gorm.DB, filter PlayerFilter) ([]models.Player, error) {
	query := db.Model(&models.Player{})
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.FirstName != "" {
		query = query.Where("LOWER(first_name) = LOWER(?)", filter.FirstName)
	}
	if filter.LastName != "" {
		query = query.Where("LOWER(last_name) = LOWER(?)", filter.LastName)
	}
	if filter.ByPoints {
		query = query.Order("points DESC")
	}
	query = query.Order("id ASC")

	var players []models.Player
	if err := query.Find(&players).Error; err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, ErrNoData
	}
	return players, nil
}

func findMatches(db *gorm.DB, filter MatchFilter) ([]models.Match, error) {
	// Removed players stay visible in match history.
	unscoped := func(db *gorm.DB) *gorm.DB { return db.Unscoped() }
	query := db.Model(&models.Match{}).
		Preload("HomePlayer", unscoped).
		Preload("AwayPlayer", unscoped).
		Preload("Winner", unscoped)
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var matches []models.Match
	if err := query.Order("id ASC").Find(&matches).Error; err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoData
	}
	return matches, nil
}
