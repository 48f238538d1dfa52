package fixtures

import (
	"context"
	"fmt"
	"math/rand"

	"foosball-league/packages/core/models"
	"foosball-league/packages/core/services"
	"foosball-league/packages/core/store"

	"github.com/rs/zerolog/log"
)

// DemoPlayers is the roster seeded by GenerateTestData.
var DemoPlayers = [][2]string{
	{"Ben", "Sunny"},
	{"Jack", "New"},
	{"Rick", "Sarge"},
	{"Alexandre", "Martin"},
	{"Marie", "Durand"},
	{"Julien", "Petit"},
}

type Fixtures struct {
	store         *store.Store
	playerService *services.PlayerService
	matchService  *services.MatchService
	rng           *rand.Rand
}

func NewFixtures(s *store.Store, seed int64) *Fixtures {
	return &Fixtures{
		store:         s,
		playerService: services.NewPlayerService(s),
		matchService:  services.NewMatchService(s),
		rng:           rand.New(rand.NewSource(seed)), // #nosec G404
	}
}

// GenerateTestData registers the demo roster, schedules the season and records
// a random score for about playedRatio of the matches.
func (f *Fixtures) GenerateTestData(ctx context.Context, playedRatio float64) error {
	log.Info().Msg("Starting fixtures generation")

	for _, name := range DemoPlayers {
		if _, err := f.playerService.RegisterPlayer(ctx, name[0], name[1]); err != nil {
			return fmt.Errorf("failed to register %s %s: %w", name[0], name[1], err)
		}
	}

	matches, err := f.matchService.GenerateFixtures(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate fixtures: %w", err)
	}

	played, err := f.playMatches(ctx, matches, playedRatio)
	if err != nil {
		return fmt.Errorf("failed to record results: %w", err)
	}

	log.Info().
		Int("players", len(DemoPlayers)).
		Int("matches", len(matches)).
		Int("played", played).
		Msg("Fixtures generated successfully")
	return nil
}

func (f *Fixtures) playMatches(ctx context.Context, matches []models.Match, playedRatio float64) (int, error) {
	played := 0
	for _, match := range matches {
		if f.rng.Float64() >= playedRatio {
			continue
		}
		homeGoals := f.rng.Intn(11)
		awayGoals := f.rng.Intn(11)
		if _, err := f.matchService.RecordResult(ctx, match.ID, homeGoals, awayGoals); err != nil {
			return played, err
		}
		played++
	}
	return played, nil
}

// ClearAllData removes every match and player, including soft-deleted ones,
// and restarts the id sequences.
func (f *Fixtures) ClearAllData(ctx context.Context) error {
	log.Info().Msg("Clearing all fixture data")

	db := f.store.DB().WithContext(ctx)

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.Match{},
		&models.Player{},
	}
	for _, table := range tables {
		if err := db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	var sequences []string
	switch db.Dialector.Name() {
	case store.DriverPostgres:
		sequences = []string{
			"ALTER SEQUENCE matches_id_seq RESTART WITH 1",
			"ALTER SEQUENCE players_id_seq RESTART WITH 1",
		}
	case store.DriverSQLite:
		sequences = []string{
			"DELETE FROM sqlite_sequence WHERE name IN ('matches', 'players')",
		}
	}
	for _, seq := range sequences {
		if err := db.Exec(seq).Error; err != nil {
			log.Warn().Err(err).Str("statement", seq).Msg("Could not reset sequence")
		}
	}

	log.Info().Msg("All fixture data cleared")
	return nil
}
