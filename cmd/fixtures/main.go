package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"foosball-league/config"
	"foosball-league/fixtures"
	"foosball-league/packages/core/store"

	"github.com/rs/zerolog/log"
)

const playedRatio = 0.5

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	config.SetupLogging(cfg)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Database unavailable")
	}
	leagueStore := store.New(db)
	defer leagueStore.Close()

	ctx := context.Background()
	fixtureManager := fixtures.NewFixtures(leagueStore, time.Now().UnixNano())

	command := os.Args[1]

	switch command {
	case "generate":
		if err := fixtureManager.GenerateTestData(ctx, playedRatio); err != nil {
			log.Fatal().Err(err).Msg("Failed to generate fixtures")
		}
		fmt.Println("Fixtures generated successfully!")
	case "clear":
		if err := fixtureManager.ClearAllData(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to clear fixtures")
		}
		fmt.Println("All fixture data cleared!")
	case "regenerate":
		fmt.Println("Clearing existing data...")
		if err := fixtureManager.ClearAllData(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to clear fixtures")
		}
		fmt.Println("Generating new fixtures...")
		if err := fixtureManager.GenerateTestData(ctx, playedRatio); err != nil {
			log.Fatal().Err(err).Msg("Failed to generate fixtures")
		}
		fmt.Println("Fixtures regenerated successfully!")
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate    - Register demo players, schedule fixtures, play about half")
	fmt.Println("  go run ./cmd/fixtures clear       - Clear all players and matches")
	fmt.Println("  go run ./cmd/fixtures regenerate  - Clear and regenerate all data")
}
