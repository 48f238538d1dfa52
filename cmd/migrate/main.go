package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"foosball-league/config"
	"foosball-league/migrations"
	"foosball-league/packages/core/store"

	"github.com/rs/zerolog/log"
)

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

	migrator, err := migrations.NewLeagueMigrator(db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare migrator")
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		if err := migrator.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	case "rollback":
		steps := 1
		if len(os.Args) > 2 {
			if s, err := strconv.Atoi(os.Args[2]); err == nil {
				steps = s
			}
		}
		if err := migrator.Rollback(steps); err != nil {
			log.Fatal().Err(err).Msg("Rollback failed")
		}
	case "init":
		reset := len(os.Args) > 2 && os.Args[2] == "--reset"
		if err := leagueStore.Initialize(context.Background(), reset); err != nil {
			log.Fatal().Err(err).Msg("Initialize failed")
		}
		fmt.Println("League tables created")
	case "status":
		showStatus(migrator)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migrate migrate          - Run pending migrations")
	fmt.Println("  go run ./cmd/migrate rollback [steps] - Rollback migrations (default: 1)")
	fmt.Println("  go run ./cmd/migrate init [--reset]   - Create the league tables, dropping old ones with --reset")
	fmt.Println("  go run ./cmd/migrate status           - Show migration status")
}

func showStatus(migrator *migrations.Migrator) {
	records, err := migrator.Status()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read migration status")
	}

	if len(records) == 0 {
		fmt.Println("No migrations have been run yet.")
	} else {
		fmt.Println("Migration Status:")
		fmt.Println("Batch | Name")
		fmt.Println("------|-----")
		for _, record := range records {
			fmt.Printf("%-5d | %s\n", record.Batch, record.Name)
		}
	}

	for _, name := range migrator.Pending() {
		fmt.Printf("pending | %s\n", name)
	}
}
