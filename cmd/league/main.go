package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"foosball-league/config"
	"foosball-league/packages/core/services"
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

	if err := run(context.Background(), leagueStore, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		leagueStore.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, s *store.Store, command string, args []string) error {
	players := services.NewPlayerService(s)
	matches := services.NewMatchService(s)
	league := services.NewLeagueService(s)

	switch command {
	case "register":
		if len(args) != 2 {
			return fmt.Errorf("usage: register <first_name> <last_name>")
		}
		player, err := players.RegisterPlayer(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s (id %d)\n", player.FullName(), player.ID)
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: remove <first_name> <last_name>")
		}
		removed, err := players.RemovePlayer(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d player(s)\n", removed)
	case "schedule":
		created, err := matches.GenerateFixtures(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Scheduled %d match(es)\n", len(created))
	case "result":
		if len(args) != 3 {
			return fmt.Errorf("usage: result <match_id> <home_goals> <away_goals>")
		}
		values := make([]int, 3)
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil || v < 0 {
				return fmt.Errorf("%q is not a valid number", arg)
			}
			values[i] = v
		}
		if values[1] > 10 || values[2] > 10 {
			return fmt.Errorf("goals must be between 0 and 10")
		}
		match, err := matches.RecordResult(ctx, uint(values[0]), values[1], values[2])
		if err != nil {
			return err
		}
		fmt.Printf("Match %d won by %s\n", match.ID, match.WinnerName())
	case "fixtures":
		table, err := league.FixturesTable(ctx)
		if err != nil {
			return err
		}
		fmt.Print(table)
	case "standings":
		table, err := league.StandingsTable(ctx)
		if err != nil {
			return err
		}
		fmt.Print(table)
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/league register <first> <last>       - Register a player")
	fmt.Println("  go run ./cmd/league remove <first> <last>         - Remove players with that name")
	fmt.Println("  go run ./cmd/league schedule                      - Generate fixtures for every pairing")
	fmt.Println("  go run ./cmd/league result <match> <home> <away>  - Record a match result")
	fmt.Println("  go run ./cmd/league fixtures                      - Print the fixtures table")
	fmt.Println("  go run ./cmd/league standings                     - Print the league table")
}
