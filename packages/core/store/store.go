// Package store owns the league schema and the typed queries run against it.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foosball-league/migrations"
	"foosball-league/packages/core/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	// ErrNoData is returned by the Find operations when nothing matched.
	ErrNoData       = errors.New("no data found")
	ErrSchemaExists = errors.New("league tables already exist")
)

// Store wraps the league database handle.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to the configured backend. For sqlite the dsn is a file path
// and the pure-Go modernc driver is used.
func Open(driver, dsn string, opts ...gorm.Option) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database dsn is required")
	}
	if len(opts) == 0 {
		opts = []gorm.Option{&gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}}
	}

	switch driver {
	case DriverSQLite, "":
		db, err := gorm.Open(&sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        withPragmas(dsn),
		}, opts...)
		if err != nil {
			return nil, fmt.Errorf("open sqlite db: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		// SQLite only supports one writer at a time.
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	case DriverPostgres:
		db, err := gorm.Open(postgres.Open(dsn), opts...)
		if err != nil {
			return nil, fmt.Errorf("open postgres db: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// DB exposes the underlying handle for the migration tooling.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Initialize creates the players and matches tables. With reset, any previous
// league tables and migration records are dropped first; without it an
// existing schema is an error.
func (s *Store) Initialize(ctx context.Context, reset bool) error {
	db := s.db.WithContext(ctx)
	migrator, err := migrations.NewLeagueMigrator(db)
	if err != nil {
		return err
	}

	if reset {
		if err := migrator.Reset(); err != nil {
			return fmt.Errorf("reset schema: %w", err)
		}
	}

	for _, table := range migrations.LeagueTables() {
		if db.Migrator().HasTable(table) {
			return ErrSchemaExists
		}
	}

	if err := migrator.Migrate(); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Execute runs fn in a single transaction; any error rolls every write back.
func (s *Store) Execute(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// CreatePlayer inserts p and fills in its id.
func (s *Store) CreatePlayer(ctx context.Context, p *models.Player) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// DeletePlayers removes every player matching both names exactly.
func (s *Store) DeletePlayers(ctx context.Context, firstName, lastName string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Delete(&models.Player{})
	return result.RowsAffected, result.Error
}
