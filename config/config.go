package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"foosball-league/packages/core/store"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Config is read from the environment, after an optional .env file.
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	DBDriver       string   `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabasePath   string   `env:"DATABASE_PATH" envDefault:"foosball.db"`
	DatabaseURL    string   `env:"DATABASE_URL"`
	ResetDatabase  bool     `env:"RESET_DATABASE" envDefault:"false"`
	AuditSchedule  string   `env:"AUDIT_SCHEDULE" envDefault:"0 0 * * * *"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty      bool     `env:"LOG_PRETTY" envDefault:"false"`
	GinMode        string   `env:"GIN_MODE" envDefault:"debug"`
}

var DB *gorm.DB

// Load reads .env when present and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == store.DriverPostgres {
		return c.DatabaseURL
	}
	return c.DatabasePath
}

// SetupLogging configures the global zerolog logger. Loggers pulled from a
// context without one attached fall back to the global logger.
func SetupLogging(cfg *Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	zerolog.DefaultContextLogger = &log.Logger
}

// ConnectDatabase opens the configured database and keeps the handle in DB.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := store.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db
	log.Info().Str("driver", cfg.DBDriver).Msg("Database connected successfully")
	return db, nil
}
