package migrations

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

type Migrator struct {
	db         *gorm.DB
	migrations []MigrationDefinition
}

func NewMigrator(db *gorm.DB) (*Migrator, error) {
	if err := db.AutoMigrate(&Migration{}); err != nil {
		return nil, fmt.Errorf("create migrations table: %w", err)
	}
	return &Migrator{
		db:         db,
		migrations: []MigrationDefinition{},
	}, nil
}

// NewLeagueMigrator returns a migrator loaded with every league migration.
func NewLeagueMigrator(db *gorm.DB) (*Migrator, error) {
	m, err := NewMigrator(db)
	if err != nil {
		return nil, err
	}
	for _, migration := range GetCoreMigrations() {
		m.AddMigration(migration)
	}
	return m, nil
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

func (m *Migrator) Migrate() error {
	log.Info().Msg("Running database migrations")

	batch := m.getNextBatch()

	for _, migration := range m.migrations {
		if m.hasRun(migration.Name) {
			continue
		}

		log.Info().Str("migration", migration.Name).Msg("Migrating")

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.Name, err)
			}
			record := Migration{Name: migration.Name, Batch: batch}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		log.Info().Str("migration", migration.Name).Msg("Migrated")
	}

	log.Info().Msg("Migration completed successfully")
	return nil
}

func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	log.Info().Int("steps", steps).Msg("Rolling back migrations")

	batch := m.getLatestBatch()

	for i := 0; i < steps && batch > 0; i++ {
		var records []Migration
		if err := m.db.Where("batch = ?", batch).Order("id DESC").Find(&records).Error; err != nil {
			return fmt.Errorf("load batch %d: %w", batch, err)
		}

		for _, record := range records {
			if err := m.down(record); err != nil {
				return err
			}
		}

		batch--
	}

	log.Info().Msg("Rollback completed successfully")
	return nil
}

// Reset runs every Down in reverse order, whether or not it was recorded, and
// forgets all recorded migrations.
func (m *Migrator) Reset() error {
	log.Warn().Msg("Resetting database schema")

	for i := len(m.migrations) - 1; i >= 0; i-- {
		migration := m.migrations[i]
		if migration.Down == nil {
			return fmt.Errorf("rollback not defined for migration: %s", migration.Name)
		}
		if err := migration.Down(m.db); err != nil {
			return fmt.Errorf("reset failed for %s: %w", migration.Name, err)
		}
	}

	if err := m.db.Where("1 = 1").Delete(&Migration{}).Error; err != nil {
		return fmt.Errorf("failed to clear migration records: %w", err)
	}
	return nil
}

// Status lists the recorded migrations, oldest batch first.
func (m *Migrator) Status() ([]Migration, error) {
	var records []Migration
	if err := m.db.Order("batch ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Pending returns the names of the migrations that have not run yet.
func (m *Migrator) Pending() []string {
	var pending []string
	for _, migration := range m.migrations {
		if !m.hasRun(migration.Name) {
			pending = append(pending, migration.Name)
		}
	}
	return pending
}

func (m *Migrator) down(record Migration) error {
	migration := m.findMigration(record.Name)
	if migration == nil {
		return fmt.Errorf("migration definition not found: %s", record.Name)
	}

	if migration.Down == nil {
		return fmt.Errorf("rollback not defined for migration: %s", record.Name)
	}

	log.Info().Str("migration", record.Name).Msg("Rolling back")

	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := migration.Down(tx); err != nil {
			return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
		}
		if err := tx.Delete(&record).Error; err != nil {
			return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("migration", record.Name).Msg("Rolled back")
	return nil
}

func (m *Migrator) hasRun(name string) bool {
	var count int64
	m.db.Model(&Migration{}).Where("name = ?", name).Count(&count)
	return count > 0
}

func (m *Migrator) getNextBatch() int {
	return m.getLatestBatch() + 1
}

func (m *Migrator) getLatestBatch() int {
	var migration Migration
	err := m.db.Order("batch DESC").First(&migration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	return migration.Batch
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
