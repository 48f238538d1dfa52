package migrations

import (
	"foosball-league/packages/core/models"

	"gorm.io/gorm"
)

// LeagueTables lists the league tables in creation order.
func LeagueTables() []interface{} {
	return []interface{}{&models.Player{}, &models.Match{}}
}

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_01_04_000000_create_league_tables",
			Up: func(db *gorm.DB) error {
				// Plain CREATE TABLE: fails when a table is already there.
				for _, table := range LeagueTables() {
					if err := db.Migrator().CreateTable(table); err != nil {
						return err
					}
				}
				return nil
			},
			Down: func(db *gorm.DB) error {
				// Drop tables in reverse order (because of foreign keys)
				tables := LeagueTables()
				for i := len(tables) - 1; i >= 0; i-- {
					if err := db.Migrator().DropTable(tables[i]); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
