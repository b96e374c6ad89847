package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes creates the listing/filter indexes that AutoMigrate does not
// derive from struct tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Bug indexes for status filtering and sorted pagination
		{"bugs", "idx_bugs_status", "status"},
		{"bugs", "idx_bugs_created_date", "created_date"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
