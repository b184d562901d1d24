package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PrefEntry is one persisted key/value pair. The whole preference surface
// (session fields, favorite sets, like sets, cached profile) lives in this
// single table.
type PrefEntry struct {
	Key   string `gorm:"primaryKey;size:191;not null"`
	Value string `gorm:"not null"`
}

func InitPrefsDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	if err := db.AutoMigrate(&PrefEntry{}); err != nil {
		return nil, fmt.Errorf("migrate prefs db: %w", err)
	}
	return db, nil
}
