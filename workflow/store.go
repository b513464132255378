package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the workflow SQLite database, runs migrations, and seeds the
// fixed step list on first run. The parent directory is created if absent.
func Init(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Single connection keeps SQLite from returning "database is locked".
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := migrate(db); err != nil {
		return nil, err
	}

	if err := seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

// migrate runs all automigrations. Keep the model list in one place.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Step{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// seed inserts the fixed step list when the table is empty.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Step{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count steps: %w", err)
	}
	if count > 0 {
		return nil
	}
	steps := make([]Step, len(DefaultSteps))
	copy(steps, DefaultSteps)
	if err := db.Create(&steps).Error; err != nil {
		return fmt.Errorf("seed steps: %w", err)
	}
	return nil
}
