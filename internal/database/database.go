// Package database connects the reference backend to its storage.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gigboard/internal/config"
	"gigboard/internal/models"
)

// Connect opens the configured database and migrates the schema. With
// DB_MEMORY set it uses in-memory SQLite, which is what tests and quick dev
// servers run on; otherwise postgres.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	// TranslateError surfaces driver-specific constraint violations as
	// gorm.ErrDuplicatedKey, which the repositories map to conflicts.
	if cfg.DBMemory {
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	} else {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema for every domain model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.JobApplication{},
		&models.Project{},
		&models.Proposal{},
		&models.Organization{},
		&models.Activity{},
		&models.AudioBook{},
		&models.Opinion{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
