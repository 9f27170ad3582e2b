package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wimdy/wimdy/internal/config"
	"github.com/wimdy/wimdy/internal/domain"
)

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables and indexes for all entities.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&domain.PullRequest{}, "Commits", &domain.PullRequestCommit{}); err != nil {
		return fmt.Errorf("set up join table: %w", err)
	}

	err := db.AutoMigrate(
		&domain.User{},
		&domain.Repository{},
		&domain.Issue{},
		&domain.PullRequest{},
		&domain.Commit{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
