package config

import (
	"fmt"

	"github.com/adilet-b/folio/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured database and migrates the schema.
func Connect(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DBURL != "" {
		dialector = postgres.Open(cfg.DBURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Project{}, &models.Skill{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}
