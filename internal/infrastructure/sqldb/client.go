package sqldb

import (
	"fmt"

	"github.com/safespace-api/internal/config"
	"github.com/safespace-api/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured relational store and migrates the schema.
// TranslateError is on so driver-specific failures (notably the unique
// violation on users.email) surface as gorm sentinels the repos can map.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q (want sqlite or postgres)", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Post{}, &domain.Comment{}); err != nil {
		return nil, fmt.Errorf("migrate tables: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool. Called once at shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
