package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options controls how the store is opened.
//
// BestEffortMigrations reproduces the original app's "log and keep going"
// behavior on migration failure. It is off by default because continuing
// with a half-migrated schema risks silent data corruption; it exists only
// as an explicit opt-in for installs where crashing is worse than degraded
// function.
type Options struct {
	BestEffortMigrations bool
}

func Open(dbPath string, opts Options) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", translateError(err))
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		if !opts.BestEffortMigrations {
			return nil, fmt.Errorf("apply embedded migrations: %w", err)
		}
		log.Printf("WARNING: continuing with unmigrated schema: %v", err)
	}

	return database, nil
}
