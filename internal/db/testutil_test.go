package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "fittrack-test.db")
	database, err := Open(databasePath, Options{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database
}

func openTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	return NewRepositories(openTestDatabase(t))
}

func uintPtr(value uint) *uint {
	return &value
}
