package config

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// ConnectSQLite opens the consultation database at the configured path.
// The handle is pooled and shared by all requests; callers must not open
// per-request connections.
func ConnectSQLite() (*gorm.DB, error) {
	cfg := LoadConfig()
	return ConnectSQLiteAt(cfg.DBPath)
}

// ConnectSQLiteAt opens a SQLite database at an explicit path. Tests use
// this with a temporary file so they never touch the configured database.
func ConnectSQLiteAt(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
