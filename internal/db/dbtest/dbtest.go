// Package dbtest opens throwaway SQLite databases with the full schema for
// tests that need real SQL semantics.
package dbtest

import (
	"fmt"
	"path/filepath"

	"arenaledger/internal/db"
	"arenaledger/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a file-backed database under dir with every table migrated.
// Transactions take the write lock up front so concurrent writers queue
// instead of failing.
func Open(dir string) (*db.PostgresDB, error) {
	path := filepath.Join(dir, "arenaledger.db")
	gormDB, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000&_txlock=immediate"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	storage := &db.PostgresDB{DB: gormDB}
	if err := repository.Migrate(storage); err != nil {
		storage.Close()
		return nil, err
	}
	if err := storage.MigrateTable(repository.CollaboratorModels()...); err != nil {
		storage.Close()
		return nil, err
	}
	return storage, nil
}
