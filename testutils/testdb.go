package testutils

import (
	"github.com/M-harib/TaskFlow/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory sqlite store with the full schema
// migrated, for tests that exercise real query behavior.
func SetupTestDB() (*database.Database, func()) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	if err := database.RunMigrations(db); err != nil {
		panic(err)
	}

	testDB := &database.Database{DB: db}

	close := func() {
		testDB.Close()
	}

	return testDB, close
}
