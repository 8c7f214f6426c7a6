package testutils

import (
	"database/sql"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/M-harib/TaskFlow/database"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupMockDB wires GORM to a sqlmock connection speaking the postgres
// dialect the deployed store runs on. Use it when the generated SQL itself
// is under test, such as asserting that task queries carry the user_id
// scope; behavioral tests belong on SetupTestDB's sqlite store instead.
func SetupMockDB() (*database.Database, sqlmock.Sqlmock, func()) {
	var db *sql.DB
	var mock sqlmock.Sqlmock
	var err error

	db, mock, err = sqlmock.New()
	if err != nil {
		panic(err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic(err)
	}

	mockDB := &database.Database{
		DB: gormDB,
	}

	close := func() {
		db.Close()
	}

	return mockDB, mock, close
}
