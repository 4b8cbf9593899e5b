package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marcus-savings/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory sqlite connection for integration tests.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens the shared in-memory database and migrates the schema.
func NewDb() *Db {
	if db == nil {
		once.Do(func() {
			db = open()
		})
	}
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(&model.KVRecord{}); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// Reset removes every stored record between scenarios.
func (d *Db) Reset() error {
	return d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.KVRecord{}).Error
}
