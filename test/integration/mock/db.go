package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory sqlite database used by the BDD suite. A
// single underlying connection is enforced so every scenario and the test
// server observe the same data.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared test database, migrating the given models. The
// map key is the table name, used by the db assertion steps.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	mockDb := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := mockDb.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}

	return mockDb
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)
	}

	for _, model := range modelList {
		if err := d.DbConn.Migrator().DropTable(model); err != nil {
			return err
		}
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, model := range modelList {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}

	return nil
}

// ClearDB removes every row while keeping the schema in place. Runs before
// each scenario. Child tables are emptied before their parents so foreign
// keys never dangle mid-wipe.
func (d *Db) ClearDB() error {
	for _, table := range []string{"repayments", "debts", "budgets", "expenses", "clients"} {
		model, ok := d.models[table]
		if !ok {
			continue
		}
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// GetModel returns the model registered for the given table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
