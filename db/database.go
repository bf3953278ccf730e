package db

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"railway-booking-server/config"
	"railway-booking-server/model"
)

var db *gorm.DB
var testMode string

func InitDB(cfg config.Config) (*gorm.DB, error) {
	// save testMode
	testMode = cfg.TestMode

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLiteDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    cfg.DBDriver == config.DriverPostgres,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// a single connection serializes sqlite transactions
		sqlDB, err := database.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = Migrate(database)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	db = database
	return db, nil
}

// Migrate creates the tables, the foreign keys (all cascading) and
// the unique index on (cargo, seat, id_journey)
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&model.Station{},
		&model.TrainType{},
		&model.Train{},
		&model.Route{},
		&model.Crew{},
		&model.Journey{},
		&model.User{},
		&model.Order{},
		&model.Ticket{},
	)
}

func GetDB() *gorm.DB {
	return db
}

func CloseDBConnection() error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ResetTestDatabase() error {
	// check correct test mode
	if testMode != "test" {
		return fmt.Errorf("wrong test mode")
	}

	// children first, the same statements work on postgres and sqlite
	err := db.Transaction(func(transaction *gorm.DB) error {
		all := transaction.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, value := range []interface{}{
			&model.Ticket{},
			&model.Order{},
			&model.User{},
		} {
			if err := all.Delete(value).Error; err != nil {
				return err
			}
		}
		if err := transaction.Exec("DELETE FROM journey_crew").Error; err != nil {
			return err
		}
		for _, value := range []interface{}{
			&model.Journey{},
			&model.Crew{},
			&model.Route{},
			&model.Train{},
			&model.TrainType{},
			&model.Station{},
		} {
			if err := all.Delete(value).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return err
}
