package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"multisuministros-codes/internal/domain/coderequest"
	"multisuministros-codes/internal/domain/notification"
	"multisuministros-codes/internal/domain/product"
	"multisuministros-codes/internal/domain/setting"
	"multisuministros-codes/internal/domain/user"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Dialector picks the gorm driver for name.
func Dialector(name, dsn string) (gorm.Dialector, error) {
	switch name {
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", name)
	}
}

func OpenGorm(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	dial, err := Dialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	db, err := OpenGormWithDialector(dial, level)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// one writer at a time; avoids SQLITE_BUSY under the HTTP server
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	log.Printf("gorm: connected (%s)", driver)
	return db, nil
}

// OpenGormWithDialector opens, tunes the pool and pings. TranslateError is on
// so repositories see gorm.ErrDuplicatedKey regardless of driver.
func OpenGormWithDialector(dial gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:               logger.Default.LogMode(level),
		TranslateError:       true,
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&user.User{},
		&product.Product{},
		&coderequest.CodeRequest{},
		&notification.Notification{},
		&setting.Setting{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// ParseLogLevel maps silent|error|warn|info to gorm's levels; anything else is warn.
func ParseLogLevel(s string) logger.LogLevel {
	switch s {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
