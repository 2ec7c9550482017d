package Models

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the store from DB_DRIVER/DB_DSN and migrates the
// schema. sqlite is the default so the service runs with no external
// database. The returned handle is passed into controllers and
// middleware; the caller owns its lifecycle.
func Connect() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite", "":
		if dsn == "" {
			dsn = "database.db"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Users first, tasks and time logs reference them
	if err := connection.AutoMigrate(&User{}); err != nil {
		return nil, err
	}
	if err := connection.AutoMigrate(&Task{}, &TimeLog{}); err != nil {
		return nil, err
	}
	return connection, nil
}
