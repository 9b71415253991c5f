package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"collabspace/config"
	"collabspace/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and verifies it answers a ping.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		// lib/pq registers itself as "postgres"
		dialector = postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.DatabaseURL,
		})
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger(cfg.Verbose)})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s database: %w", cfg.DBDriver, err)
	}

	return db, nil
}

// OpenSQLite opens a sqlite file with foreign keys enforced. Used for local
// runs and by the test suites.
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(sqliteDSN(path)), &gorm.Config{Logger: newLogger(false)})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Team{},
		&models.Project{},
		&models.Task{},
		&models.Subtask{},
		&models.TaskLink{},
	)
}

func sqliteDSN(path string) string {
	return path + "?_foreign_keys=on"
}

func newLogger(verbose bool) logger.Interface {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}
	return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
