package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"inspoboard/internal/config"
	"inspoboard/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the schema up to date. Postgres uses the versioned SQL files
// under migrations/, sqlite is created from the gorm models.
func Migrate(cfg *config.Config, db *gorm.DB) error {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return migratePostgres(cfg.MigrateURL())
	case config.DriverSQLite:
		return AutoMigrate(db)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// AutoMigrate creates the boards and cards tables from the models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Board{}, &model.Card{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func migratePostgres(url string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	slog.Info("database migrated", "version", version, "dirty", dirty)
	return nil
}
