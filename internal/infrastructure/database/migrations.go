package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// RunMigrations applies every pending migration from the given
// directory against the configured database.
func RunMigrations(config *PostgresConfig, migrationsPath string, log logger.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, config.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No pending migrations")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Info("Migrations applied", "version", version, "dirty", dirty)
	return nil
}
