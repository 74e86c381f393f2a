package repository

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies every pending up migration found at migrationURL.
// It reports whether any migration was applied.
func RunMigrations(migrationURL, dsn string) (bool, error) {
	migration, err := migrate.New(migrationURL, dsn)
	if err != nil {
		return false, fmt.Errorf("cannot create a new migrate instance: %w", err)
	}
	defer migration.Close()

	if err := migration.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("failed to run migrate up: %w", err)
	}
	return true, nil
}
