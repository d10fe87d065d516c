package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var files embed.FS

// Direction selects which way the schema moves
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection parses the -direction flag of the migrate command
func ParseDirection(value string) (Direction, error) {
	switch Direction(value) {
	case Up, Down:
		return Direction(value), nil
	}
	return "", fmt.Errorf("unknown migration direction %q, want up or down", value)
}

// Run applies (or reverts) every embedded migration on db
func Run(db *sql.DB, direction Direction) error {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	switch direction {
	case Down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate %s: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", verr)
	}
	log.Info().Str("direction", string(direction)).Uint("version", version).Bool("dirty", dirty).Msg("migrations applied")

	return nil
}
