package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

const (
	// One console player at a time
	maxOpenConns = 2
	maxIdleConns = 1
	connMaxLife  = time.Minute * 15

	databaseName = "battleship"
)

// Migrate applies every pending migration found at migrationDir, which must
// be a golang-migrate source URL such as file://db/migration.
func Migrate(db *sql.DB, migrationDir string, logger zerolog.Logger) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		DatabaseName: databaseName,
	})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationDir, databaseName, driver)
	if err != nil {
		return fmt.Errorf("migration source %s: %w", migrationDir, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("database is dirty at migration version %d", version)
	}
	logger.Debug().Uint("version", version).Msg("current migration version")

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	logger.Info().Msg("migration successful")
	return nil
}

// ConnectToDb opens and pings the database and brings the schema up to
// date. The returned handle is closed on any failure.
func ConnectToDb(psqlUrl, migrationDir string, logger zerolog.Logger) (*sql.DB, error) {
	// Open may only validate its arguments
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)

	if err := Migrate(db, migrationDir, logger); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
