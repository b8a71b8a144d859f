package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"

	"lightbnb/src/infra/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the embedded migration files.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrate brings the schema up to the latest embedded migration.
// It uses a dedicated connection rather than the pool.
func Migrate(ctx context.Context, cfg config.DatabaseConfig, log *zerolog.Logger) error {
	conn, err := pgx.Connect(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, cfg.MigrationsTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	if err := m.LoadMigrations(Migrations()); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	m.OnStart = func(sequence int32, name, direction, sql string) {
		log.Info().Int32("sequence", sequence).Str("name", name).Str("direction", direction).Msg("applying migration")
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	if from == int32(len(m.Migrations)) {
		log.Info().Int("version", len(m.Migrations)).Msg("database schema up to date")
	} else {
		log.Info().Int32("from", from).Int("to", len(m.Migrations)).Msg("migrated database schema")
	}
	return nil
}
