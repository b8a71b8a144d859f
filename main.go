// Package main is the entry point for the LightBnB API server.
// It initializes all dependencies and starts the HTTP server, or applies
// database migrations when run as `lightbnb migrate`.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lightbnb/src/app/server"
	"lightbnb/src/infra/config"
	"lightbnb/src/infra/db"
	"lightbnb/src/infra/logger"
	"lightbnb/src/infra/repo"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	migrateCommand := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context())
		},
	}

	root := &cobra.Command{
		Use:           "lightbnb",
		Short:         "LightBnB property listing service",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Serving is the default.
		RunE: serveCommand.RunE,
	}
	root.AddCommand(serveCommand, migrateCommand)
	return root
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info().
		Int("port", cfg.Server.Port).
		Str("log_level", cfg.Log.Level).
		Msg("starting application")

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	listings := repo.NewPostgresRepository(pg, log)

	// Run blocks until shutdown signal is received
	return server.New(cfg, log, listings).Run()
}

func migrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return db.Migrate(ctx, cfg.Database, logger.New(cfg.Log))
}
