// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/spf13/cobra"
)

const connectTimeout = 10 * time.Second

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Operate a movie catalog deployment",
		Long: `catalogctl manages the database of a movie catalog deployment.

Database settings are read from the same environment variables (and .env file)
as the server, e.g. STORAGE_DB_DATABASE_URI.

Examples:
  catalogctl migrate up                  # apply pending migrations
  catalogctl seed                        # replace the catalog with sample data
  catalogctl promote --email a@b.com     # grant the admin role
  catalogctl health --url http://localhost:3000`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newPromoteCommand())
	rootCmd.AddCommand(newHealthCommand())
	return rootCmd
}

// connect loads the configuration and opens the catalog database.
func connect(ctx context.Context) (*store.DB, *logger.Logger, error) {
	log := logger.NewConsoleLogger("catalogctl", os.Stderr)

	cfg, err := config.GetEnvConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}
