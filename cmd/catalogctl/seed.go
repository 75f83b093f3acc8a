// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/seed"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog with the sample movies, actors and cast",
		Long: `Truncates the cast, movies and actors tables and inserts the sample catalog
(3 movies, 12 actors, 12 cast entries) in a single transaction. User
accounts are kept. On failure nothing is changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, log, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			storages := store.NewStorages(db, log)
			seeder := seed.NewSeeder(seed.FromStorages(storages), log)

			summary, err := seeder.Seed(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d movies, %d actors, %d cast entries\n",
				summary.Movies, summary.Actors, summary.Cast)
			return nil
		},
	}
}
