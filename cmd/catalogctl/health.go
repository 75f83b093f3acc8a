// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const (
	urlFlag = "url"

	healthTimeout = 5 * time.Second
)

func newHealthCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		urlFlag: &cobraflags.StringFlag{
			Name:  urlFlag,
			Value: "http://localhost:3000",
			Usage: "Base URL of a running catalog server",
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Query the /health endpoint of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return checkHealth(cmd, flags[urlFlag].GetString())
		},
	}

	cobraflags.RegisterMap(healthCmd, flags)
	return healthCmd
}

func checkHealth(cmd *cobra.Command, baseURL string) error {
	client := utils.NewHTTPClient(baseURL, healthTimeout)

	var health models.HealthResponse
	resp, err := client.R().
		SetResult(&health).
		SetError(&health).
		Get("/health")
	if err != nil {
		return fmt.Errorf("error calling %s/health: %w", baseURL, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", baseURL, health.Status)
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("server is unhealthy: %s", resp.Status())
	}
	return nil
}
