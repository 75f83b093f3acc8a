// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (a local .env file is loaded first)
//  2. Command-line flags
//  3. JSON config file
//
// Fields still empty after merging receive the defaults from [Defaults].
// The main entry points are [GetStructuredConfig] for the API server and
// [GetEnvConfig] for tools that own their command line.
package config
