// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the CMS
// client. It aggregates all sub-configurations and is populated by merging
// values from an optional .env file, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the auth REST API endpoint settings.
	API API `envPrefix:"API_"`

	// GraphQL holds the endpoints of the two content GraphQL services.
	GraphQL GraphQL `envPrefix:"GRAPHQL_"`

	// Storage holds the local client database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds network settings for the auth REST API.
type API struct {
	// Address is the base URL of the auth API
	// (e.g. "http://localhost:5000"). The /api/auth/* routes are
	// resolved relative to it.
	// Env: API_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request before the client cancels it (e.g. "30s", "1m").
	// Applied to GraphQL calls as well.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GraphQL holds the endpoints of the content GraphQL services.
type GraphQL struct {
	// ArticlesURL is the full URL of the articles GraphQL endpoint
	// (e.g. "http://localhost:5000/graphql").
	// Env: GRAPHQL_ARTICLES_URL
	ArticlesURL string `env:"ARTICLES_URL"`

	// WordPressURL is the full URL of the external WordPress GraphQL
	// endpoint. May be empty, in which case WordPress reads are
	// unavailable.
	// Env: GRAPHQL_WORDPRESS_URL
	WordPressURL string `env:"WORDPRESS_URL"`
}

// Storage groups the configuration for local client persistence.
type Storage struct {
	// DB holds the client database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs
// the token store.
type DB struct {
	// DSN is the SQLite file path used to open the client database
	// (e.g. "cms-client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the access-token refresh worker
	// runs while a session is active.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables (after an optional .env load)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
