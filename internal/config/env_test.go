// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"API_ADDRESS":         "http://localhost:5000",
		"API_REQUEST_TIMEOUT": "30s",

		"GRAPHQL_ARTICLES_URL":  "http://localhost:5000/graphql",
		"GRAPHQL_WORDPRESS_URL": "https://blog.example.com/graphql",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "client.db",

		"WORKERS_REFRESH_INTERVAL": "10m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "http://localhost:5000", cfg.API.Address)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)

	assert.Equal(t, "http://localhost:5000/graphql", cfg.GraphQL.ArticlesURL)
	assert.Equal(t, "https://blog.example.com/graphql", cfg.GraphQL.WordPressURL)

	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"API_ADDRESS":          "http://localhost:5000",
		"GRAPHQL_ARTICLES_URL": "http://localhost:5000/graphql",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.API.Address)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Empty(t, cfg.GraphQL.WordPressURL)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"API_REQUEST_TIMEOUT": "bogus"})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"API_ADDRESS",
		"API_REQUEST_TIMEOUT",
		"GRAPHQL_ARTICLES_URL",
		"GRAPHQL_WORDPRESS_URL",
		"STORAGE_DB_DATABASE_URI",
		"WORKERS_REFRESH_INTERVAL",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
