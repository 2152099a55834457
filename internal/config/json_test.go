package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON must be parseable by time.ParseDuration (e.g. "30s").
	jsonBody := `{
		"api": {
			"address": "http://localhost:5000",
			"request_timeout": "30s"
		},
		"graphql": {
			"articles_url": "http://localhost:5000/graphql",
			"wordpress_url": "https://blog.example.com/graphql"
		},
		"storage": {
			"db": { "dsn": "client.db" }
		},
		"workers": {
			"refresh_interval": "10m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:5000", cfg.API.Address)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)

	assert.Equal(t, "http://localhost:5000/graphql", cfg.GraphQL.ArticlesURL)
	assert.Equal(t, "https://blog.example.com/graphql", cfg.GraphQL.WordPressURL)

	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad-duration.json")
	jsonBody := `{ "api": { "request_timeout": "not-a-duration" } }`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalNumeric(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))
}
