package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs winning for
// non-zero fields.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{Address: "http://env-wins:5000"}},
		&StructuredConfig{API: API{Address: "http://flag-loses:5000", RequestTimeout: 30 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env-wins:5000", cfg.API.Address)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
}

// TestBuild_SingleConfig verifies that a single config is returned as-is.
func TestBuild_SingleConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		GraphQL: GraphQL{ArticlesURL: "http://localhost:5000/graphql"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/graphql", cfg.GraphQL.ArticlesURL)
}

// TestWithJSON_PathFromEarlierStage verifies that the JSON stage picks up the
// config file path discovered by an earlier stage.
func TestWithJSON_PathFromEarlierStage(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "missing.json"})

	b.withJSON()
	require.Error(t, b.err)
}

// TestClientConfigValidate covers the per-group validation rules on the
// client view.
func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			API:     ClientAPI{Address: "http://localhost:5000", RequestTimeout: 30 * time.Second},
			GraphQL: ClientGraphQL{ArticlesURL: "http://localhost:5000/graphql"},
			Storage: ClientStorage{DB: ClientDB{DSN: "client.db"}},
			Workers: ClientWorkers{RefreshInterval: 10 * time.Minute},
		}
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.API.Address = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAPIConfigs)

	cfg = valid()
	cfg.API.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAPIConfigs)

	cfg = valid()
	cfg.GraphQL.ArticlesURL = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidGraphQLConfigs)

	cfg = valid()
	cfg.Workers.RefreshInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
