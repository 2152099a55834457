package config

import (
	"fmt"
	"time"
)

// ClientAPI holds auth API settings used by the client transport layer.
type ClientAPI struct {
	// Address is the base URL of the auth REST API.
	Address string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientGraphQL holds the content GraphQL endpoint URLs.
type ClientGraphQL struct {
	// ArticlesURL is the articles GraphQL endpoint.
	ArticlesURL string
	// WordPressURL is the external WordPress GraphQL endpoint.
	// Empty disables WordPress reads.
	WordPressURL string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the token refresh worker runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// API contains auth API address and timeout settings.
	API ClientAPI
	// GraphQL contains content endpoint URLs.
	GraphQL ClientGraphQL
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			Address:        cfg.API.Address,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		GraphQL: ClientGraphQL{
			ArticlesURL:  cfg.GraphQL.ArticlesURL,
			WordPressURL: cfg.GraphQL.WordPressURL,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
