package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a auth API base URL
//	-articles-url articles GraphQL endpoint URL
//	-wordpress-url external WordPress GraphQL endpoint URL
//	-d client database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval access-token refresh interval (e.g., "10m")
//
// Flag defaults act as the lowest-priority configuration source: values
// from the environment are merged before flags and win when set.
func ParseFlags() *StructuredConfig {
	var apiAddress string
	var articlesURL string
	var wordpressURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&apiAddress, "a", "http://localhost:5000", "Auth API base URL")
	flag.StringVar(&articlesURL, "articles-url", "http://localhost:5000/graphql", "Articles GraphQL endpoint URL")
	flag.StringVar(&wordpressURL, "wordpress-url", "", "WordPress GraphQL endpoint URL")
	flag.StringVar(&databaseDSN, "d", "cms-client.db", "Client database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 30*time.Second, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 10*time.Minute, "Access-token refresh interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			Address:        apiAddress,
			RequestTimeout: requestTimeout,
		},
		GraphQL: GraphQL{
			ArticlesURL:  articlesURL,
			WordPressURL: wordpressURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}
}
