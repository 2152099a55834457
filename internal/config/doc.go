// Package config provides configuration loading, merging, and validation
// facilities for the CMS client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (after an optional .env file load)
//  2. Command-line flags (whose defaults act as the fallback layer)
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated client view.
package config
