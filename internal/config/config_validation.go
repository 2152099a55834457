// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; client-specific rules are enforced on the
// [ClientConfig] view instead, after the relevant fields are extracted.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.API.Address == "" || cfg.API.RequestTimeout == 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.GraphQL.ArticlesURL == "" {
		return ErrInvalidGraphQLConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
