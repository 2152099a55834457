package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid auth API settings
	// (for example, missing address or zero request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidGraphQLConfigs indicates invalid GraphQL endpoint settings
	// (for example, missing articles endpoint URL).
	ErrInvalidGraphQLConfigs = errors.New("invalid graphql configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
