package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered request identifiers for outgoing
// HTTP calls. Identifiers are attached as the X-Request-ID header so
// client and server log entries for the same call can be correlated.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
