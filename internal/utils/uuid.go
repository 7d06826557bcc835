package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for sessions and sync runs.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a ready-to-use generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-sortable UUIDv7 string, falling back to a random
// UUIDv4 when the system clock refuses to cooperate.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}

	return uuid.NewString()
}
