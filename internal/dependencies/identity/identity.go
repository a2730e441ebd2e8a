package identity

import "github.com/google/uuid"

// Generator produces opaque identifiers for tables, players and rounds.
// Uniqueness is probabilistic (128-bit random), not checked against a
// registry of issued ids.
type Generator interface {
	NewID() string
}

// UUIDGenerator implements Generator using random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
