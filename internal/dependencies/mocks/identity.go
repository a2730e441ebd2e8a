package mocks

import (
	"fmt"

	"github.com/hml69/thanbaitet/internal/dependencies/identity"
)

// MockGenerator is a mock implementation of the id Generator for testing
type MockGenerator struct {
	// IDs is a queue of ids to return from NewID
	IDs []string
	idx int

	// seq numbers the fallback ids once the queue is drained
	seq int
}

// Ensure MockGenerator implements Generator
var _ identity.Generator = (*MockGenerator)(nil)

// NewMockGenerator creates a new MockGenerator
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// NewID returns the next queued id, or a sequential "id-N" if none remain
func (g *MockGenerator) NewID() string {
	if g.idx < len(g.IDs) {
		id := g.IDs[g.idx]
		g.idx++
		return id
	}
	g.seq++
	return fmt.Sprintf("id-%d", g.seq)
}

// QueueID adds ids to the result queue
func (g *MockGenerator) QueueID(ids ...string) {
	g.IDs = append(g.IDs, ids...)
}

// Reset clears all queued ids and the sequence counter
func (g *MockGenerator) Reset() {
	g.IDs = nil
	g.idx = 0
	g.seq = 0
}
