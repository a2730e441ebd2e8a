package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hml69/thanbaitet/internal/model"
	"github.com/hml69/thanbaitet/internal/storage"
)

// Storage is an in-memory implementation of the persistence gateway.
// The state is held serialized so Save/Load round-trips behave exactly like
// the durable backends.
type Storage struct {
	mu   sync.RWMutex
	blob []byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Gateway = (*Storage)(nil)

func (s *Storage) Load(ctx context.Context) (*model.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.blob == nil {
		return nil, model.ErrNoSavedState
	}
	var state model.GameState
	if err := json.Unmarshal(s.blob, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *Storage) Save(ctx context.Context, state *model.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = data
	return nil
}
