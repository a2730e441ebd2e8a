package storage

import (
	"context"

	"github.com/hml69/thanbaitet/internal/model"
)

// Gateway persists the whole GameState as a single document under a fixed
// well-known key. Load returns model.ErrNoSavedState on first run; a corrupt
// stored document surfaces as an error and is recovered by the caller.
type Gateway interface {
	Load(ctx context.Context) (*model.GameState, error)
	Save(ctx context.Context, state *model.GameState) error
}
