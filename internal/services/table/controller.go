package table

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/hml69/thanbaitet/internal/dependencies/clock"
	"github.com/hml69/thanbaitet/internal/dependencies/identity"
	"github.com/hml69/thanbaitet/internal/model"
	"github.com/hml69/thanbaitet/internal/storage"
)

// RoundInput carries the operator-supplied fields of a round. Scores may be
// partial; every player of the table receives an explicit entry (default 0)
// and entries for unknown player ids are dropped.
type RoundInput struct {
	Scores    map[model.PlayerID]int
	Note      string
	IsSpecial bool
}

// Controller owns the single in-memory GameState and is the only writer to
// it. Every successful mutation is written through the persistence gateway;
// a failed save is logged and never rolls back the mutation.
type Controller struct {
	mu      sync.RWMutex
	state   *model.GameState
	gateway storage.Gateway
	clock   clock.Clock
	ids     identity.Generator
	logger  *slog.Logger
}

// NewController creates a new table Controller with an empty state.
// Call Hydrate to load previously saved state.
func NewController(
	gateway storage.Gateway,
	clock clock.Clock,
	ids identity.Generator,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		state:   model.NewGameState(),
		gateway: gateway,
		clock:   clock,
		ids:     ids,
		logger:  logger,
	}
}

// Hydrate loads the saved GameState. A first run (no saved state) and a
// corrupt document both fall back to an empty state; neither is fatal.
func (c *Controller) Hydrate(ctx context.Context) {
	state, err := c.gateway.Load(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrNoSavedState) {
			c.logger.Warn("could not load saved state, starting empty",
				slog.String("error", err.Error()))
		}
		state = model.NewGameState()
	}
	if state.Tables == nil {
		state.Tables = []model.Table{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

// CreateTable validates the inputs and prepends a new table to the state,
// so new tables appear first. Each player name produces a Player with a
// fresh id; duplicate names are allowed and disambiguated by id.
func (c *Controller) CreateTable(ctx context.Context, name string, playerNames []string, rules model.Rules) (*model.Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}

	players := make([]model.Player, 0, len(playerNames))
	for _, pn := range playerNames {
		pn = strings.TrimSpace(pn)
		if pn == "" {
			return nil, model.ErrPlayerNameRequired
		}
		players = append(players, model.Player{
			ID:   model.PlayerID(c.ids.NewID()),
			Name: pn,
		})
	}
	if len(players) < 2 {
		return nil, model.ErrNotEnoughPlayers
	}

	if rules.Type == "" {
		rules.Type = model.RuleNone
	}

	table := model.Table{
		ID:        model.TableID(c.ids.NewID()),
		Name:      name,
		CreatedAt: c.clock.Now().UnixMilli(),
		Players:   players,
		Rounds:    []model.Round{},
		Rules:     rules,
		IsActive:  true,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Tables = append([]model.Table{table}, c.state.Tables...)
	c.persist(ctx)

	out := table.Clone()
	return &out, nil
}

// ListTables returns all tables, newest first
func (c *Controller) ListTables(ctx context.Context) []model.Table {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone().Tables
}

// GetTable returns the table with the given id
func (c *Controller) GetTable(ctx context.Context, id model.TableID) (*model.Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.state.TableIndex(id)
	if idx < 0 {
		return nil, model.ErrTableNotFound
	}
	out := c.state.Tables[idx].Clone()
	return &out, nil
}

// DeleteTable removes a table and with it all its players and rounds;
// nothing else references them, so no further cleanup is needed.
func (c *Controller) DeleteTable(ctx context.Context, id model.TableID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.state.TableIndex(id)
	if idx < 0 {
		return model.ErrTableNotFound
	}
	c.state.Tables = append(c.state.Tables[:idx], c.state.Tables[idx+1:]...)
	c.persist(ctx)
	return nil
}

// AddRound appends a new round to the table's ledger. The round's date is
// the creation instant and every current player gets an explicit score
// entry, defaulting to 0.
func (c *Controller) AddRound(ctx context.Context, tableID model.TableID, input RoundInput) (*model.Round, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.state.TableIndex(tableID)
	if idx < 0 {
		return nil, model.ErrTableNotFound
	}
	t := &c.state.Tables[idx]

	round := model.Round{
		ID:        model.RoundID(c.ids.NewID()),
		Date:      c.clock.Now().UnixMilli(),
		Scores:    scoresForPlayers(t.Players, input.Scores),
		Note:      strings.TrimSpace(input.Note),
		IsSpecial: input.IsSpecial,
	}

	t.Rounds = append(t.Rounds, round)
	c.persist(ctx)

	out := round.Clone()
	return &out, nil
}

// EditRound replaces the scores, note and special flag of an existing
// round. The round's id and original date are preserved, so its position in
// the date-ordered history does not move.
func (c *Controller) EditRound(ctx context.Context, tableID model.TableID, roundID model.RoundID, input RoundInput) (*model.Round, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.state.TableIndex(tableID)
	if idx < 0 {
		return nil, model.ErrTableNotFound
	}
	t := &c.state.Tables[idx]

	ri := t.RoundIndex(roundID)
	if ri < 0 {
		return nil, model.ErrRoundNotFound
	}

	round := &t.Rounds[ri]
	round.Scores = scoresForPlayers(t.Players, input.Scores)
	round.Note = strings.TrimSpace(input.Note)
	round.IsSpecial = input.IsSpecial
	c.persist(ctx)

	out := round.Clone()
	return &out, nil
}

// DeleteRound removes the round with the given id from the table's ledger
func (c *Controller) DeleteRound(ctx context.Context, tableID model.TableID, roundID model.RoundID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.state.TableIndex(tableID)
	if idx < 0 {
		return model.ErrTableNotFound
	}
	t := &c.state.Tables[idx]

	ri := t.RoundIndex(roundID)
	if ri < 0 {
		return model.ErrRoundNotFound
	}

	t.Rounds = append(t.Rounds[:ri], t.Rounds[ri+1:]...)
	c.persist(ctx)
	return nil
}

// scoresForPlayers builds a full score map for the given players: supplied
// values are taken, missing ones default to 0, unknown player ids are
// dropped.
func scoresForPlayers(players []model.Player, supplied map[model.PlayerID]int) map[model.PlayerID]int {
	scores := make(map[model.PlayerID]int, len(players))
	for _, p := range players {
		scores[p.ID] = supplied[p.ID]
	}
	return scores
}

// persist writes the current state through the gateway. Callers must hold
// the write lock. A save failure does not roll back the in-memory mutation;
// the session keeps the user's change even when it cannot be stored.
func (c *Controller) persist(ctx context.Context) {
	if err := c.gateway.Save(ctx, c.state); err != nil {
		c.logger.Warn("state save failed", slog.String("error", err.Error()))
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	Hydrate(ctx context.Context)
	CreateTable(ctx context.Context, name string, playerNames []string, rules model.Rules) (*model.Table, error)
	ListTables(ctx context.Context) []model.Table
	GetTable(ctx context.Context, id model.TableID) (*model.Table, error)
	DeleteTable(ctx context.Context, id model.TableID) error
	AddRound(ctx context.Context, tableID model.TableID, input RoundInput) (*model.Round, error)
	EditRound(ctx context.Context, tableID model.TableID, roundID model.RoundID, input RoundInput) (*model.Round, error)
	DeleteRound(ctx context.Context, tableID model.TableID, roundID model.RoundID) error
}

var _ ControllerInterface = (*Controller)(nil)
