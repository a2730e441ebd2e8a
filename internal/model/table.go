package model

// TableID uniquely identifies a table
type TableID string

// PlayerID uniquely identifies a player within a table
type PlayerID string

// RoundID uniquely identifies a round within a table
type RoundID string

// Player is a participant at a table. Players are created when the table is
// created and never renamed or removed afterwards.
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}

// Round records one scoring event: a point delta per player.
// Date is the creation instant in milliseconds since epoch and is never
// changed by edits, so rounds keep their chronological position.
type Round struct {
	ID        RoundID          `json:"id"`
	Date      int64            `json:"date"`
	Scores    map[PlayerID]int `json:"scores"`
	Note      string           `json:"note,omitempty"`
	IsSpecial bool             `json:"isSpecial,omitempty"`
}

// Score returns the round's delta for a player, defaulting to 0 when the
// round has no entry for that player.
func (r *Round) Score(id PlayerID) int {
	return r.Scores[id]
}

// Clone returns a deep copy of the round
func (r *Round) Clone() Round {
	out := *r
	out.Scores = make(map[PlayerID]int, len(r.Scores))
	for pid, v := range r.Scores {
		out.Scores[pid] = v
	}
	return out
}

// RuleType identifies an optional end-of-game rule
type RuleType string

const (
	RuleNone       RuleType = "NONE"
	RuleScoreLimit RuleType = "SCORE_LIMIT"
	RuleRoundLimit RuleType = "ROUND_LIMIT"
)

// Rules is an optional stopping condition for a table. It is evaluated for
// display only and never blocks further rounds. Value is meaningless when
// Type is RuleNone.
type Rules struct {
	Type  RuleType `json:"type"`
	Value int      `json:"value"`
}

// Table is a single ongoing game session: a fixed player list and an
// accumulating round ledger. Rounds are kept in add order; display ordering
// by date is a derived view.
type Table struct {
	ID        TableID  `json:"id"`
	Name      string   `json:"name"`
	CreatedAt int64    `json:"createdAt"`
	Players   []Player `json:"players"`
	Rounds    []Round  `json:"rounds"`
	Rules     Rules    `json:"rules"`
	IsActive  bool     `json:"isActive"`
}

// HasPlayer reports whether the table has a player with this id
func (t *Table) HasPlayer(id PlayerID) bool {
	for _, p := range t.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// RoundIndex returns the position of the round with this id, or -1
func (t *Table) RoundIndex(id RoundID) int {
	for i := range t.Rounds {
		if t.Rounds[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the table
func (t *Table) Clone() Table {
	out := *t
	out.Players = make([]Player, len(t.Players))
	copy(out.Players, t.Players)
	out.Rounds = make([]Round, len(t.Rounds))
	for i := range t.Rounds {
		out.Rounds[i] = t.Rounds[i].Clone()
	}
	return out
}

// GameState is the whole persisted application state: every table, newest
// first (creation prepends). Exactly one instance exists per process.
type GameState struct {
	Tables []Table `json:"tables"`
}

// NewGameState returns an empty state
func NewGameState() *GameState {
	return &GameState{Tables: []Table{}}
}

// TableIndex returns the position of the table with this id, or -1
func (s *GameState) TableIndex(id TableID) int {
	for i := range s.Tables {
		if s.Tables[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the state
func (s *GameState) Clone() *GameState {
	out := &GameState{Tables: make([]Table, len(s.Tables))}
	for i := range s.Tables {
		out.Tables[i] = s.Tables[i].Clone()
	}
	return out
}
