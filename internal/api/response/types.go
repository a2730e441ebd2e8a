package response

import (
	"github.com/hml69/thanbaitet/internal/model"
	"github.com/hml69/thanbaitet/internal/services/scoring"
)

// Player represents a player in API responses
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:   string(p.ID),
		Name: p.Name,
	}
}

// Round represents a round in API responses
type Round struct {
	ID        string         `json:"id"`
	Date      int64          `json:"date"`
	Scores    map[string]int `json:"scores"`
	Note      string         `json:"note,omitempty"`
	IsSpecial bool           `json:"is_special,omitempty"`
}

// RoundFromModel converts a model.Round to a response Round
func RoundFromModel(r model.Round) Round {
	scores := make(map[string]int, len(r.Scores))
	for pid, v := range r.Scores {
		scores[string(pid)] = v
	}
	return Round{
		ID:        string(r.ID),
		Date:      r.Date,
		Scores:    scores,
		Note:      r.Note,
		IsSpecial: r.IsSpecial,
	}
}

// Rules represents a table's rules
type Rules struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// RulesFromModel converts model.Rules
func RulesFromModel(r model.Rules) Rules {
	return Rules{
		Type:  string(r.Type),
		Value: r.Value,
	}
}

// Table represents a table in API responses
type Table struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedAt int64    `json:"created_at"`
	Players   []Player `json:"players"`
	Rounds    []Round  `json:"rounds"`
	Rules     Rules    `json:"rules"`
	IsActive  bool     `json:"is_active"`
}

// TableFromModel converts a model.Table to a response Table
func TableFromModel(t *model.Table) Table {
	players := make([]Player, len(t.Players))
	for i, p := range t.Players {
		players[i] = PlayerFromModel(p)
	}

	rounds := make([]Round, len(t.Rounds))
	for i, r := range t.Rounds {
		rounds[i] = RoundFromModel(r)
	}

	return Table{
		ID:        string(t.ID),
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		Players:   players,
		Rounds:    rounds,
		Rules:     RulesFromModel(t.Rules),
		IsActive:  t.IsActive,
	}
}

// RuleStatus represents the evaluated rule limit
type RuleStatus struct {
	Type         string `json:"type"`
	Value        int    `json:"value"`
	RoundsPlayed int    `json:"rounds_played"`
	Reached      bool   `json:"reached"`
}

// RuleStatusFromModel converts scoring.RuleStatus
func RuleStatusFromModel(s scoring.RuleStatus) RuleStatus {
	return RuleStatus{
		Type:         string(s.Type),
		Value:        s.Value,
		RoundsPlayed: s.RoundsPlayed,
		Reached:      s.Reached,
	}
}

// Standing is one row of the ranked scoreboard
type Standing struct {
	Rank   int    `json:"rank"`
	Player Player `json:"player"`
	Score  int    `json:"score"`
}

// Scoreboard is the derived score view of a table
type Scoreboard struct {
	TableID    string         `json:"table_id"`
	Scores     map[string]int `json:"scores"`
	Standings  []Standing     `json:"standings"`
	Leader     *Player        `json:"leader,omitempty"`
	Trailer    *Player        `json:"trailer,omitempty"`
	RuleStatus RuleStatus     `json:"rule_status"`
}

// ScoreboardFromModel assembles a Scoreboard from the aggregator's outputs
func ScoreboardFromModel(t *model.Table, scores map[model.PlayerID]int, ranked []model.Player, leader, trailer *model.Player, status scoring.RuleStatus) Scoreboard {
	scoresResp := make(map[string]int, len(scores))
	for pid, v := range scores {
		scoresResp[string(pid)] = v
	}

	standings := make([]Standing, len(ranked))
	for i, p := range ranked {
		standings[i] = Standing{
			Rank:   i + 1,
			Player: PlayerFromModel(p),
			Score:  scores[p.ID],
		}
	}

	var leaderResp *Player
	if leader != nil {
		p := PlayerFromModel(*leader)
		leaderResp = &p
	}
	var trailerResp *Player
	if trailer != nil {
		p := PlayerFromModel(*trailer)
		trailerResp = &p
	}

	return Scoreboard{
		TableID:    string(t.ID),
		Scores:     scoresResp,
		Standings:  standings,
		Leader:     leaderResp,
		Trailer:    trailerResp,
		RuleStatus: RuleStatusFromModel(status),
	}
}

// History is a table's rounds, newest first
type History struct {
	TableID string  `json:"table_id"`
	Rounds  []Round `json:"rounds"`
}

// HistoryFromModel converts a date-sorted round list
func HistoryFromModel(t *model.Table, rounds []model.Round) History {
	out := make([]Round, len(rounds))
	for i, r := range rounds {
		out[i] = RoundFromModel(r)
	}
	return History{
		TableID: string(t.ID),
		Rounds:  out,
	}
}
