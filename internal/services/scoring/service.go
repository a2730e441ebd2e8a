package scoring

import (
	"sort"

	"github.com/hml69/thanbaitet/internal/model"
)

// Service computes derived views of a table's round ledger. Rounds are the
// source of truth; nothing here is cached or stored.
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// ComputeScores folds the round ledger into a cumulative score per player.
// Every player starts at 0; rounds with no entry for a player contribute 0.
func (s *Service) ComputeScores(table *model.Table) map[model.PlayerID]int {
	scores := make(map[model.PlayerID]int, len(table.Players))
	for _, p := range table.Players {
		scores[p.ID] = 0
	}
	for i := range table.Rounds {
		for _, p := range table.Players {
			scores[p.ID] += table.Rounds[i].Score(p.ID)
		}
	}
	return scores
}

// RankPlayers returns the table's players sorted by score descending.
// The sort is stable: players with equal scores keep their table order.
func (s *Service) RankPlayers(table *model.Table, scores map[model.PlayerID]int) []model.Player {
	ranked := make([]model.Player, len(table.Players))
	copy(ranked, table.Players)

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})

	return ranked
}

// Leader returns the top-ranked player, but only when their score is
// positive; a table where nobody is ahead has no leader.
func (s *Service) Leader(ranked []model.Player, scores map[model.PlayerID]int) *model.Player {
	if len(ranked) == 0 {
		return nil
	}
	top := ranked[0]
	if scores[top.ID] <= 0 {
		return nil
	}
	return &top
}

// Trailer returns the bottom-ranked player, but only when their score is
// negative.
func (s *Service) Trailer(ranked []model.Player, scores map[model.PlayerID]int) *model.Player {
	if len(ranked) == 0 {
		return nil
	}
	bottom := ranked[len(ranked)-1]
	if scores[bottom.ID] >= 0 {
		return nil
	}
	return &bottom
}

// RuleStatus is the result of evaluating a table's rules. It is
// informational only: a reached limit never blocks further rounds.
type RuleStatus struct {
	Type         model.RuleType
	Value        int
	RoundsPlayed int
	Reached      bool
}

// EvaluateRules evaluates the table's rule limit against the current ledger.
// ROUND_LIMIT compares the round count; SCORE_LIMIT is reached when any
// player's cumulative score has reached the threshold. Evaluated fresh on
// every call.
func (s *Service) EvaluateRules(table *model.Table) RuleStatus {
	status := RuleStatus{
		Type:         table.Rules.Type,
		Value:        table.Rules.Value,
		RoundsPlayed: len(table.Rounds),
	}

	switch table.Rules.Type {
	case model.RuleRoundLimit:
		status.Reached = len(table.Rounds) >= table.Rules.Value
	case model.RuleScoreLimit:
		for _, score := range s.ComputeScores(table) {
			if score >= table.Rules.Value {
				status.Reached = true
				break
			}
		}
	}

	return status
}

// History returns the table's rounds newest-first by date. Edited rounds
// keep their original date, so they keep their chronological position.
func (s *Service) History(table *model.Table) []model.Round {
	rounds := make([]model.Round, len(table.Rounds))
	for i := range table.Rounds {
		rounds[i] = table.Rounds[i].Clone()
	}

	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].Date > rounds[j].Date
	})

	return rounds
}

// Interface for dependency injection
type ServiceInterface interface {
	ComputeScores(table *model.Table) map[model.PlayerID]int
	RankPlayers(table *model.Table, scores map[model.PlayerID]int) []model.Player
	Leader(ranked []model.Player, scores map[model.PlayerID]int) *model.Player
	Trailer(ranked []model.Player, scores map[model.PlayerID]int) *model.Player
	EvaluateRules(table *model.Table) RuleStatus
	History(table *model.Table) []model.Round
}

var _ ServiceInterface = (*Service)(nil)
