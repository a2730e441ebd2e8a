package scoring

import (
	"testing"

	"github.com/hml69/thanbaitet/internal/model"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// Helper to create a table with the given players
func (s *ServiceSuite) createTable(playerIDs ...model.PlayerID) *model.Table {
	players := make([]model.Player, len(playerIDs))
	for i, id := range playerIDs {
		players[i] = model.Player{ID: id, Name: string(id)}
	}
	return &model.Table{
		ID:       "table-1",
		Name:     "Test Table",
		Players:  players,
		Rounds:   []model.Round{},
		Rules:    model.Rules{Type: model.RuleNone},
		IsActive: true,
	}
}

func (s *ServiceSuite) addRound(t *model.Table, date int64, scores map[model.PlayerID]int) {
	t.Rounds = append(t.Rounds, model.Round{
		ID:     model.RoundID("round-" + string(rune('a'+len(t.Rounds)))),
		Date:   date,
		Scores: scores,
	})
}

// ComputeScores tests

func (s *ServiceSuite) TestComputeScoresNoRounds() {
	table := s.createTable("a", "b")

	scores := s.service.ComputeScores(table)

	s.Equal(map[model.PlayerID]int{"a": 0, "b": 0}, scores)
}

func (s *ServiceSuite) TestComputeScoresFoldsRounds() {
	table := s.createTable("a", "b")
	s.addRound(table, 1, map[model.PlayerID]int{"a": 10, "b": -10})
	s.addRound(table, 2, map[model.PlayerID]int{"a": -3, "b": 3})

	scores := s.service.ComputeScores(table)

	s.Equal(map[model.PlayerID]int{"a": 7, "b": -7}, scores)
}

func (s *ServiceSuite) TestComputeScoresMissingEntryCountsZero() {
	table := s.createTable("a", "b", "c")
	s.addRound(table, 1, map[model.PlayerID]int{"a": 5, "b": -5})

	scores := s.service.ComputeScores(table)

	s.Equal(0, scores["c"])
}

func (s *ServiceSuite) TestComputeScoresNonzeroSumAllowed() {
	table := s.createTable("a", "b")
	s.addRound(table, 1, map[model.PlayerID]int{"a": 10, "b": 5})

	scores := s.service.ComputeScores(table)

	s.Equal(10, scores["a"])
	s.Equal(5, scores["b"])
}

// RankPlayers tests

func (s *ServiceSuite) TestRankPlayersDescending() {
	table := s.createTable("a", "b", "c")
	s.addRound(table, 1, map[model.PlayerID]int{"a": -5, "b": 10, "c": -5})

	scores := s.service.ComputeScores(table)
	ranked := s.service.RankPlayers(table, scores)

	s.Equal(model.PlayerID("b"), ranked[0].ID)
}

func (s *ServiceSuite) TestRankPlayersTieKeepsTableOrder() {
	table := s.createTable("a", "b", "c")
	s.addRound(table, 1, map[model.PlayerID]int{"a": 0, "b": 5, "c": 0})

	scores := s.service.ComputeScores(table)
	ranked := s.service.RankPlayers(table, scores)

	// a and c are tied; a comes first in the player list
	s.Equal(model.PlayerID("b"), ranked[0].ID)
	s.Equal(model.PlayerID("a"), ranked[1].ID)
	s.Equal(model.PlayerID("c"), ranked[2].ID)
}

func (s *ServiceSuite) TestRankPlayersDoesNotMutateTable() {
	table := s.createTable("a", "b")
	s.addRound(table, 1, map[model.PlayerID]int{"a": -1, "b": 1})

	scores := s.service.ComputeScores(table)
	s.service.RankPlayers(table, scores)

	s.Equal(model.PlayerID("a"), table.Players[0].ID)
}

// Leader and Trailer tests

func (s *ServiceSuite) TestLeaderRequiresPositiveScore() {
	table := s.createTable("a", "b")
	s.addRound(table, 1, map[model.PlayerID]int{"a": 10, "b": -10})

	scores := s.service.ComputeScores(table)
	ranked := s.service.RankPlayers(table, scores)

	leader := s.service.Leader(ranked, scores)
	s.Require().NotNil(leader)
	s.Equal(model.PlayerID("a"), leader.ID)
}

func (s *ServiceSuite) TestNoLeaderAtZero() {
	table := s.createTable("a", "b")

	scores := s.service.ComputeScores(table)
	ranked := s.service.RankPlayers(table, scores)

	s.Nil(s.service.Leader(ranked, scores))
	s.Nil(s.service.Trailer(ranked, scores))
}

func (s *ServiceSuite) TestTrailerRequiresNegativeScore() {
	table := s.createTable("a", "b")
	s.addRound(table, 1, map[model.PlayerID]int{"a": 10, "b": -10})

	scores := s.service.ComputeScores(table)
	ranked := s.service.RankPlayers(table, scores)

	trailer := s.service.Trailer(ranked, scores)
	s.Require().NotNil(trailer)
	s.Equal(model.PlayerID("b"), trailer.ID)
}

func (s *ServiceSuite) TestNoTrailerWhenEveryoneAhead() {
	table := s.createTable("a", "b")
	s.addRound(table, 1, map[model.PlayerID]int{"a": 10, "b": 5})

	scores := s.service.ComputeScores(table)
	ranked := s.service.RankPlayers(table, scores)

	s.NotNil(s.service.Leader(ranked, scores))
	s.Nil(s.service.Trailer(ranked, scores))
}

func (s *ServiceSuite) TestLeaderTrailerEmptyRanking() {
	s.Nil(s.service.Leader(nil, nil))
	s.Nil(s.service.Trailer(nil, nil))
}

// EvaluateRules tests

func (s *ServiceSuite) TestEvaluateRulesNone() {
	table := s.createTable("a", "b")
	s.addRound(table, 1, map[model.PlayerID]int{"a": 100, "b": -100})

	status := s.service.EvaluateRules(table)

	s.Equal(model.RuleNone, status.Type)
	s.Equal(1, status.RoundsPlayed)
	s.False(status.Reached)
}

func (s *ServiceSuite) TestEvaluateRulesRoundLimit() {
	table := s.createTable("a", "b")
	table.Rules = model.Rules{Type: model.RuleRoundLimit, Value: 2}
	s.addRound(table, 1, map[model.PlayerID]int{"a": 1, "b": -1})

	s.False(s.service.EvaluateRules(table).Reached)

	s.addRound(table, 2, map[model.PlayerID]int{"a": 1, "b": -1})

	status := s.service.EvaluateRules(table)
	s.True(status.Reached)
	s.Equal(2, status.RoundsPlayed)
}

func (s *ServiceSuite) TestEvaluateRulesScoreLimit() {
	table := s.createTable("a", "b")
	table.Rules = model.Rules{Type: model.RuleScoreLimit, Value: 20}
	s.addRound(table, 1, map[model.PlayerID]int{"a": 15, "b": -15})

	s.False(s.service.EvaluateRules(table).Reached)

	s.addRound(table, 2, map[model.PlayerID]int{"a": 5, "b": -5})

	s.True(s.service.EvaluateRules(table).Reached)
}

func (s *ServiceSuite) TestEvaluateRulesScoreLimitIgnoresNegative() {
	table := s.createTable("a", "b")
	table.Rules = model.Rules{Type: model.RuleScoreLimit, Value: 20}
	s.addRound(table, 1, map[model.PlayerID]int{"a": -25, "b": 10})

	s.False(s.service.EvaluateRules(table).Reached)
}

// History tests

func (s *ServiceSuite) TestHistoryNewestFirst() {
	table := s.createTable("a", "b")
	s.addRound(table, 100, map[model.PlayerID]int{"a": 1, "b": -1})
	s.addRound(table, 300, map[model.PlayerID]int{"a": 2, "b": -2})
	s.addRound(table, 200, map[model.PlayerID]int{"a": 3, "b": -3})

	history := s.service.History(table)

	s.Require().Len(history, 3)
	s.Equal(int64(300), history[0].Date)
	s.Equal(int64(200), history[1].Date)
	s.Equal(int64(100), history[2].Date)
}

func (s *ServiceSuite) TestHistoryEqualDatesKeepAddOrder() {
	table := s.createTable("a", "b")
	s.addRound(table, 100, map[model.PlayerID]int{"a": 1, "b": -1})
	s.addRound(table, 100, map[model.PlayerID]int{"a": 2, "b": -2})

	history := s.service.History(table)

	s.Require().Len(history, 2)
	s.Equal(1, history[0].Scores["a"])
	s.Equal(2, history[1].Scores["a"])
}

func (s *ServiceSuite) TestHistoryDoesNotMutateLedger() {
	table := s.createTable("a", "b")
	s.addRound(table, 200, map[model.PlayerID]int{"a": 1, "b": -1})
	s.addRound(table, 100, map[model.PlayerID]int{"a": 2, "b": -2})

	history := s.service.History(table)
	history[0].Scores["a"] = 999

	s.Equal(int64(200), table.Rounds[0].Date)
	s.Equal(1, table.Rounds[0].Scores["a"])
}

func (s *ServiceSuite) TestHistoryEmpty() {
	table := s.createTable("a", "b")
	s.Empty(s.service.History(table))
}
