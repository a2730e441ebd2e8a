package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hml69/thanbaitet/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestLoadNoSavedState() {
	_, err := s.storage.Load(s.ctx)
	s.ErrorIs(err, model.ErrNoSavedState)
}

func (s *StorageSuite) TestSaveAndLoad() {
	state := &model.GameState{
		Tables: []model.Table{
			{
				ID:        "table-1",
				Name:      "Friday Night",
				CreatedAt: 1700000000000,
				Players: []model.Player{
					{ID: "p1", Name: "An"},
					{ID: "p2", Name: "Binh"},
				},
				Rounds: []model.Round{
					{
						ID:     "round-1",
						Date:   1700000001000,
						Scores: map[model.PlayerID]int{"p1": 10, "p2": -10},
						Note:   "opener",
					},
				},
				Rules:    model.Rules{Type: model.RuleScoreLimit, Value: 50},
				IsActive: true,
			},
		},
	}

	err := s.storage.Save(s.ctx, state)
	s.Require().NoError(err)

	loaded, err := s.storage.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(state, loaded)
}

func (s *StorageSuite) TestSaveReplacesPrevious() {
	first := &model.GameState{Tables: []model.Table{{ID: "t1", Name: "First"}}}
	second := &model.GameState{Tables: []model.Table{{ID: "t2", Name: "Second"}}}

	s.Require().NoError(s.storage.Save(s.ctx, first))
	s.Require().NoError(s.storage.Save(s.ctx, second))

	loaded, err := s.storage.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(loaded.Tables, 1)
	s.Equal(model.TableID("t2"), loaded.Tables[0].ID)
}

func (s *StorageSuite) TestLoadedStateIsDetached() {
	state := &model.GameState{Tables: []model.Table{{ID: "t1", Name: "Game"}}}
	s.Require().NoError(s.storage.Save(s.ctx, state))

	loaded, err := s.storage.Load(s.ctx)
	s.Require().NoError(err)
	loaded.Tables[0].Name = "Mutated"

	again, err := s.storage.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal("Game", again.Tables[0].Name)
}
