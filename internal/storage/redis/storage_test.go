package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hml69/thanbaitet/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
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
					},
				},
				Rules:    model.Rules{Type: model.RuleNone},
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

func (s *StorageSuite) TestSaveUsesWellKnownKey() {
	s.Require().NoError(s.storage.Save(s.ctx, model.NewGameState()))

	s.True(s.mini.Exists("thanbaitet:state"))
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

func (s *StorageSuite) TestLoadCorruptDocument() {
	s.Require().NoError(s.mini.Set("thanbaitet:state", "not json{"))

	_, err := s.storage.Load(s.ctx)
	s.Error(err)
	s.NotErrorIs(err, model.ErrNoSavedState)
}
