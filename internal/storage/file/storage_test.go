package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hml69/thanbaitet/internal/model"
)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "state.json")
	s.storage = New(s.path)
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
						ID:        "round-1",
						Date:      1700000001000,
						Scores:    map[model.PlayerID]int{"p1": 10, "p2": -10},
						IsSpecial: true,
					},
				},
				Rules:    model.Rules{Type: model.RuleRoundLimit, Value: 10},
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

func (s *StorageSuite) TestSaveCreatesParentDirs() {
	path := filepath.Join(s.T().TempDir(), "nested", "dir", "state.json")
	storage := New(path)

	err := storage.Save(s.ctx, model.NewGameState())
	s.Require().NoError(err)

	_, err = os.Stat(path)
	s.NoError(err)
}

func (s *StorageSuite) TestSaveLeavesNoTempFile() {
	err := s.storage.Save(s.ctx, model.NewGameState())
	s.Require().NoError(err)

	_, err = os.Stat(s.path + ".tmp")
	s.True(os.IsNotExist(err))
}

func (s *StorageSuite) TestLoadCorruptFile() {
	err := os.WriteFile(s.path, []byte("not json{"), 0o644)
	s.Require().NoError(err)

	_, err = s.storage.Load(s.ctx)
	s.Error(err)
	s.NotErrorIs(err, model.ErrNoSavedState)
}

func (s *StorageSuite) TestPersistedDocumentUsesCamelCaseKeys() {
	state := &model.GameState{
		Tables: []model.Table{
			{
				ID:        "t1",
				Name:      "Game",
				CreatedAt: 1700000000000,
				Rounds: []model.Round{
					{ID: "r1", Date: 1, IsSpecial: true, Scores: map[model.PlayerID]int{}},
				},
				IsActive: true,
			},
		},
	}
	s.Require().NoError(s.storage.Save(s.ctx, state))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Contains(string(data), `"createdAt"`)
	s.Contains(string(data), `"isActive"`)
	s.Contains(string(data), `"isSpecial"`)
}
