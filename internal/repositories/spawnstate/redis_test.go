package spawnstate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	spawnstaterepo "github.com/mythosquest/mission-engine/internal/repositories/spawnstate"
	"github.com/mythosquest/mission-engine/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    spawnstaterepo.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := spawnstaterepo.NewRedis(&spawnstaterepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func testState() *mission.ObjectiveSpawnState {
	return &mission.ObjectiveSpawnState{
		ScenarioID: "scn_1",
		QuestItems: []mission.QuestItem{
			{
				ID:              "qi_1",
				ObjectiveID:     "obj_1",
				ScenarioID:      "scn_1",
				Type:            mission.QuestItemKey,
				Name:            "brass key",
				Spawned:         true,
				SpawnedOnTileID: "tile_7",
			},
		},
		QuestTiles: []mission.QuestTile{
			{ID: "qt_1", ObjectiveID: "obj_2", Type: mission.QuestTileExit, Revealed: true},
		},
		TilesExplored:       9,
		ItemsCollected:      0,
		TilesSinceLastSpawn: 3,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoundTrip() {
	original := testState()

	_, err := s.repo.Save(s.ctx, spawnstaterepo.SaveInput{State: original})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, spawnstaterepo.GetInput{ScenarioID: "scn_1"})
	s.Require().NoError(err)

	// Pity counter and spawn/reveal flags must restore exactly
	s.Equal(original, got.State)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	state := testState()
	_, err := s.repo.Save(s.ctx, spawnstaterepo.SaveInput{State: state})
	s.Require().NoError(err)

	state = state.Clone()
	state.TilesExplored = 10
	state.TilesSinceLastSpawn = 0
	state.QuestItems[0].Collected = true
	state.ItemsCollected = 1

	_, err = s.repo.Save(s.ctx, spawnstaterepo.SaveInput{State: state})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, spawnstaterepo.GetInput{ScenarioID: "scn_1"})
	s.Require().NoError(err)
	s.Equal(10, got.State.TilesExplored)
	s.Equal(1, got.State.ItemsCollected)
	s.True(got.State.QuestItems[0].Collected)
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, spawnstaterepo.SaveInput{})
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	_, err = s.repo.Save(s.ctx, spawnstaterepo.SaveInput{State: &mission.ObjectiveSpawnState{}})
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, spawnstaterepo.GetInput{ScenarioID: "scn_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, spawnstaterepo.SaveInput{State: testState()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, spawnstaterepo.DeleteInput{ScenarioID: "scn_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, spawnstaterepo.GetInput{ScenarioID: "scn_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, spawnstaterepo.DeleteInput{ScenarioID: "scn_1"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
