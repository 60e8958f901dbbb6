package spawner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	spawnerservice "github.com/mythosquest/mission-engine/internal/services/spawner"
)

func TestFindBestSpawnTile(t *testing.T) {
	o := newTestOrchestrator(t, 100)
	ctx := context.Background()
	key := &mission.QuestItem{ID: "qi_obj_find_key", Type: mission.QuestItemKey}

	t.Run("prefers high-affinity rooms", func(t *testing.T) {
		tiles := []mission.Tile{
			*roomTile("tile_a_kitchen", mission.TileCategoryKitchen),
			*roomTile("tile_b_study", mission.TileCategoryStudy),
			*roomTile("tile_c_foyer", mission.TileCategoryFoyer),
		}
		out, err := o.FindBestSpawnTile(ctx, &spawnerservice.FindBestSpawnTileInput{
			Item: key, Tiles: tiles,
		})
		require.NoError(t, err)
		require.NotNil(t, out.Tile)
		assert.Equal(t, "tile_b_study", out.Tile.ID, "keys favor studies")
	})

	t.Run("ties break on ascending tile ID", func(t *testing.T) {
		tiles := []mission.Tile{
			*roomTile("tile_b", mission.TileCategoryKitchen),
			*roomTile("tile_a", mission.TileCategoryKitchen),
		}
		out, err := o.FindBestSpawnTile(ctx, &spawnerservice.FindBestSpawnTileInput{
			Item: key, Tiles: tiles,
		})
		require.NoError(t, err)
		require.NotNil(t, out.Tile)
		assert.Equal(t, "tile_a", out.Tile.ID)
	})

	t.Run("skips occupied, used, and unexplored tiles", func(t *testing.T) {
		occupied := *roomTile("tile_occupied", mission.TileCategoryStudy)
		occupied.Items = []string{"lantern"}
		unexplored := *roomTile("tile_dark", mission.TileCategoryStudy)
		unexplored.Explored = false
		used := *roomTile("tile_used", mission.TileCategoryStudy)
		fallback := *roomTile("tile_plain", mission.TileCategoryKitchen)

		out, err := o.FindBestSpawnTile(ctx, &spawnerservice.FindBestSpawnTileInput{
			Item:        key,
			Tiles:       []mission.Tile{occupied, unexplored, used, fallback},
			UsedTileIDs: []string{"tile_used"},
		})
		require.NoError(t, err)
		require.NotNil(t, out.Tile)
		assert.Equal(t, "tile_plain", out.Tile.ID)
	})

	t.Run("no eligible tile returns nil", func(t *testing.T) {
		corridor := *roomTile("tile_corridor", mission.TileCategoryCorridor)
		out, err := o.FindBestSpawnTile(ctx, &spawnerservice.FindBestSpawnTileInput{
			Item: key, Tiles: []mission.Tile{corridor},
		})
		require.NoError(t, err)
		assert.Nil(t, out.Tile)
	})
}

func TestSpawnRevealedQuestTile(t *testing.T) {
	o := newTestOrchestrator(t, 100)
	ctx := context.Background()

	revealedState := func() *mission.ObjectiveSpawnState {
		return &mission.ObjectiveSpawnState{
			ScenarioID: "scen_test",
			QuestTiles: []mission.QuestTile{
				{
					ID:          "qt_obj_reach_exit",
					ObjectiveID: "obj_reach_exit",
					Type:        mission.QuestTileExit,
					Revealed:    true,
				},
			},
		}
	}

	t.Run("materializes on the best explored room", func(t *testing.T) {
		state := revealedState()
		tiles := []mission.Tile{
			*roomTile("tile_cellar", mission.TileCategoryCellar),
			*roomTile("tile_entrance", mission.TileCategoryEntrance),
		}
		out, err := o.SpawnRevealedQuestTile(ctx, &spawnerservice.SpawnRevealedQuestTileInput{
			State: state, QuestTileID: "qt_obj_reach_exit", ExploredTiles: tiles,
		})
		require.NoError(t, err)

		require.NotNil(t, out.PlacedTile)
		assert.Nil(t, out.BossSpawn)
		assert.Equal(t, "tile_entrance", out.PlacedTile.ID, "exits favor entrances")
		assert.Equal(t, mission.QuestTileExit, out.PlacedTile.QuestFunction)
		assert.True(t, out.State.QuestTiles[0].Spawned)
		assert.False(t, state.QuestTiles[0].Spawned, "input state untouched")
	})

	t.Run("altars sink below ground", func(t *testing.T) {
		state := revealedState()
		state.QuestTiles[0].Type = mission.QuestTileAltar
		ground := *roomTile("tile_chapel", mission.TileCategoryChapel)
		deep := *roomTile("tile_crypt", mission.TileCategoryCrypt)
		deep.Floor = -1

		out, err := o.SpawnRevealedQuestTile(ctx, &spawnerservice.SpawnRevealedQuestTileInput{
			State: state, QuestTileID: "qt_obj_reach_exit", ExploredTiles: []mission.Tile{ground, deep},
		})
		require.NoError(t, err)
		require.NotNil(t, out.PlacedTile)
		assert.Equal(t, "tile_crypt", out.PlacedTile.ID)
	})

	t.Run("final confrontation signals a boss instead of placing", func(t *testing.T) {
		state := revealedState()
		state.QuestTiles[0].Type = mission.QuestTileFinalConfrontation
		state.QuestTiles[0].BossType = "broodmother"

		out, err := o.SpawnRevealedQuestTile(ctx, &spawnerservice.SpawnRevealedQuestTileInput{
			State:         state,
			QuestTileID:   "qt_obj_reach_exit",
			ExploredTiles: []mission.Tile{*roomTile("tile_clearing", mission.TileCategoryClearing)},
		})
		require.NoError(t, err)

		assert.Nil(t, out.PlacedTile)
		require.NotNil(t, out.BossSpawn)
		assert.Equal(t, "broodmother", out.BossSpawn.BossType)
		assert.NotEmpty(t, out.BossSpawn.Message)
		assert.Equal(t, "tile_clearing", out.BossSpawn.TileID)
		assert.True(t, out.State.QuestTiles[0].Spawned)
	})

	t.Run("missing boss type falls back to the default", func(t *testing.T) {
		state := revealedState()
		state.QuestTiles[0].Type = mission.QuestTileFinalConfrontation

		out, err := o.SpawnRevealedQuestTile(ctx, &spawnerservice.SpawnRevealedQuestTileInput{
			State:         state,
			QuestTileID:   "qt_obj_reach_exit",
			ExploredTiles: []mission.Tile{*roomTile("tile_clearing", mission.TileCategoryClearing)},
		})
		require.NoError(t, err)
		require.NotNil(t, out.BossSpawn)
		assert.NotEmpty(t, out.BossSpawn.BossType)
	})

	t.Run("no explored host defers placement", func(t *testing.T) {
		state := revealedState()
		out, err := o.SpawnRevealedQuestTile(ctx, &spawnerservice.SpawnRevealedQuestTileInput{
			State: state, QuestTileID: "qt_obj_reach_exit",
		})
		require.NoError(t, err)
		assert.Nil(t, out.PlacedTile)
		assert.Nil(t, out.BossSpawn)
		assert.False(t, out.State.QuestTiles[0].Spawned, "stays pending for retry")
	})

	t.Run("unrevealed tile is a precondition failure", func(t *testing.T) {
		state := revealedState()
		state.QuestTiles[0].Revealed = false
		_, err := o.SpawnRevealedQuestTile(ctx, &spawnerservice.SpawnRevealedQuestTileInput{
			State: state, QuestTileID: "qt_obj_reach_exit",
		})
		require.Error(t, err)
		assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(err))
	})

	t.Run("unknown quest tile is not found", func(t *testing.T) {
		_, err := o.SpawnRevealedQuestTile(ctx, &spawnerservice.SpawnRevealedQuestTileInput{
			State: revealedState(), QuestTileID: "qt_ghost",
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
