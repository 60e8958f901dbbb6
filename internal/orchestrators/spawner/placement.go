package spawner

import (
	"context"
	"log/slog"

	"github.com/mythosquest/mission-engine/internal/catalog"
	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	spawnerservice "github.com/mythosquest/mission-engine/internal/services/spawner"
)

// FindBestSpawnTile ranks explored tiles as hosts for a quest item: the tile
// must be searchable, not a corridor, carry no items, and not appear in
// UsedTileIDs. Ties break on ascending tile ID so placement is deterministic
// for a given board.
func (o *Orchestrator) FindBestSpawnTile(ctx context.Context, input *spawnerservice.FindBestSpawnTileInput) (*spawnerservice.FindBestSpawnTileOutput, error) {
	if input == nil || input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}

	used := make(map[string]bool, len(input.UsedTileIDs))
	for _, id := range input.UsedTileIDs {
		used[id] = true
	}

	var best *mission.Tile
	bestScore := -1.0
	for i := range input.Tiles {
		tile := &input.Tiles[i]
		if !tile.Explored || !tile.CanHostSpawn() || len(tile.Items) > 0 || used[tile.ID] {
			continue
		}
		score := o.tunables.itemAffinity(input.Item.Type, tile.Category)
		if score > bestScore || (score == bestScore && best != nil && tile.ID < best.ID) {
			bestScore = score
			best = tile
		}
	}

	out := &spawnerservice.FindBestSpawnTileOutput{}
	if best != nil {
		chosen := *best
		out.Tile = &chosen
	}
	return out, nil
}

// SpawnRevealedQuestTile materializes a revealed quest tile onto the best
// explored room: the winning tile comes back with its quest function set, and
// the returned state marks the quest tile spawned. Final confrontations place
// nothing; they signal the host to spawn the boss instead. When no explored
// tile can host the spawn the input state comes back unchanged and the host
// retries after the next exploration.
func (o *Orchestrator) SpawnRevealedQuestTile(ctx context.Context, input *spawnerservice.SpawnRevealedQuestTileInput) (*spawnerservice.SpawnRevealedQuestTileOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	current := input.State.TileByID(input.QuestTileID)
	if current == nil {
		return nil, errors.NotFoundf("quest tile %s not found", input.QuestTileID)
	}
	if !current.Revealed {
		return nil, errors.FailedPreconditionf("quest tile %s has not been revealed", input.QuestTileID)
	}
	if current.Spawned {
		return nil, errors.FailedPreconditionf("quest tile %s has already spawned", input.QuestTileID)
	}

	winner := o.bestHostTile(current.Type, input.ExploredTiles)
	if winner == nil && current.Type != mission.QuestTileFinalConfrontation {
		return &spawnerservice.SpawnRevealedQuestTileOutput{State: input.State}, nil
	}

	state := input.State.Clone()
	qt := state.TileByID(input.QuestTileID)
	qt.Spawned = true
	out := &spawnerservice.SpawnRevealedQuestTileOutput{State: state}

	if qt.Type == mission.QuestTileFinalConfrontation {
		bossType := qt.BossType
		if bossType == "" {
			bossType = catalog.DefaultBossType
		}
		message := "The air splits open. It has found you."
		if boss := catalog.BossByType(bossType); boss != nil {
			message = boss.SpawnMessage
		}
		signal := &spawnerservice.BossSpawnSignal{BossType: bossType, Message: message}
		if winner != nil {
			signal.TileID = winner.ID
		}
		out.BossSpawn = signal
		o.publish(ctx, EventBossSpawnSignaled, &questTileEntity{tile: qt}, map[string]interface{}{
			"scenario_id": state.ScenarioID,
			"boss_type":   bossType,
			"tile_id":     signal.TileID,
		})
		return out, nil
	}

	placed := *winner
	placed.QuestFunction = qt.Type
	placed.BossType = qt.BossType
	out.PlacedTile = &placed

	slog.Debug("quest tile materialized",
		"scenario_id", state.ScenarioID,
		"quest_tile_id", qt.ID,
		"tile_id", placed.ID,
		"tile_type", string(qt.Type),
	)
	o.publish(ctx, EventQuestTilePlaced, &boardTileEntity{tile: &placed}, map[string]interface{}{
		"scenario_id":   state.ScenarioID,
		"quest_tile_id": qt.ID,
		"tile_type":     string(qt.Type),
	})
	return out, nil
}

// bestHostTile ranks explored, function-free rooms for a quest tile type.
// Ties break on ascending tile ID.
func (o *Orchestrator) bestHostTile(tileType mission.QuestTileType, tiles []mission.Tile) *mission.Tile {
	var best *mission.Tile
	bestScore := -1.0
	for i := range tiles {
		tile := &tiles[i]
		if !tile.Explored || tile.IsCorridor() || tile.QuestFunction != "" {
			continue
		}
		score := o.tunables.tileAffinity(tileType, tile)
		if score > bestScore || (score == bestScore && best != nil && tile.ID < best.ID) {
			bestScore = score
			best = tile
		}
	}
	return best
}
