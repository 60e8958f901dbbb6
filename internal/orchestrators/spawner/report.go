package spawner

import (
	"context"
	"fmt"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	spawnerservice "github.com/mythosquest/mission-engine/internal/services/spawner"
)

// GetSpawnStatus summarizes the spawn scheduler for diagnostics overlays
func (o *Orchestrator) GetSpawnStatus(ctx context.Context, input *spawnerservice.GetSpawnStatusInput) (*spawnerservice.GetSpawnStatusOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	out := &spawnerservice.GetSpawnStatusOutput{
		TilesExplored:       input.State.TilesExplored,
		TilesSinceLastSpawn: input.State.TilesSinceLastSpawn,
	}
	for _, item := range input.State.QuestItems {
		switch {
		case item.Collected:
			out.ItemsCollected++
		case item.Spawned:
			out.ItemsSpawned++
		default:
			out.ItemsPending++
		}
	}
	for _, qt := range input.State.QuestTiles {
		if qt.Revealed {
			out.TilesRevealed++
		}
		if !qt.Spawned {
			out.TilesPending++
		}
	}
	return out, nil
}

// GetObjectiveProgress builds the objective checklist read model: one row per
// objective with "current/target" progress, flagging required objectives
// whose quest entity has not yet materialized on the board.
func (o *Orchestrator) GetObjectiveProgress(ctx context.Context, input *spawnerservice.GetObjectiveProgressInput) (*spawnerservice.GetObjectiveProgressOutput, error) {
	if input == nil || input.State == nil || input.Scenario == nil {
		return nil, errors.InvalidArgument("state and scenario are required")
	}

	out := &spawnerservice.GetObjectiveProgressOutput{}
	for _, obj := range input.Scenario.Objectives {
		target := obj.TargetAmount
		if target <= 0 {
			target = 1
		}
		current := obj.CurrentAmount
		if obj.Completed && current < target {
			current = target
		}
		if current > target {
			current = target
		}

		blocked := !obj.Completed && awaitingSpawn(input.State, obj.ID)
		out.Objectives = append(out.Objectives, spawnerservice.ObjectiveProgress{
			ObjectiveID: obj.ID,
			Description: obj.ShortDescription,
			Progress:    fmt.Sprintf("%d/%d", current, target),
			Completed:   obj.Completed,
			Blocked:     blocked,
		})
		if blocked && !obj.IsOptional {
			out.MissingRequired = append(out.MissingRequired, obj.ID)
		}
	}
	return out, nil
}

// awaitingSpawn reports whether any quest entity linked to the objective has
// yet to materialize on the board
func awaitingSpawn(state *mission.ObjectiveSpawnState, objectiveID string) bool {
	for _, item := range state.QuestItems {
		if item.ObjectiveID == objectiveID && !item.Spawned {
			return true
		}
	}
	for _, qt := range state.QuestTiles {
		if qt.ObjectiveID == objectiveID && !qt.Spawned {
			return true
		}
	}
	return false
}
