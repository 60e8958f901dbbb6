package spawner

import (
	"context"
	"log/slog"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	spawnerservice "github.com/mythosquest/mission-engine/internal/services/spawner"
)

// CollectQuestItem processes a pickup: marks the item collected and advances
// the linked objective, completing it when the target count is reached.
// Objectives are the only scenario fields the spawn runtime writes; structural
// and narrative data stay frozen after generation. Collecting an
// already-collected item is a no-op, never a double count.
func (o *Orchestrator) CollectQuestItem(ctx context.Context, input *spawnerservice.CollectQuestItemInput) (*spawnerservice.CollectQuestItemOutput, error) {
	if input == nil || input.State == nil || input.Scenario == nil {
		return nil, errors.InvalidArgument("state and scenario are required")
	}

	existing := input.State.ItemByID(input.ItemID)
	if existing == nil {
		return nil, errors.NotFoundf("quest item %s not found", input.ItemID)
	}
	obj := input.Scenario.ObjectiveByID(existing.ObjectiveID)
	if obj == nil {
		return nil, errors.Internalf("quest item %s references missing objective %s",
			input.ItemID, existing.ObjectiveID)
	}

	if existing.Collected {
		return &spawnerservice.CollectQuestItemOutput{
			State:            input.State,
			UpdatedObjective: obj,
		}, nil
	}
	if !existing.Spawned {
		return nil, errors.FailedPreconditionf("quest item %s has not spawned", input.ItemID)
	}

	state := input.State.Clone()
	item := state.ItemByID(input.ItemID)
	item.Collected = true
	state.ItemsCollected++

	wasCompleted := obj.Completed
	obj.CurrentAmount++
	if obj.Type == mission.ObjectiveCollect {
		if obj.CurrentAmount >= obj.TargetAmount {
			obj.Completed = true
		}
	} else {
		// Single-target pickups complete outright
		obj.Completed = true
	}
	completedNow := obj.Completed && !wasCompleted

	slog.Debug("quest item collected",
		"scenario_id", state.ScenarioID,
		"item_id", item.ID,
		"objective_id", obj.ID,
		"objective_completed", completedNow,
	)
	o.publish(ctx, EventQuestItemCollected, &questItemEntity{item: item}, map[string]interface{}{
		"scenario_id":         state.ScenarioID,
		"objective_id":        obj.ID,
		"objective_completed": completedNow,
	})

	return &spawnerservice.CollectQuestItemOutput{
		State:              state,
		UpdatedObjective:   obj,
		ObjectiveCompleted: completedNow,
	}, nil
}
