package spawner

import (
	"context"
	"sort"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	spawnerservice "github.com/mythosquest/mission-engine/internal/services/spawner"
)

// OnTileExplored is the per-exploration tick: it decides whether a quest item
// spawns on the new tile and re-checks quest tile reveal conditions. The input
// state is never mutated; a new state comes back.
//
// Pacing rules: corridors, unsearchable tiles, and states with nothing left to
// spawn neither spawn nor advance the pity counter. On an eligible tile the
// pity counter forces a spawn once it reaches the threshold; otherwise the
// roll is base-tier chance plus room and item-type affinities.
func (o *Orchestrator) OnTileExplored(ctx context.Context, input *spawnerservice.OnTileExploredInput) (*spawnerservice.OnTileExploredOutput, error) {
	if input == nil || input.State == nil || input.Tile == nil || input.Scenario == nil {
		return nil, errors.InvalidArgument("state, tile, and scenario are required")
	}

	state := input.State.Clone()
	state.TilesExplored++
	out := &spawnerservice.OnTileExploredOutput{State: state}

	if input.Tile.CanHostSpawn() {
		if candidate := nextSpawnCandidate(state, input.Scenario); candidate != nil {
			forced := state.TilesSinceLastSpawn >= o.tunables.pityThreshold(input.Scenario)
			spawn := forced
			if !spawn {
				p := o.tunables.baseChance(state.TilesExplored, input.Scenario) +
					o.tunables.CategoryAffinity[input.Tile.Category] +
					o.tunables.itemAffinity(candidate.Type, input.Tile.Category)
				var err error
				spawn, err = o.chanceRoll(p)
				if err != nil {
					return nil, err
				}
			}

			if spawn {
				candidate.Spawned = true
				candidate.SpawnedOnTileID = input.Tile.ID
				state.TilesSinceLastSpawn = 0
				spawned := *candidate
				out.SpawnedItem = &spawned
				o.publish(ctx, EventQuestItemSpawned, &questItemEntity{item: candidate}, map[string]interface{}{
					"scenario_id":  candidate.ScenarioID,
					"objective_id": candidate.ObjectiveID,
					"tile_id":      input.Tile.ID,
					"forced":       forced,
				})
			} else {
				state.TilesSinceLastSpawn++
			}
		}
	}

	completed := make(map[string]bool, len(input.CompletedObjectiveIDs))
	for _, id := range input.CompletedObjectiveIDs {
		completed[id] = true
	}
	for i := range state.QuestTiles {
		qt := &state.QuestTiles[i]
		if qt.Revealed || qt.RevealObjectiveID == "" || !completed[qt.RevealObjectiveID] {
			continue
		}
		qt.Revealed = true
		out.RevealedTiles = append(out.RevealedTiles, *qt)
		o.publish(ctx, EventQuestTileRevealed, &questTileEntity{tile: qt}, map[string]interface{}{
			"scenario_id":  state.ScenarioID,
			"objective_id": qt.ObjectiveID,
			"tile_type":    string(qt.Type),
		})
	}

	return out, nil
}

// nextSpawnCandidate picks the quest item the next spawn would place:
// required items before optional ones, ascending ID within each group.
// Returns a pointer into state, nil when everything has spawned.
func nextSpawnCandidate(state *mission.ObjectiveSpawnState, s *mission.Scenario) *mission.QuestItem {
	var required, optional []*mission.QuestItem
	for i := range state.QuestItems {
		item := &state.QuestItems[i]
		if item.Spawned {
			continue
		}
		obj := s.ObjectiveByID(item.ObjectiveID)
		if obj != nil && !obj.IsOptional {
			required = append(required, item)
		} else {
			optional = append(optional, item)
		}
	}

	byID := func(items []*mission.QuestItem) *mission.QuestItem {
		if len(items) == 0 {
			return nil
		}
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
		return items[0]
	}
	if item := byID(required); item != nil {
		return item
	}
	return byID(optional)
}

// CheckGuaranteedSpawns is the doom-budget backstop, run by the host after
// doom ticks down. Read-only: it grades the urgency and names the items the
// host must force-place, but places nothing itself.
func (o *Orchestrator) CheckGuaranteedSpawns(ctx context.Context, input *spawnerservice.CheckGuaranteedSpawnsInput) (*spawnerservice.CheckGuaranteedSpawnsOutput, error) {
	if input == nil || input.State == nil || input.Scenario == nil {
		return nil, errors.InvalidArgument("state and scenario are required")
	}
	t := o.tunables

	var pending []mission.QuestItem
	for _, item := range input.State.QuestItems {
		if item.Spawned {
			continue
		}
		if obj := input.Scenario.ObjectiveByID(item.ObjectiveID); obj != nil && !obj.IsOptional {
			pending = append(pending, item)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ID < pending[j].ID })

	out := &spawnerservice.CheckGuaranteedSpawnsOutput{Urgency: mission.UrgencyNone}
	if len(pending) == 0 {
		return out, nil
	}

	exploreRatio := float64(input.State.TilesExplored) / float64(t.ExpectedTileCount)
	switch {
	case input.DoomRemaining <= t.DoomCriticalThreshold:
		// Out of runway: everything required goes down now
		out.Urgency = mission.UrgencyCritical
		out.ForcedItems = pending
	case input.DoomRemaining <= t.DoomWarningThreshold && exploreRatio >= t.WarningExploreRatio:
		// Deep into the board with doom running short: force the next one
		out.Urgency = mission.UrgencyWarning
		out.ForcedItems = pending[:1]
	}
	return out, nil
}
