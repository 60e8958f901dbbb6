package spawner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mythosquest/mission-engine/internal/catalog"
	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	spawnerservice "github.com/mythosquest/mission-engine/internal/services/spawner"
)

// itemTypeByTarget maps enumerated objective targets to item types. Unknown
// targets fall through to the collectible default.
var itemTypeByTarget = map[string]mission.QuestItemType{
	"brass_key":        mission.QuestItemKey,
	"clue":             mission.QuestItemClue,
	"relic":            mission.QuestItemArtifact,
	"ritual_component": mission.QuestItemComponent,
	"heirloom":         mission.QuestItemCollectible,
}

// tileTypeByTarget maps enumerated objective targets to quest tile types.
// Unknown targets get the substring fallback, then the npc_location default.
var tileTypeByTarget = map[string]mission.QuestTileType{
	"manor_exit":          mission.QuestTileExit,
	"ritual_altar":        mission.QuestTileAltar,
	"final_confrontation": mission.QuestTileFinalConfrontation,
}

func itemTypeFor(targetID string) mission.QuestItemType {
	if t, ok := itemTypeByTarget[targetID]; ok {
		return t
	}
	return mission.QuestItemCollectible
}

// tileTypeFor resolves a quest tile type. The substring branch only runs for
// targets outside the enumerated table, i.e. genuinely free-text inputs.
func tileTypeFor(targetID string) mission.QuestTileType {
	if t, ok := tileTypeByTarget[targetID]; ok {
		return t
	}
	switch {
	case strings.Contains(targetID, "exit"):
		return mission.QuestTileExit
	case strings.Contains(targetID, "altar"), strings.Contains(targetID, "ritual"):
		return mission.QuestTileAltar
	default:
		return mission.QuestTileNPCLocation
	}
}

// InitializeSpawns builds the spawn state for a scenario: one quest item per
// find_item objective, target-amount items per collect objective, and one
// quest tile per location-bound objective. Nothing is placed yet; everything
// starts unspawned.
func (o *Orchestrator) InitializeSpawns(ctx context.Context, input *spawnerservice.InitializeSpawnsInput) (*spawnerservice.InitializeSpawnsOutput, error) {
	if input == nil || input.Scenario == nil {
		return nil, errors.InvalidArgument("scenario is required")
	}
	s := input.Scenario

	state := &mission.ObjectiveSpawnState{ScenarioID: s.ID}

	bossType := ""
	for _, ev := range s.DoomEvents {
		if ev.Type == mission.DoomEventSpawnBoss {
			bossType = ev.TargetID
			break
		}
	}

	seenTileTargets := make(map[string]bool)
	for _, obj := range s.Objectives {
		switch obj.Type {
		case mission.ObjectiveFindItem:
			itemType := itemTypeFor(obj.TargetID)
			state.QuestItems = append(state.QuestItems, mission.QuestItem{
				ID:          "qi_" + obj.ID,
				ObjectiveID: obj.ID,
				ScenarioID:  s.ID,
				Type:        itemType,
				Name:        catalog.ItemNameFor(itemType, 0),
				Description: obj.Description,
			})

		case mission.ObjectiveCollect:
			itemType := itemTypeFor(obj.TargetID)
			for i := 0; i < obj.TargetAmount; i++ {
				state.QuestItems = append(state.QuestItems, mission.QuestItem{
					ID:          fmt.Sprintf("qi_%s_%d", obj.ID, i+1),
					ObjectiveID: obj.ID,
					ScenarioID:  s.ID,
					Type:        itemType,
					Name:        catalog.ItemNameFor(itemType, i),
					Description: obj.Description,
				})
			}

		case mission.ObjectiveFindTile, mission.ObjectiveEscape,
			mission.ObjectiveRitual, mission.ObjectiveInteract:
			// One tile per distinct target: chained objectives like
			// find-the-altar and perform-the-rite share a location
			if obj.TargetID == "" || seenTileTargets[obj.TargetID] {
				continue
			}
			seenTileTargets[obj.TargetID] = true

			qt := mission.QuestTile{
				ID:          "qt_" + obj.ID,
				ObjectiveID: obj.ID,
				Type:        tileTypeFor(obj.TargetID),
				Name:        obj.ShortDescription,
			}
			if qt.Type == mission.QuestTileFinalConfrontation {
				qt.BossType = bossType
			}
			if obj.RevealedBy != "" {
				qt.RevealObjectiveID = obj.RevealedBy
				if trigger := s.ObjectiveByID(obj.RevealedBy); trigger != nil {
					qt.RevealCondition = "Complete: " + trigger.ShortDescription
				}
			} else {
				// No gate: visible from the start
				qt.Revealed = true
			}
			state.QuestTiles = append(state.QuestTiles, qt)
		}
	}

	slog.Debug("initialized spawn state",
		"scenario_id", s.ID,
		"quest_items", len(state.QuestItems),
		"quest_tiles", len(state.QuestTiles),
	)
	return &spawnerservice.InitializeSpawnsOutput{State: state}, nil
}
