package catalog

import (
	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

var missionTemplates = []MissionTemplate{
	{
		ID:          "manor_escape",
		Name:        "Escape the Manor",
		VictoryType: mission.VictoryEscape,
		TileSet:     mission.TileSetIndoor,
		BaseDoom: map[mission.Difficulty]int{
			mission.DifficultyNormal:    12,
			mission.DifficultyHard:      10,
			mission.DifficultyNightmare: 8,
		},
		Objectives: []ObjectiveTemplate{
			{
				Key:         "find_key",
				Description: "Find the brass key that unlocks the sealed door",
				Short:       "Find the key",
				Type:        mission.ObjectiveFindItem,
				TargetID:    "brass_key",
				ItemType:    mission.QuestItemKey,
			},
			{
				Key:         "reach_exit",
				Description: "Reach the exit and flee before the house claims you",
				Short:       "Reach the exit",
				Type:        mission.ObjectiveFindTile,
				TargetID:    "manor_exit",
				IsHidden:    true,
				RevealedBy:  "find_key",
			},
		},
		VictoryKeys: []string{"find_key", "reach_exit"},
	},
	{
		ID:          "cult_assassination",
		Name:        "Cut Off the Head",
		VictoryType: mission.VictoryAssassination,
		TileSet:     mission.TileSetMixed,
		BaseDoom: map[mission.Difficulty]int{
			mission.DifficultyNormal:    14,
			mission.DifficultyHard:      12,
			mission.DifficultyNightmare: 10,
		},
		Objectives: []ObjectiveTemplate{
			{
				Key:         "locate_lair",
				Description: "Locate the inner sanctum where the cult leader hides",
				Short:       "Locate the sanctum",
				Type:        mission.ObjectiveExplore,
				TargetAmount: 1,
			},
			{
				Key:         "kill_leader",
				Description: "Strike down the cult leader before the stars align",
				Short:       "Slay the leader",
				Type:        mission.ObjectiveKillBoss,
				TargetID:    "cult_leader",
				IsHidden:    true,
				RevealedBy:  "locate_lair",
			},
		},
		VictoryKeys: []string{"locate_lair", "kill_leader"},
	},
	{
		ID:          "siege_survival",
		Name:        "Hold Until Dawn",
		VictoryType: mission.VictorySurvival,
		TileSet:     mission.TileSetIndoor,
		BaseDoom: map[mission.Difficulty]int{
			mission.DifficultyNormal:    13,
			mission.DifficultyHard:      11,
			mission.DifficultyNightmare: 12,
		},
		Objectives: []ObjectiveTemplate{
			{
				Key:          "hold_out",
				Description:  "Survive the siege until first light",
				Short:        "Survive until dawn",
				Type:         mission.ObjectiveSurvive,
				TargetAmount: 8,
			},
		},
		VictoryKeys: []string{"hold_out"},
		ExtraDefeats: []mission.DefeatCondition{
			{Type: mission.ConditionProtecteeDead, Description: "The barricade keeper is slain"},
		},
	},
	{
		ID:          "relic_collection",
		Name:        "Gather the Relics",
		VictoryType: mission.VictoryCollection,
		TileSet:     mission.TileSetMixed,
		BaseDoom: map[mission.Difficulty]int{
			mission.DifficultyNormal:    14,
			mission.DifficultyHard:      12,
			mission.DifficultyNightmare: 11,
		},
		Objectives: []ObjectiveTemplate{
			{
				Key:          "gather_relics",
				Description:  "Recover the scattered relics before they are lost forever",
				Short:        "Gather the relics",
				Type:         mission.ObjectiveCollect,
				TargetID:     "relic",
				TargetAmount: 5,
				ItemType:     mission.QuestItemArtifact,
			},
		},
		VictoryKeys: []string{"gather_relics"},
	},
	{
		ID:          "banishment_ritual",
		Name:        "Close the Gate",
		VictoryType: mission.VictoryRitual,
		TileSet:     mission.TileSetIndoor,
		BaseDoom: map[mission.Difficulty]int{
			mission.DifficultyNormal:    15,
			mission.DifficultyHard:      13,
			mission.DifficultyNightmare: 11,
		},
		Objectives: []ObjectiveTemplate{
			{
				Key:          "gather_components",
				Description:  "Collect the components of the banishment rite",
				Short:        "Collect components",
				Type:         mission.ObjectiveCollect,
				TargetID:     "ritual_component",
				TargetAmount: 3,
				ItemType:     mission.QuestItemComponent,
			},
			{
				Key:         "find_altar",
				Description: "Find the ritual altar hidden within these walls",
				Short:       "Find the altar",
				Type:        mission.ObjectiveFindTile,
				TargetID:    "ritual_altar",
				IsHidden:    true,
				RevealedBy:  "gather_components",
			},
			{
				Key:         "perform_rite",
				Description: "Perform the banishment rite at the altar",
				Short:       "Perform the rite",
				Type:        mission.ObjectiveRitual,
				TargetID:    "ritual_altar",
				IsHidden:    true,
				RevealedBy:  "find_altar",
			},
		},
		VictoryKeys: []string{"gather_components", "find_altar", "perform_rite"},
		ExtraDefeats: []mission.DefeatCondition{
			{Type: mission.ConditionRitualCompleted, Description: "The enemy completes its own rite first"},
		},
	},
	{
		ID:          "vanishing_investigation",
		Name:        "The Vanishing",
		VictoryType: mission.VictoryInvestigation,
		TileSet:     mission.TileSetMixed,
		BaseDoom: map[mission.Difficulty]int{
			mission.DifficultyNormal:    13,
			mission.DifficultyHard:      11,
			mission.DifficultyNightmare: 9,
		},
		Objectives: []ObjectiveTemplate{
			{
				Key:          "gather_clues",
				Description:  "Piece together what happened from the clues left behind",
				Short:        "Gather clues",
				Type:         mission.ObjectiveCollect,
				TargetID:     "clue",
				TargetAmount: 3,
				ItemType:     mission.QuestItemClue,
			},
			{
				Key:         "confront_culprit",
				Description: "Confront the one responsible for the disappearances",
				Short:       "Confront the culprit",
				Type:        mission.ObjectiveInteract,
				TargetID:    "culprit",
				IsHidden:    true,
				RevealedBy:  "gather_clues",
			},
		},
		VictoryKeys: []string{"gather_clues", "confront_culprit"},
	},
	{
		ID:          "nest_purge",
		Name:        "Burn Out the Nest",
		VictoryType: mission.VictoryAssassination,
		TileSet:     mission.TileSetOutdoor,
		BaseDoom: map[mission.Difficulty]int{
			mission.DifficultyHard:      13,
			mission.DifficultyNightmare: 15,
		},
		Objectives: []ObjectiveTemplate{
			{
				Key:          "cull_brood",
				Description:  "Destroy the spawn crawling out of the nest",
				Short:        "Destroy the spawn",
				Type:         mission.ObjectiveKillEnemy,
				TargetID:     "ghoul",
				TargetAmount: 6,
			},
			{
				Key:         "kill_broodmother",
				Description: "Slay the broodmother at the heart of the nest",
				Short:       "Slay the broodmother",
				Type:        mission.ObjectiveKillBoss,
				TargetID:    "broodmother",
			},
		},
		VictoryKeys:  []string{"cull_brood", "kill_broodmother"},
		Difficulties: []mission.Difficulty{mission.DifficultyHard, mission.DifficultyNightmare},
	},
}
