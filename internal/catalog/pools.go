package catalog

import (
	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// Location is a named room or outdoor site a tile can be stamped with
type Location struct {
	Name       string
	Category   string
	Atmosphere string
}

// Boss is an entry in the boss pool
type Boss struct {
	Type         string
	Name         string
	SpawnMessage string
	Difficulty   mission.Difficulty // minimum difficulty it appears at
}

var indoorLocations = []Location{
	{Name: "Grand Foyer", Category: mission.TileCategoryFoyer, Atmosphere: "haunted"},
	{Name: "Servants' Entrance", Category: mission.TileCategoryEntrance, Atmosphere: "haunted"},
	{Name: "Dust-Choked Study", Category: mission.TileCategoryStudy, Atmosphere: "haunted"},
	{Name: "Forbidden Library", Category: mission.TileCategoryLibrary, Atmosphere: "cursed"},
	{Name: "Wine Cellar", Category: mission.TileCategoryCellar, Atmosphere: "haunted"},
	{Name: "Family Crypt", Category: mission.TileCategoryCrypt, Atmosphere: "cursed"},
	{Name: "Desecrated Chapel", Category: mission.TileCategoryChapel, Atmosphere: "cursed"},
	{Name: "Ritual Chamber", Category: mission.TileCategoryRitual, Atmosphere: "cursed"},
	{Name: "Master Bedroom", Category: mission.TileCategoryBedroom, Atmosphere: "haunted"},
	{Name: "Cold Kitchen", Category: mission.TileCategoryKitchen, Atmosphere: "haunted"},
	{Name: "Collapsed Attic", Category: mission.TileCategoryAttic, Atmosphere: "haunted"},
}

var outdoorLocations = []Location{
	{Name: "Overgrown Garden", Category: mission.TileCategoryGarden, Atmosphere: "wild"},
	{Name: "Moonlit Clearing", Category: mission.TileCategoryClearing, Atmosphere: "wild"},
	{Name: "Sunken Graveyard", Category: mission.TileCategoryCrypt, Atmosphere: "cursed"},
	{Name: "Hermit's Shrine", Category: mission.TileCategoryChapel, Atmosphere: "wild"},
	{Name: "Standing Stones", Category: mission.TileCategoryRitual, Atmosphere: "cursed"},
	{Name: "Gatehouse", Category: mission.TileCategoryEntrance, Atmosphere: "wild"},
}

// LocationsFor returns the location pool for a tile set. Mixed unions both
// pools; an unknown tile set falls back to indoor.
func LocationsFor(ts mission.TileSet) []Location {
	switch ts {
	case mission.TileSetIndoor:
		return append([]Location(nil), indoorLocations...)
	case mission.TileSetOutdoor:
		return append([]Location(nil), outdoorLocations...)
	case mission.TileSetMixed:
		out := append([]Location(nil), indoorLocations...)
		return append(out, outdoorLocations...)
	default:
		return append([]Location(nil), indoorLocations...)
	}
}

// Enemy pools. Doom events merge the difficulty, mission, and atmosphere pools.
var enemiesByDifficulty = map[mission.Difficulty][]string{
	mission.DifficultyNormal:    {"cultist", "ghoul"},
	mission.DifficultyHard:      {"cultist", "ghoul", "deep_one"},
	mission.DifficultyNightmare: {"ghoul", "deep_one", "nightgaunt"},
}

var enemiesByMission = map[string][]string{
	"cult_assassination": {"cult_fanatic"},
	"nest_purge":         {"ghoul"},
	"siege_survival":     {"cultist", "deep_one"},
	"banishment_ritual":  {"cult_fanatic", "nightgaunt"},
}

var enemiesByAtmosphere = map[string][]string{
	"haunted": {"restless_shade"},
	"cursed":  {"cult_fanatic", "nightgaunt"},
	"wild":    {"feral_hound"},
}

// EnemiesFor merges the difficulty, mission, and atmosphere enemy pools,
// deduplicated, preserving first-seen order. Never empty for a valid
// difficulty.
func EnemiesFor(d mission.Difficulty, missionID, atmosphere string) []string {
	seen := make(map[string]bool)
	var out []string
	appendAll := func(pool []string) {
		for _, enemy := range pool {
			if !seen[enemy] {
				seen[enemy] = true
				out = append(out, enemy)
			}
		}
	}
	appendAll(enemiesByDifficulty[d])
	appendAll(enemiesByMission[missionID])
	appendAll(enemiesByAtmosphere[atmosphere])
	if len(out) == 0 {
		appendAll(enemiesByDifficulty[mission.DifficultyNormal])
	}
	return out
}

var bossPool = []Boss{
	{
		Type:         "cult_leader",
		Name:         "High Priest Malachar",
		SpawnMessage: "Malachar steps from the shadows, chanting in a dead tongue.",
		Difficulty:   mission.DifficultyNormal,
	},
	{
		Type:         "broodmother",
		Name:         "The Broodmother",
		SpawnMessage: "The ground splits open and the Broodmother drags herself out.",
		Difficulty:   mission.DifficultyHard,
	},
	{
		Type:         "elder_horror",
		Name:         "That Which Sleeps",
		SpawnMessage: "Reality buckles as something vast forces its way through.",
		Difficulty:   mission.DifficultyNightmare,
	},
}

// DefaultBossType backs quest tiles whose boss assignment was lost
const DefaultBossType = "cult_leader"

// BossesFor returns bosses available at or below the given difficulty.
// Always contains at least the normal-tier bosses.
func BossesFor(d mission.Difficulty) []Boss {
	rank := difficultyRank(d)
	out := make([]Boss, 0, len(bossPool))
	for _, b := range bossPool {
		if difficultyRank(b.Difficulty) <= rank {
			out = append(out, b)
		}
	}
	return out
}

// BossByType returns the boss with the given type, or nil
func BossByType(bossType string) *Boss {
	for i := range bossPool {
		if bossPool[i].Type == bossType {
			return &bossPool[i]
		}
	}
	return nil
}

func difficultyRank(d mission.Difficulty) int {
	switch d {
	case mission.DifficultyHard:
		return 1
	case mission.DifficultyNightmare:
		return 2
	default:
		return 0
	}
}
