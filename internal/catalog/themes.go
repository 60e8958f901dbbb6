package catalog

import (
	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// ThemePreference describes how a theme shapes the board and the budget.
// Category lists use the enumerated tile categories; substring matching is
// reserved for free-text display names elsewhere.
type ThemePreference struct {
	Name                string
	Atmosphere          string
	TileSets            []mission.TileSet // tile sets the theme can dress
	PreferredCategories []string
	AvoidedCategories   []string
	PreferredFloor      int
	StartLocation       string
	// DoomAdjustment tweaks the template's base doom per difficulty
	DoomAdjustment map[mission.Difficulty]int
}

// SupportsTileSet reports whether the theme can dress the given tile set
func (t *ThemePreference) SupportsTileSet(ts mission.TileSet) bool {
	for _, candidate := range t.TileSets {
		if candidate == ts {
			return true
		}
	}
	return false
}

var themes = []ThemePreference{
	{
		Name:       "haunted_manor",
		Atmosphere: "haunted",
		TileSets:   []mission.TileSet{mission.TileSetIndoor, mission.TileSetMixed},
		PreferredCategories: []string{
			mission.TileCategoryStudy, mission.TileCategoryLibrary, mission.TileCategoryBedroom,
		},
		AvoidedCategories: []string{mission.TileCategoryClearing},
		PreferredFloor:    0,
		StartLocation:     "Grand Foyer",
		DoomAdjustment: map[mission.Difficulty]int{
			mission.DifficultyNormal: 2,
		},
	},
	{
		Name:       "forgotten_crypt",
		Atmosphere: "cursed",
		TileSets:   []mission.TileSet{mission.TileSetIndoor, mission.TileSetMixed},
		PreferredCategories: []string{
			mission.TileCategoryCrypt, mission.TileCategoryCellar, mission.TileCategoryRitual,
		},
		AvoidedCategories: []string{mission.TileCategoryGarden, mission.TileCategoryKitchen},
		PreferredFloor:    -1,
		StartLocation:     "Servants' Entrance",
	},
	{
		Name:       "desecrated_chapel",
		Atmosphere: "cursed",
		TileSets:   []mission.TileSet{mission.TileSetIndoor, mission.TileSetMixed},
		PreferredCategories: []string{
			mission.TileCategoryChapel, mission.TileCategoryRitual, mission.TileCategoryCrypt,
		},
		PreferredFloor: 0,
		StartLocation:  "Gatehouse",
	},
	{
		Name:       "cursed_forest",
		Atmosphere: "wild",
		TileSets:   []mission.TileSet{mission.TileSetOutdoor, mission.TileSetMixed},
		PreferredCategories: []string{
			mission.TileCategoryClearing, mission.TileCategoryGarden, mission.TileCategoryRitual,
		},
		AvoidedCategories: []string{mission.TileCategoryBedroom, mission.TileCategoryKitchen},
		PreferredFloor:    0,
		StartLocation:     "Moonlit Clearing",
	},
}

// defaultTheme backs ThemeFor for unknown names, keeping the lookup total
var defaultTheme = ThemePreference{
	Name:       "haunted_manor",
	Atmosphere: "haunted",
	TileSets:   []mission.TileSet{mission.TileSetIndoor, mission.TileSetOutdoor, mission.TileSetMixed},
	PreferredCategories: []string{
		mission.TileCategoryStudy, mission.TileCategoryCellar,
	},
	PreferredFloor: 0,
	StartLocation:  "Grand Foyer",
}

// ThemeFor returns the preference entry for a theme name, or the default
// entry for unknown themes. Total by construction.
func ThemeFor(name string) ThemePreference {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return defaultTheme
}

// ThemesForTileSet returns the themes that can dress the given tile set.
// Falls back to the default theme rather than returning empty.
func ThemesForTileSet(ts mission.TileSet) []ThemePreference {
	out := make([]ThemePreference, 0, len(themes))
	for _, t := range themes {
		if t.SupportsTileSet(ts) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultTheme)
	}
	return out
}
