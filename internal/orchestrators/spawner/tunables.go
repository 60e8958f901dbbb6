package spawner

import (
	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// Tunables are the spawn pacing knobs: policy, not mechanism. The algorithms
// never hard-code these numbers.
type Tunables struct {
	// ExpectedTileCount approximates a full board; the tier thresholds and
	// exploration ratios are fractions of it
	ExpectedTileCount int

	// Base spawn chance tiers (0.0-1.0), selected by comparing tilesExplored
	// against the fractions below
	EarlyFraction    float64 // below this ratio the early tier applies
	BehindFraction   float64 // above this ratio the behind-schedule tier applies
	BaseChanceEarly  float64
	BaseChanceNormal float64
	BaseChanceBehind float64

	// Collection missions (many required pickups) spawn faster
	CollectionItemThreshold int     // required pickups at or above this count
	CollectionBaseBonus     float64 // added to the base chance
	CollectionPityWindow    int     // shortened pity window

	// PityByDifficulty is the consecutive-miss count that forces a spawn
	PityByDifficulty map[mission.Difficulty]int
	PityDefault      int

	// CategoryAffinity is the flat room bonus added to the spawn chance
	CategoryAffinity map[string]float64

	// ItemCategoryAffinity scores item-type/room pairings for both the spawn
	// chance bonus and placement ranking
	ItemCategoryAffinity map[mission.QuestItemType]map[string]float64

	// QuestTileAffinity ranks room categories for quest tile materialization
	QuestTileAffinity map[mission.QuestTileType]map[string]float64

	// DepthWeight is the per-floor bonus for below-ground rooms when placing
	// altars and confrontation sites
	DepthWeight float64

	// Guaranteed-spawn escalation against the shared doom budget
	DoomCriticalThreshold int
	DoomWarningThreshold  int
	WarningExploreRatio   float64 // exploration ratio that arms the warning tier
}

// DefaultTunables returns the shipped spawn pacing table
func DefaultTunables() *Tunables {
	return &Tunables{
		ExpectedTileCount: 24,
		EarlyFraction:     0.25,
		BehindFraction:    0.6,
		BaseChanceEarly:   0.15,
		BaseChanceNormal:  0.35,
		BaseChanceBehind:  0.6,

		CollectionItemThreshold: 5,
		CollectionBaseBonus:     0.15,
		CollectionPityWindow:    3,

		PityByDifficulty: map[mission.Difficulty]int{
			mission.DifficultyNormal:    5,
			mission.DifficultyHard:      4,
			mission.DifficultyNightmare: 4,
		},
		PityDefault: 5,

		CategoryAffinity: map[string]float64{
			mission.TileCategoryRitual:  0.25,
			mission.TileCategoryStudy:   0.20,
			mission.TileCategoryCellar:  0.15,
			mission.TileCategoryCrypt:   0.15,
			mission.TileCategoryLibrary: 0.10,
			mission.TileCategoryAttic:   0.10,
		},

		ItemCategoryAffinity: map[mission.QuestItemType]map[string]float64{
			mission.QuestItemKey: {
				mission.TileCategoryStudy:   0.3,
				mission.TileCategoryBedroom: 0.25,
				mission.TileCategoryFoyer:   0.15,
			},
			mission.QuestItemClue: {
				mission.TileCategoryStudy:   0.3,
				mission.TileCategoryLibrary: 0.3,
				mission.TileCategoryBedroom: 0.15,
			},
			mission.QuestItemCollectible: {
				mission.TileCategoryAttic:   0.25,
				mission.TileCategoryBedroom: 0.2,
				mission.TileCategoryCellar:  0.15,
			},
			mission.QuestItemArtifact: {
				mission.TileCategoryCrypt:  0.3,
				mission.TileCategoryChapel: 0.25,
				mission.TileCategoryRitual: 0.25,
			},
			mission.QuestItemComponent: {
				mission.TileCategoryRitual: 0.3,
				mission.TileCategoryCellar: 0.2,
				mission.TileCategoryCrypt:  0.2,
			},
		},

		QuestTileAffinity: map[mission.QuestTileType]map[string]float64{
			mission.QuestTileExit: {
				mission.TileCategoryEntrance: 0.4,
				mission.TileCategoryFoyer:    0.35,
				mission.TileCategoryGarden:   0.2,
				mission.TileCategoryClearing: 0.2,
			},
			mission.QuestTileAltar: {
				mission.TileCategoryRitual: 0.4,
				mission.TileCategoryCrypt:  0.35,
				mission.TileCategoryChapel: 0.3,
				mission.TileCategoryCellar: 0.2,
			},
			mission.QuestTileFinalConfrontation: {
				mission.TileCategoryRitual:   0.3,
				mission.TileCategoryCrypt:    0.25,
				mission.TileCategoryChapel:   0.2,
				mission.TileCategoryClearing: 0.15,
			},
			mission.QuestTileNPCLocation: {
				mission.TileCategoryBedroom: 0.2,
				mission.TileCategoryStudy:   0.2,
				mission.TileCategoryKitchen: 0.15,
				mission.TileCategoryAttic:   0.15,
			},
		},
		DepthWeight: 0.05,

		DoomCriticalThreshold: 3,
		DoomWarningThreshold:  5,
		WarningExploreRatio:   0.5,
	}
}

// tileAffinity scores how well a quest tile type suits a room category,
// favoring below-ground rooms for altars and confrontation sites
func (t *Tunables) tileAffinity(tileType mission.QuestTileType, boardTile *mission.Tile) float64 {
	score := 0.0
	if byCategory, ok := t.QuestTileAffinity[tileType]; ok {
		score = byCategory[boardTile.Category]
	}
	if boardTile.Floor < 0 &&
		(tileType == mission.QuestTileAltar || tileType == mission.QuestTileFinalConfrontation) {
		score += t.DepthWeight * float64(-boardTile.Floor)
	}
	return score
}

// pityThreshold returns the forced-spawn miss count for a scenario
func (t *Tunables) pityThreshold(s *mission.Scenario) int {
	threshold, ok := t.PityByDifficulty[s.Difficulty]
	if !ok {
		threshold = t.PityDefault
	}
	if t.isCollectionHeavy(s) && t.CollectionPityWindow < threshold {
		threshold = t.CollectionPityWindow
	}
	return threshold
}

// isCollectionHeavy reports whether the scenario requires enough pickups to
// warrant the boosted pacing
func (t *Tunables) isCollectionHeavy(s *mission.Scenario) bool {
	pickups := 0
	for _, obj := range s.Objectives {
		if obj.IsOptional {
			continue
		}
		switch obj.Type {
		case mission.ObjectiveCollect:
			pickups += obj.TargetAmount
		case mission.ObjectiveFindItem:
			pickups++
		}
	}
	return pickups >= t.CollectionItemThreshold
}

// baseChance selects the spawn chance tier for the current exploration depth
func (t *Tunables) baseChance(tilesExplored int, s *mission.Scenario) float64 {
	ratio := float64(tilesExplored) / float64(t.ExpectedTileCount)
	chance := t.BaseChanceNormal
	switch {
	case ratio < t.EarlyFraction:
		chance = t.BaseChanceEarly
	case ratio > t.BehindFraction:
		chance = t.BaseChanceBehind
	}
	if t.isCollectionHeavy(s) {
		chance += t.CollectionBaseBonus
	}
	return chance
}

// itemAffinity scores how well an item type suits a tile category
func (t *Tunables) itemAffinity(itemType mission.QuestItemType, category string) float64 {
	if byCategory, ok := t.ItemCategoryAffinity[itemType]; ok {
		return byCategory[category]
	}
	return 0
}
