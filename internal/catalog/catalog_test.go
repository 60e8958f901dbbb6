package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythosquest/mission-engine/internal/catalog"
	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

func TestTemplatesForEveryDifficulty(t *testing.T) {
	for _, d := range mission.Difficulties {
		templates := catalog.TemplatesFor(d)
		require.NotEmpty(t, templates, "difficulty %s has no templates", d)
		for _, tmpl := range templates {
			assert.True(t, tmpl.SupportsDifficulty(d))
			assert.Positive(t, tmpl.BaseDoom[d], "template %s has no base doom for %s", tmpl.ID, d)
		}
	}
}

func TestTemplateIntegrity(t *testing.T) {
	for _, tmpl := range catalog.Templates() {
		require.NotEmpty(t, tmpl.Objectives, "template %s has no objectives", tmpl.ID)
		require.NotEmpty(t, tmpl.VictoryKeys, "template %s has no victory keys", tmpl.ID)

		// Victory keys and reveal chains must reference real slots
		for _, key := range tmpl.VictoryKeys {
			assert.NotNil(t, tmpl.ObjectiveByKey(key),
				"template %s victory key %s has no objective", tmpl.ID, key)
		}
		hasRequired := false
		for _, obj := range tmpl.Objectives {
			if !obj.IsOptional {
				hasRequired = true
			}
			if obj.RevealedBy != "" {
				assert.NotNil(t, tmpl.ObjectiveByKey(obj.RevealedBy),
					"template %s objective %s revealed by unknown slot", tmpl.ID, obj.Key)
			}
			if obj.IsHidden && !obj.IsOptional {
				assert.NotEmpty(t, obj.RevealedBy,
					"template %s hides required objective %s with no reveal", tmpl.ID, obj.Key)
			}
		}
		assert.True(t, hasRequired, "template %s has only optional objectives", tmpl.ID)
	}
}

func TestSurvivalTemplatesLeaveDoomHeadroom(t *testing.T) {
	for _, tmpl := range catalog.Templates() {
		if tmpl.VictoryType != mission.VictorySurvival {
			continue
		}
		for d, doom := range tmpl.BaseDoom {
			for _, obj := range tmpl.Objectives {
				if obj.Type == mission.ObjectiveSurvive {
					assert.Greater(t, doom, obj.TargetAmount,
						"template %s at %s cannot outlast its own doom", tmpl.ID, d)
				}
			}
		}
	}
}

func TestEnemiesForIsTotal(t *testing.T) {
	pool := catalog.EnemiesFor(mission.DifficultyHard, "cult_assassination", "cursed")
	assert.NotEmpty(t, pool)

	// Unknown keys still produce a usable pool
	pool = catalog.EnemiesFor(mission.Difficulty("bogus"), "unknown", "nowhere")
	assert.NotEmpty(t, pool)

	// Merged pools are deduplicated
	seen := map[string]bool{}
	for _, e := range catalog.EnemiesFor(mission.DifficultyNightmare, "nest_purge", "cursed") {
		assert.False(t, seen[e], "enemy %s appears twice", e)
		seen[e] = true
	}
}

func TestBossPool(t *testing.T) {
	normal := catalog.BossesFor(mission.DifficultyNormal)
	nightmare := catalog.BossesFor(mission.DifficultyNightmare)
	require.NotEmpty(t, normal)
	assert.GreaterOrEqual(t, len(nightmare), len(normal))

	assert.NotNil(t, catalog.BossByType(catalog.DefaultBossType))
	assert.Nil(t, catalog.BossByType("no_such_boss"))
}

func TestThemeForUnknownNameUsesDefault(t *testing.T) {
	theme := catalog.ThemeFor("entirely_made_up")
	assert.NotEmpty(t, theme.Name)
	assert.NotEmpty(t, theme.StartLocation)

	for _, ts := range []mission.TileSet{mission.TileSetIndoor, mission.TileSetOutdoor, mission.TileSetMixed} {
		assert.NotEmpty(t, catalog.ThemesForTileSet(ts))
		assert.NotEmpty(t, catalog.LocationsFor(ts))
	}
}

func TestItemNameForWrapsAndDefaults(t *testing.T) {
	first := catalog.ItemNameFor(mission.QuestItemClue, 0)
	wrapped := catalog.ItemNameFor(mission.QuestItemClue, len(catalog.CollectibleVocab[mission.QuestItemClue]))
	assert.Equal(t, first, wrapped)
	assert.Equal(t, "strange object", catalog.ItemNameFor(mission.QuestItemType("odd"), 3))
}

func TestBonusObjectivesAlwaysOptional(t *testing.T) {
	for _, bonus := range catalog.BonusObjectiveTemplates {
		assert.True(t, bonus.IsOptional, "bonus objective %s is not optional", bonus.Key)
	}
}
