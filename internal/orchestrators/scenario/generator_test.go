package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	scenarioservice "github.com/mythosquest/mission-engine/internal/services/scenario"
)

func TestGenerateScenario_Invariants(t *testing.T) {
	o := newTestOrchestrator(t)
	ctx := context.Background()

	for _, difficulty := range mission.Difficulties {
		t.Run(string(difficulty), func(t *testing.T) {
			out, err := o.GenerateScenario(ctx, &scenarioservice.GenerateScenarioInput{
				Difficulty: difficulty,
			})
			require.NoError(t, err)
			s := out.Scenario

			assert.NotEmpty(t, s.ID)
			assert.NotEmpty(t, s.MissionID)
			assert.NotEmpty(t, s.Title)
			assert.NotEmpty(t, s.Briefing)
			assert.NotEmpty(t, s.Theme)
			assert.NotEmpty(t, s.StartLocation)
			assert.Equal(t, difficulty, s.Difficulty)
			assert.GreaterOrEqual(t, s.StartDoom, 3)

			// At least one victory condition, every reference resolving
			require.NotEmpty(t, s.VictoryConditions)
			for _, vc := range s.VictoryConditions {
				require.NotEmpty(t, vc.RequiredObjectiveIDs)
				for _, id := range vc.RequiredObjectiveIDs {
					assert.NotNil(t, s.ObjectiveByID(id), "victory references %s", id)
				}
			}
			assert.NotEmpty(t, s.RequiredObjectives())

			// Baseline defeat conditions always present
			types := make(map[mission.ConditionType]bool)
			for _, dc := range s.DefeatConditions {
				types[dc.Type] = true
			}
			assert.True(t, types[mission.ConditionAllDead])
			assert.True(t, types[mission.ConditionDoomZero])

			// Doom events sorted descending with positive thresholds
			require.NotEmpty(t, s.DoomEvents)
			for i, ev := range s.DoomEvents {
				assert.Greater(t, ev.Threshold, 0)
				assert.Less(t, ev.Threshold, s.StartDoom)
				assert.Positive(t, ev.Amount)
				if i > 0 {
					assert.GreaterOrEqual(t, s.DoomEvents[i-1].Threshold, ev.Threshold,
						"doom events must be sorted descending")
				}
			}

			// Hidden objectives always have a resolving reveal trigger
			for _, obj := range s.Objectives {
				if obj.IsHidden && !obj.IsOptional {
					require.NotEmpty(t, obj.RevealedBy, "objective %s", obj.ID)
					assert.NotNil(t, s.ObjectiveByID(obj.RevealedBy))
				}
			}
		})
	}
}

func TestGenerateScenario_InvalidDifficulty(t *testing.T) {
	o := newTestOrchestrator(t)

	_, err := o.GenerateScenario(context.Background(), &scenarioservice.GenerateScenarioInput{
		Difficulty: "impossible",
	})
	assert.Error(t, err)
}

func TestGenerateScenario_BossObjectiveGetsBossWave(t *testing.T) {
	o := newTestOrchestrator(t)

	// A diverse pool covers the assassination templates
	out, err := o.GenerateScenarioPool(context.Background(), &scenarioservice.GenerateScenarioPoolInput{
		Difficulty: mission.DifficultyHard,
		Count:      6,
	})
	require.NoError(t, err)

	sawBossMission := false
	for _, s := range out.Scenarios {
		needsBoss := false
		for _, obj := range s.RequiredObjectives() {
			if obj.Type == mission.ObjectiveKillBoss {
				needsBoss = true
			}
		}
		if !needsBoss {
			continue
		}
		sawBossMission = true

		hasWave := false
		for _, ev := range s.DoomEvents {
			if ev.Type == mission.DoomEventSpawnBoss {
				hasWave = true
				assert.NotEmpty(t, ev.TargetID)
				assert.NotEmpty(t, ev.Message)
			}
		}
		assert.True(t, hasWave, "boss mission %s lacks a spawn_boss event", s.MissionID)
	}
	assert.True(t, sawBossMission, "pool never produced a boss mission")
}

func TestGenerateScenarioPool_Diversity(t *testing.T) {
	o := newTestOrchestrator(t)

	out, err := o.GenerateScenarioPool(context.Background(), &scenarioservice.GenerateScenarioPoolInput{
		Difficulty: mission.DifficultyNormal,
		Count:      4,
	})
	require.NoError(t, err)
	require.Len(t, out.Scenarios, 4)

	// Six victory types exist at normal difficulty, so four picks with the
	// diversity bias must all differ
	victories := make(map[mission.VictoryType]bool)
	for _, s := range out.Scenarios {
		victories[s.VictoryType] = true
	}
	assert.Len(t, victories, 4)
}

func TestGenerateScenarioPool_InvalidCount(t *testing.T) {
	o := newTestOrchestrator(t)

	_, err := o.GenerateScenarioPool(context.Background(), &scenarioservice.GenerateScenarioPoolInput{
		Difficulty: mission.DifficultyNormal,
		Count:      0,
	})
	assert.Error(t, err)
}
