package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/pkg/clock"
	"github.com/mythosquest/mission-engine/internal/pkg/idgen"
	scenariorepo "github.com/mythosquest/mission-engine/internal/repositories/scenario"
	scenariomock "github.com/mythosquest/mission-engine/internal/repositories/scenario/mock"
	scenarioservice "github.com/mythosquest/mission-engine/internal/services/scenario"
)

func TestAutoFix_NeverMutatesInput(t *testing.T) {
	o := newTestOrchestrator(t)

	s := winnableEscapeScenario()
	s.StartDoom = 3 // budget below the 4-round estimate
	originalDoom := s.StartDoom
	originalEvents := len(s.DoomEvents)

	out, err := o.AutoFix(context.Background(), &scenarioservice.AutoFixInput{Scenario: s})
	require.NoError(t, err)

	assert.Equal(t, originalDoom, s.StartDoom, "input scenario must not change")
	assert.Len(t, s.DoomEvents, originalEvents)
	assert.NotEmpty(t, out.Changes)
	assert.Greater(t, out.Fixed.StartDoom, originalDoom)
}

func TestAutoFix_RepairsCompose(t *testing.T) {
	o := newTestOrchestrator(t)
	ctx := context.Background()

	t.Run("survival shortfall raises doom past the target", func(t *testing.T) {
		s := &mission.Scenario{
			ID:          "scen_siege",
			Difficulty:  mission.DifficultyNormal,
			StartDoom:   10,
			VictoryType: mission.VictorySurvival,
			Objectives: []mission.ScenarioObjective{
				{ID: "obj_hold_out", Type: mission.ObjectiveSurvive, TargetAmount: 15},
			},
			VictoryConditions: []mission.VictoryCondition{
				{Type: mission.ConditionCompleteObjectives, RequiredObjectiveIDs: []string{"obj_hold_out"}},
			},
			DoomEvents: []mission.DoomEvent{
				{Threshold: 8, Type: mission.DoomEventSpawnEnemy, TargetID: "cultist", Amount: 2},
			},
		}

		out, err := o.AutoFix(ctx, &scenarioservice.AutoFixInput{Scenario: s})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Changes)
		assert.Greater(t, out.Fixed.StartDoom, 15)

		validated, err := o.ValidateScenario(ctx, &scenarioservice.ValidateScenarioInput{Scenario: out.Fixed})
		require.NoError(t, err)
		assert.True(t, validated.Result.IsWinnable)
	})

	t.Run("missing boss wave is appended", func(t *testing.T) {
		s := winnableEscapeScenario()
		s.Objectives = append(s.Objectives, mission.ScenarioObjective{
			ID:       "obj_kill_leader",
			Type:     mission.ObjectiveKillBoss,
			TargetID: "cult_leader",
		})
		s.VictoryConditions[0].RequiredObjectiveIDs = append(
			s.VictoryConditions[0].RequiredObjectiveIDs, "obj_kill_leader")

		out, err := o.AutoFix(ctx, &scenarioservice.AutoFixInput{Scenario: s})
		require.NoError(t, err)

		hasBoss := false
		for _, ev := range out.Fixed.DoomEvents {
			if ev.Type == mission.DoomEventSpawnBoss {
				hasBoss = true
				assert.Equal(t, "cult_leader", ev.TargetID)
			}
		}
		assert.True(t, hasBoss)

		// Events stay sorted descending after the append
		for i := 1; i < len(out.Fixed.DoomEvents); i++ {
			assert.GreaterOrEqual(t,
				out.Fixed.DoomEvents[i-1].Threshold,
				out.Fixed.DoomEvents[i].Threshold)
		}

		validated, err := o.ValidateScenario(ctx, &scenarioservice.ValidateScenarioInput{Scenario: out.Fixed})
		require.NoError(t, err)
		assert.True(t, validated.Result.IsWinnable)
	})

	t.Run("kill deficit tops up spawn capacity", func(t *testing.T) {
		s := &mission.Scenario{
			ID:          "scen_purge",
			Difficulty:  mission.DifficultyNormal,
			StartDoom:   14,
			VictoryType: mission.VictoryAssassination,
			Objectives: []mission.ScenarioObjective{
				{ID: "obj_cull", Type: mission.ObjectiveKillEnemy, TargetID: "ghoul", TargetAmount: 10},
			},
			VictoryConditions: []mission.VictoryCondition{
				{Type: mission.ConditionCompleteObjectives, RequiredObjectiveIDs: []string{"obj_cull"}},
			},
			DoomEvents: []mission.DoomEvent{
				{Threshold: 10, Type: mission.DoomEventSpawnEnemy, TargetID: "ghoul", Amount: 3},
			},
		}

		out, err := o.AutoFix(ctx, &scenarioservice.AutoFixInput{Scenario: s})
		require.NoError(t, err)

		capacity := 0
		for _, ev := range out.Fixed.DoomEvents {
			if ev.Type == mission.DoomEventSpawnEnemy {
				capacity += ev.Amount
			}
		}
		assert.GreaterOrEqual(t, capacity, 10)

		validated, err := o.ValidateScenario(ctx, &scenarioservice.ValidateScenarioInput{Scenario: out.Fixed})
		require.NoError(t, err)
		assert.True(t, validated.Result.IsWinnable)
	})

	t.Run("healthy scenario is left alone", func(t *testing.T) {
		out, err := o.AutoFix(ctx, &scenarioservice.AutoFixInput{Scenario: winnableEscapeScenario()})
		require.NoError(t, err)
		assert.Empty(t, out.Changes)
	})
}

func TestGenerateValidated(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a winnable scenario", func(t *testing.T) {
		o := newTestOrchestrator(t)

		out, err := o.GenerateValidated(ctx, &scenarioservice.GenerateValidatedInput{
			Difficulty: mission.DifficultyNormal,
		})
		require.NoError(t, err)
		require.NotNil(t, out.Scenario)
		require.NotNil(t, out.Validation)
		assert.True(t, out.Validation.IsWinnable)
		assert.GreaterOrEqual(t, out.Attempts, 1)
		assert.LessOrEqual(t, out.Attempts, DefaultTunables().MaxAttempts)
	})

	t.Run("stores the winner when asked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := scenariomock.NewMockRepository(ctrl)
		o, err := New(&Config{
			Roller:       &fixedRoller{face: 1},
			IDGen:        idgen.NewSequential("scen"),
			Clock:        clock.NewFixed(clock.New().Now()),
			ScenarioRepo: mockRepo,
		})
		require.NoError(t, err)

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input scenariorepo.CreateInput) (*scenariorepo.CreateOutput, error) {
				require.NotNil(t, input.Scenario)
				return &scenariorepo.CreateOutput{Scenario: input.Scenario}, nil
			})

		out, err := o.GenerateValidated(ctx, &scenarioservice.GenerateValidatedInput{
			Difficulty: mission.DifficultyNormal,
			Store:      true,
		})
		require.NoError(t, err)
		assert.True(t, out.Validation.IsWinnable)
	})

	t.Run("rejects unknown difficulty", func(t *testing.T) {
		o := newTestOrchestrator(t)

		_, err := o.GenerateValidated(ctx, &scenarioservice.GenerateValidatedInput{
			Difficulty: "impossible",
		})
		assert.Error(t, err)
	})
}
