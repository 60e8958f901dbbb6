package spawner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythosquest/mission-engine/internal/errors"
	spawnerservice "github.com/mythosquest/mission-engine/internal/services/spawner"
)

func TestCollectQuestItem_SingleTarget(t *testing.T) {
	o := newTestOrchestrator(t, 100)
	ctx := context.Background()
	s := escapeScenario()
	state := initState(t, o, s)
	state.QuestItems[0].Spawned = true // the key

	out, err := o.CollectQuestItem(ctx, &spawnerservice.CollectQuestItemInput{
		State: state, ItemID: "qi_obj_find_key", Scenario: s,
	})
	require.NoError(t, err)

	assert.True(t, out.State.ItemByID("qi_obj_find_key").Collected)
	assert.Equal(t, 1, out.State.ItemsCollected)
	assert.True(t, out.ObjectiveCompleted, "single-target pickups complete outright")
	require.NotNil(t, out.UpdatedObjective)
	assert.True(t, out.UpdatedObjective.Completed)

	// Input state untouched
	assert.False(t, state.ItemByID("qi_obj_find_key").Collected)
}

func TestCollectQuestItem_ProgressTowardTarget(t *testing.T) {
	o := newTestOrchestrator(t, 100)
	ctx := context.Background()
	s := collectionScenario()
	state := initState(t, o, s)
	for i := range state.QuestItems {
		state.QuestItems[i].Spawned = true
	}

	for i := 0; i < 4; i++ {
		out, err := o.CollectQuestItem(ctx, &spawnerservice.CollectQuestItemInput{
			State: state, ItemID: state.QuestItems[i].ID, Scenario: s,
		})
		require.NoError(t, err)
		state = out.State
		assert.False(t, out.ObjectiveCompleted, "pickup %d of 5 must not complete", i+1)
		assert.Equal(t, i+1, out.UpdatedObjective.CurrentAmount)
	}

	out, err := o.CollectQuestItem(ctx, &spawnerservice.CollectQuestItemInput{
		State: state, ItemID: state.QuestItems[4].ID, Scenario: s,
	})
	require.NoError(t, err)
	assert.True(t, out.ObjectiveCompleted)
	assert.Equal(t, 5, out.UpdatedObjective.CurrentAmount)
	assert.Equal(t, 5, out.State.ItemsCollected)
}

func TestCollectQuestItem_Idempotent(t *testing.T) {
	o := newTestOrchestrator(t, 100)
	ctx := context.Background()
	s := escapeScenario()
	state := initState(t, o, s)
	state.QuestItems[0].Spawned = true

	first, err := o.CollectQuestItem(ctx, &spawnerservice.CollectQuestItemInput{
		State: state, ItemID: "qi_obj_find_key", Scenario: s,
	})
	require.NoError(t, err)

	second, err := o.CollectQuestItem(ctx, &spawnerservice.CollectQuestItemInput{
		State: first.State, ItemID: "qi_obj_find_key", Scenario: s,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, second.State.ItemsCollected, "never double counts")
	assert.False(t, second.ObjectiveCompleted, "completion reported only once")
	assert.Equal(t, 1, second.UpdatedObjective.CurrentAmount)
}

func TestCollectQuestItem_Failures(t *testing.T) {
	o := newTestOrchestrator(t, 100)
	ctx := context.Background()
	s := escapeScenario()
	state := initState(t, o, s)

	t.Run("unknown item", func(t *testing.T) {
		_, err := o.CollectQuestItem(ctx, &spawnerservice.CollectQuestItemInput{
			State: state, ItemID: "qi_ghost", Scenario: s,
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("unspawned item cannot be collected", func(t *testing.T) {
		_, err := o.CollectQuestItem(ctx, &spawnerservice.CollectQuestItemInput{
			State: state, ItemID: "qi_obj_find_key", Scenario: s,
		})
		require.Error(t, err)
		assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(err))
	})
}
