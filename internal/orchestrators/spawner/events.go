package spawner

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the bus. Payload fields ride in the event context.
const (
	EventQuestItemSpawned   = "mission.quest_item.spawned"
	EventQuestItemCollected = "mission.quest_item.collected"
	EventQuestTileRevealed  = "mission.quest_tile.revealed"
	EventQuestTilePlaced    = "mission.quest_tile.placed"
	EventBossSpawnSignaled  = "mission.boss_spawn.signaled"
)

// publish emits a game event with the given context payload. Publication is
// best-effort: listener failures are logged, never surfaced to the caller.
func (o *Orchestrator) publish(ctx context.Context, eventType string, source core.Entity, payload map[string]interface{}) {
	if o.bus == nil {
		return
	}

	evt := events.NewGameEvent(eventType, source, nil)
	for k, v := range payload {
		evt.Context().Set(k, v)
	}
	if err := o.bus.Publish(ctx, evt); err != nil {
		slog.Warn("event publish failed",
			"event_type", eventType,
			"error", err,
		)
	}
}
