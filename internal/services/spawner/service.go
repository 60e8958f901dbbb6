// Package spawner defines the interface for the objective spawn runtime
package spawner

//go:generate mockgen -destination=mock/mock_service.go -package=spawnermock github.com/mythosquest/mission-engine/internal/services/spawner Service

import (
	"context"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// Service defines the interface for the objective spawn runtime. Every call
// takes a state value and returns a new one; the host game loop is the sole
// serializer and the single writer of the doom counter.
type Service interface {
	InitializeSpawns(ctx context.Context, input *InitializeSpawnsInput) (*InitializeSpawnsOutput, error)
	OnTileExplored(ctx context.Context, input *OnTileExploredInput) (*OnTileExploredOutput, error)
	CheckGuaranteedSpawns(ctx context.Context, input *CheckGuaranteedSpawnsInput) (*CheckGuaranteedSpawnsOutput, error)
	FindBestSpawnTile(ctx context.Context, input *FindBestSpawnTileInput) (*FindBestSpawnTileOutput, error)
	SpawnRevealedQuestTile(ctx context.Context, input *SpawnRevealedQuestTileInput) (*SpawnRevealedQuestTileOutput, error)
	CollectQuestItem(ctx context.Context, input *CollectQuestItemInput) (*CollectQuestItemOutput, error)

	// Read-only reporting
	GetSpawnStatus(ctx context.Context, input *GetSpawnStatusInput) (*GetSpawnStatusOutput, error)
	GetObjectiveProgress(ctx context.Context, input *GetObjectiveProgressInput) (*GetObjectiveProgressOutput, error)
}

// InitializeSpawnsInput defines the request for creating spawn state
type InitializeSpawnsInput struct {
	Scenario *mission.Scenario
}

// InitializeSpawnsOutput defines the response for creating spawn state
type InitializeSpawnsOutput struct {
	State *mission.ObjectiveSpawnState
}

// OnTileExploredInput defines the request for one exploration event
type OnTileExploredInput struct {
	State                 *mission.ObjectiveSpawnState
	Tile                  *mission.Tile
	Scenario              *mission.Scenario
	CompletedObjectiveIDs []string
}

// OnTileExploredOutput defines the response for one exploration event
type OnTileExploredOutput struct {
	State         *mission.ObjectiveSpawnState
	SpawnedItem   *mission.QuestItem // nil when nothing spawned
	RevealedTiles []mission.QuestTile
}

// CheckGuaranteedSpawnsInput defines the request for the doom-budget backstop
type CheckGuaranteedSpawnsInput struct {
	State         *mission.ObjectiveSpawnState
	Scenario      *mission.Scenario
	DoomRemaining int
}

// CheckGuaranteedSpawnsOutput defines the response for the doom-budget backstop
type CheckGuaranteedSpawnsOutput struct {
	Urgency     mission.Urgency
	ForcedItems []mission.QuestItem
}

// FindBestSpawnTileInput defines the request for placement scoring
type FindBestSpawnTileInput struct {
	Item        *mission.QuestItem
	Tiles       []mission.Tile
	UsedTileIDs []string
}

// FindBestSpawnTileOutput defines the response for placement scoring.
// Tile is nil when no eligible tile exists; the caller retries on the next
// exploration event.
type FindBestSpawnTileOutput struct {
	Tile *mission.Tile
}

// SpawnRevealedQuestTileInput defines the request for immediate quest-tile
// materialization after a reveal condition fires
type SpawnRevealedQuestTileInput struct {
	State         *mission.ObjectiveSpawnState
	QuestTileID   string
	ExploredTiles []mission.Tile
}

// BossSpawnSignal tells the host loop to spawn a boss instead of placing an
// object, for final_confrontation quest tiles
type BossSpawnSignal struct {
	BossType string
	Message  string
	TileID   string
}

// SpawnRevealedQuestTileOutput defines the response for materialization.
// Exactly one of PlacedTile or BossSpawn is set on success; both are nil when
// no explored tile could host the spawn and the caller should retry.
type SpawnRevealedQuestTileOutput struct {
	State      *mission.ObjectiveSpawnState
	PlacedTile *mission.Tile
	BossSpawn  *BossSpawnSignal
}

// CollectQuestItemInput defines the request for processing a pickup
type CollectQuestItemInput struct {
	State    *mission.ObjectiveSpawnState
	ItemID   string
	Scenario *mission.Scenario
}

// CollectQuestItemOutput defines the response for processing a pickup.
// Collecting an already-collected item is a no-op, never a double count.
type CollectQuestItemOutput struct {
	State              *mission.ObjectiveSpawnState
	UpdatedObjective   *mission.ScenarioObjective
	ObjectiveCompleted bool
}

// GetSpawnStatusInput defines the request for the spawn status read model
type GetSpawnStatusInput struct {
	State *mission.ObjectiveSpawnState
}

// GetSpawnStatusOutput is the diagnostics read model for UI consumption
type GetSpawnStatusOutput struct {
	TilesExplored       int
	TilesSinceLastSpawn int
	ItemsSpawned        int
	ItemsCollected      int
	ItemsPending        int
	TilesRevealed       int
	TilesPending        int
}

// GetObjectiveProgressInput defines the request for the progress read model
type GetObjectiveProgressInput struct {
	State    *mission.ObjectiveSpawnState
	Scenario *mission.Scenario
}

// ObjectiveProgress reports one objective's progress for display
type ObjectiveProgress struct {
	ObjectiveID string
	Description string
	Progress    string // "1/2" style
	Completed   bool
	Blocked     bool // required but its quest entity has not materialized
}

// GetObjectiveProgressOutput defines the response for the progress read model
type GetObjectiveProgressOutput struct {
	Objectives      []ObjectiveProgress
	MissingRequired []string // blockers: required objective IDs awaiting spawns
}
