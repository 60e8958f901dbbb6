// Package spawnstate provides the interface for objective-spawn-state
// persistence. A restored save must reproduce pity counters and spawn/reveal
// flags exactly, so the state is stored as one JSON document per scenario.
package spawnstate

//go:generate mockgen -destination=mock/mock_repository.go -package=spawnstatemock github.com/mythosquest/mission-engine/internal/repositories/spawnstate Repository

import (
	"context"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// Repository defines the interface for spawn-state persistence
type Repository interface {
	// Save upserts the spawn state for its scenario
	// Returns errors.InvalidArgument for nil state or empty scenario ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the spawn state for a scenario
	// Returns errors.NotFound if no state is stored
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the spawn state at scenario end
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving spawn state
type SaveInput struct {
	State *mission.ObjectiveSpawnState
}

// SaveOutput defines the output for saving spawn state
type SaveOutput struct {
	State *mission.ObjectiveSpawnState
}

// GetInput defines the input for retrieving spawn state
type GetInput struct {
	ScenarioID string
}

// GetOutput defines the output for retrieving spawn state
type GetOutput struct {
	State *mission.ObjectiveSpawnState
}

// DeleteInput defines the input for deleting spawn state
type DeleteInput struct {
	ScenarioID string
}

// DeleteOutput defines the output for deleting spawn state
type DeleteOutput struct{}
