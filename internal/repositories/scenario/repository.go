// Package scenario provides the interface for validated-scenario persistence
package scenario

//go:generate mockgen -destination=mock/mock_repository.go -package=scenariomock github.com/mythosquest/mission-engine/internal/repositories/scenario Repository

import (
	"context"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// Repository defines the interface for scenario persistence. Only validated
// scenarios belong here; the generation loop never stores rejects.
type Repository interface {
	// Create stores a new scenario
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a scenario with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a scenario by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the scenario doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a scenario and its index entries
	// Returns errors.NotFound if the scenario doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByDifficulty retrieves all stored scenarios at a difficulty
	ListByDifficulty(ctx context.Context, input ListByDifficultyInput) (*ListByDifficultyOutput, error)
}

// CreateInput defines the input for storing a scenario
type CreateInput struct {
	Scenario *mission.Scenario
}

// CreateOutput defines the output for storing a scenario
type CreateOutput struct {
	Scenario *mission.Scenario
}

// GetInput defines the input for retrieving a scenario
type GetInput struct {
	ID string
}

// GetOutput defines the output for retrieving a scenario
type GetOutput struct {
	Scenario *mission.Scenario
}

// DeleteInput defines the input for deleting a scenario
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a scenario
type DeleteOutput struct{}

// ListByDifficultyInput defines the input for listing scenarios
type ListByDifficultyInput struct {
	Difficulty mission.Difficulty
}

// ListByDifficultyOutput defines the output for listing scenarios
type ListByDifficultyOutput struct {
	Scenarios []*mission.Scenario
}
