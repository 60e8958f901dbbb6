// Package scenario defines the interface for scenario generation and
// winnability validation
package scenario

//go:generate mockgen -destination=mock/mock_service.go -package=scenariomock github.com/mythosquest/mission-engine/internal/services/scenario Service

import (
	"context"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// Service defines the interface for the generate/validate/repair pipeline
type Service interface {
	// Generation
	GenerateScenario(ctx context.Context, input *GenerateScenarioInput) (*GenerateScenarioOutput, error)
	GenerateScenarioPool(ctx context.Context, input *GenerateScenarioPoolInput) (*GenerateScenarioPoolOutput, error)

	// Validation
	ValidateScenario(ctx context.Context, input *ValidateScenarioInput) (*ValidateScenarioOutput, error)
	QuickCheck(ctx context.Context, input *QuickCheckInput) (*QuickCheckOutput, error)

	// Repair and the bounded generate-validate-repair loop
	AutoFix(ctx context.Context, input *AutoFixInput) (*AutoFixOutput, error)
	GenerateValidated(ctx context.Context, input *GenerateValidatedInput) (*GenerateValidatedOutput, error)
}

// GenerateScenarioInput defines the request for generating one scenario
type GenerateScenarioInput struct {
	Difficulty mission.Difficulty
}

// GenerateScenarioOutput defines the response for generating one scenario
type GenerateScenarioOutput struct {
	Scenario *mission.Scenario
}

// GenerateScenarioPoolInput defines the request for generating a scenario pool
type GenerateScenarioPoolInput struct {
	Difficulty mission.Difficulty
	Count      int
}

// GenerateScenarioPoolOutput defines the response for generating a pool.
// Mission and victory-type diversity is best-effort under randomness.
type GenerateScenarioPoolOutput struct {
	Scenarios []*mission.Scenario
}

// ValidateScenarioInput defines the request for full winnability validation
type ValidateScenarioInput struct {
	Scenario *mission.Scenario
}

// ValidateScenarioOutput defines the response for full winnability validation
type ValidateScenarioOutput struct {
	Result  *mission.ValidationResult
	Summary string
}

// QuickCheckInput defines the request for the cheap winnability pre-filter
type QuickCheckInput struct {
	Scenario *mission.Scenario
}

// QuickCheckOutput defines the response for the cheap pre-filter
type QuickCheckOutput struct {
	Winnable bool
}

// AutoFixInput defines the request for the auto-repair pass
type AutoFixInput struct {
	Scenario *mission.Scenario
}

// AutoFixOutput defines the response for the auto-repair pass. Fixed is a
// modified copy; the input scenario is never mutated.
type AutoFixOutput struct {
	Fixed   *mission.Scenario
	Changes []string
}

// GenerateValidatedInput defines the request for the bounded retry loop.
// MaxAttempts defaults to 5 when zero.
type GenerateValidatedInput struct {
	Difficulty  mission.Difficulty
	MaxAttempts int
	// Store persists the winning scenario when a repository is configured
	Store bool
}

// GenerateValidatedOutput defines the response for the bounded retry loop
type GenerateValidatedOutput struct {
	Scenario   *mission.Scenario
	Validation *mission.ValidationResult
	Attempts   int
}
