// Package scenario implements the scenario orchestrator: generation,
// winnability validation, auto-repair, and the bounded
// generate-validate-repair loop.
package scenario

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/mythosquest/mission-engine/internal/errors"
	"github.com/mythosquest/mission-engine/internal/pkg/clock"
	"github.com/mythosquest/mission-engine/internal/pkg/idgen"
	scenariorepo "github.com/mythosquest/mission-engine/internal/repositories/scenario"
	scenarioservice "github.com/mythosquest/mission-engine/internal/services/scenario"
)

// Config holds the dependencies for the scenario orchestrator
type Config struct {
	Roller dice.Roller
	IDGen  idgen.Generator
	Clock  clock.Clock

	// ScenarioRepo is optional; when present, GenerateValidated can persist
	// the winning scenario
	ScenarioRepo scenariorepo.Repository

	// Tunables is optional; defaults ship in DefaultTunables
	Tunables *Tunables
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

// Orchestrator implements the scenario.Service interface
type Orchestrator struct {
	roller   dice.Roller
	idGen    idgen.Generator
	clock    clock.Clock
	repo     scenariorepo.Repository
	tunables *Tunables
}

// New creates a new scenario orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	t := cfg.Tunables
	if t == nil {
		t = DefaultTunables()
	}

	return &Orchestrator{
		roller:   cfg.Roller,
		idGen:    cfg.IDGen,
		clock:    c,
		repo:     cfg.ScenarioRepo,
		tunables: t,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ scenarioservice.Service = (*Orchestrator)(nil)

// pick selects a random index in [0, n). n must be positive.
func (o *Orchestrator) pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.Internal("cannot pick from an empty pool")
	}
	if n == 1 {
		return 0, nil
	}
	roll, err := o.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "roll failed")
	}
	return roll - 1, nil
}

// chance rolls a percentage check
func (o *Orchestrator) chance(percent int) (bool, error) {
	if percent <= 0 {
		return false, nil
	}
	if percent >= 100 {
		return true, nil
	}
	roll, err := o.roller.Roll(100)
	if err != nil {
		return false, errors.Wrap(err, "roll failed")
	}
	return roll <= percent, nil
}
