// Package spawner implements the objective spawn runtime: quest item and
// quest tile materialization, pity-timer pacing, doom-budget escalation, and
// pickup processing. Every operation takes a spawn state value and returns a
// new one; the host game loop stays the single writer of the doom counter.
package spawner

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/mythosquest/mission-engine/internal/errors"
	spawnerservice "github.com/mythosquest/mission-engine/internal/services/spawner"
)

// Config holds the dependencies for the spawn orchestrator
type Config struct {
	Roller dice.Roller

	// EventBus is optional; when present, spawn and collection events are
	// published for host-side listeners (UI, audio, logging)
	EventBus events.EventBus

	// Tunables is optional; defaults ship in DefaultTunables
	Tunables *Tunables
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Orchestrator implements the spawner.Service interface
type Orchestrator struct {
	roller   dice.Roller
	bus      events.EventBus
	tunables *Tunables
}

// New creates a new spawn orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	t := cfg.Tunables
	if t == nil {
		t = DefaultTunables()
	}

	return &Orchestrator{
		roller:   cfg.Roller,
		bus:      cfg.EventBus,
		tunables: t,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ spawnerservice.Service = (*Orchestrator)(nil)

// chanceRoll checks a probability in [0.0, 1.0] against a d100
func (o *Orchestrator) chanceRoll(p float64) (bool, error) {
	if p <= 0 {
		return false, nil
	}
	if p >= 1 {
		return true, nil
	}
	roll, err := o.roller.Roll(100)
	if err != nil {
		return false, errors.Wrap(err, "roll failed")
	}
	return float64(roll) <= p*100, nil
}
