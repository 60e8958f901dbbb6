package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/mythosquest/mission-engine/internal/catalog"
	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	scenariorepo "github.com/mythosquest/mission-engine/internal/repositories/scenario"
	scenarioservice "github.com/mythosquest/mission-engine/internal/services/scenario"
)

// AutoFix applies targeted, composable repairs to a scenario and returns a
// fixed copy plus a changelog. The input is never mutated. A scenario needing
// no repair comes back with an empty changelog.
func (o *Orchestrator) AutoFix(ctx context.Context, input *scenarioservice.AutoFixInput) (*scenarioservice.AutoFixOutput, error) {
	if input == nil || input.Scenario == nil {
		return nil, errors.InvalidArgument("scenario is required")
	}

	fixed := input.Scenario.Clone()
	changes := o.repair(fixed)

	return &scenarioservice.AutoFixOutput{Fixed: fixed, Changes: changes}, nil
}

// repair mutates s in place and returns the changelog. Each repair targets
// one validation error and they compose.
func (o *Orchestrator) repair(s *mission.Scenario) []string {
	t := o.tunables
	var changes []string

	// Survival shortfall: doom must outlast the survival target
	if rounds := survivalRoundsRequired(s); s.VictoryType == mission.VictorySurvival && rounds > 0 && rounds >= s.StartDoom {
		raised := rounds + t.SafetyMargin
		changes = append(changes, fmt.Sprintf("raised startDoom %d -> %d to outlast the %d-round survival target", s.StartDoom, raised, rounds))
		s.StartDoom = raised
	}

	// Doom-budget shortfall: raise startDoom until the effective budget
	// covers the round estimate plus margin
	estimated := 0
	for _, obj := range s.RequiredObjectives() {
		estimated += t.roundCost(&obj)
	}
	needed := int(math.Ceil(float64(estimated)/t.efficiency(s.Difficulty))) + t.SafetyMargin
	if needed < t.MinStartDoom {
		needed = t.MinStartDoom
	}
	if s.StartDoom < needed {
		changes = append(changes, fmt.Sprintf("raised startDoom %d -> %d to cover an estimated %d rounds", s.StartDoom, needed, estimated))
		s.StartDoom = needed
	}

	// Missing boss wave
	if requiresBossSpawn(s) && !hasBossSpawn(s) {
		bossType := catalog.DefaultBossType
		for _, obj := range s.Objectives {
			if !obj.IsOptional && obj.Type == mission.ObjectiveKillBoss && obj.TargetID != "" {
				bossType = obj.TargetID
				break
			}
		}
		message := "Something monstrous answers the dwindling light."
		if boss := catalog.BossByType(bossType); boss != nil {
			message = boss.SpawnMessage
		}
		s.DoomEvents = append(s.DoomEvents, mission.DoomEvent{
			Threshold: s.StartDoom / 2,
			Type:      mission.DoomEventSpawnBoss,
			TargetID:  bossType,
			Amount:    1,
			Message:   message,
		})
		changes = append(changes, fmt.Sprintf("added spawn_boss event for %s at threshold %d", bossType, s.StartDoom/2))
	}

	// Kill-count shortfall: top up spawn_enemy capacity
	requiredKills := 0
	killTarget := ""
	for _, obj := range s.RequiredObjectives() {
		if obj.Type == mission.ObjectiveKillEnemy && obj.TargetAmount > 0 {
			requiredKills += obj.TargetAmount
			killTarget = obj.TargetID
		}
	}
	if requiredKills > 0 {
		capacity := 0
		lastEnemy := -1
		for i, ev := range s.DoomEvents {
			if ev.Type == mission.DoomEventSpawnEnemy {
				capacity += ev.Amount
				lastEnemy = i
			}
		}
		if deficit := requiredKills - capacity; deficit > 0 {
			if lastEnemy >= 0 {
				s.DoomEvents[lastEnemy].Amount += deficit
				changes = append(changes, fmt.Sprintf("enlarged spawn_enemy event to cover %d required kills", requiredKills))
			} else {
				if killTarget == "" {
					killTarget = "cultist"
				}
				s.DoomEvents = append(s.DoomEvents, mission.DoomEvent{
					Threshold: s.StartDoom - 1,
					Type:      mission.DoomEventSpawnEnemy,
					TargetID:  killTarget,
					Amount:    deficit,
					Message:   "The hunt begins.",
				})
				changes = append(changes, fmt.Sprintf("added spawn_enemy event for %d required kills", requiredKills))
			}
		}
	}

	sort.SliceStable(s.DoomEvents, func(i, j int) bool {
		return s.DoomEvents[i].Threshold > s.DoomEvents[j].Threshold
	})
	return changes
}

// GenerateValidated runs the bounded generate-validate-repair loop. When the
// attempt cap is exhausted it returns a ResourceExhausted error: the caller
// must fall back to a hand-authored scenario rather than present an
// unverified one.
func (o *Orchestrator) GenerateValidated(ctx context.Context, input *scenarioservice.GenerateValidatedInput) (*scenarioservice.GenerateValidatedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Difficulty.IsValid() {
		return nil, errors.InvalidArgumentf("unknown difficulty: %s", input.Difficulty)
	}
	maxAttempts := input.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = o.tunables.MaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		s, err := o.generate(input.Difficulty, nil)
		if err != nil {
			return nil, err
		}

		candidate := s
		result := (*mission.ValidationResult)(nil)
		if o.quickCheck(candidate) {
			result = o.validate(candidate)
		}

		if result == nil || !result.IsWinnable {
			// One repair pass, then re-validate; discard on continued failure
			fixed := candidate.Clone()
			changes := o.repair(fixed)
			refixed := o.validate(fixed)
			if !refixed.IsWinnable {
				slog.Debug("discarding unwinnable scenario",
					"scenario_id", candidate.ID,
					"attempt", attempt,
				)
				continue
			}
			slog.Info("auto-fixed generated scenario",
				"scenario_id", fixed.ID,
				"attempt", attempt,
				"changes", len(changes),
			)
			candidate = fixed
			result = refixed
		}

		if input.Store && o.repo != nil {
			if _, err := o.repo.Create(ctx, scenariorepo.CreateInput{Scenario: candidate}); err != nil {
				return nil, errors.Wrap(err, "failed to store validated scenario")
			}
		}

		return &scenarioservice.GenerateValidatedOutput{
			Scenario:   candidate,
			Validation: result,
			Attempts:   attempt,
		}, nil
	}

	return nil, errors.ResourceExhaustedf(
		"no winnable scenario generated after %d attempts", maxAttempts)
}
