package scenario

import (
	"context"
	"fmt"
	"math"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	scenarioservice "github.com/mythosquest/mission-engine/internal/services/scenario"
)

// ValidateScenario runs the full winnability analysis. Deterministic and
// side-effect-free: the scenario is never modified.
func (o *Orchestrator) ValidateScenario(ctx context.Context, input *scenarioservice.ValidateScenarioInput) (*scenarioservice.ValidateScenarioOutput, error) {
	if input == nil || input.Scenario == nil {
		return nil, errors.InvalidArgument("scenario is required")
	}

	result := o.validate(input.Scenario)
	return &scenarioservice.ValidateScenarioOutput{
		Result:  result,
		Summary: ValidationSummary(result),
	}, nil
}

// QuickCheck is the cheap pre-filter the retry loop runs before full
// validation
func (o *Orchestrator) QuickCheck(ctx context.Context, input *scenarioservice.QuickCheckInput) (*scenarioservice.QuickCheckOutput, error) {
	if input == nil || input.Scenario == nil {
		return nil, errors.InvalidArgument("scenario is required")
	}
	return &scenarioservice.QuickCheckOutput{Winnable: o.quickCheck(input.Scenario)}, nil
}

func (o *Orchestrator) quickCheck(s *mission.Scenario) bool {
	if len(s.VictoryConditions) == 0 {
		return false
	}
	if s.StartDoom < o.tunables.MinStartDoom {
		return false
	}
	if rounds := survivalRoundsRequired(s); rounds > 0 && s.VictoryType == mission.VictorySurvival {
		if rounds >= s.StartDoom {
			return false
		}
	}
	if requiresBossSpawn(s) && !hasBossSpawn(s) {
		return false
	}
	return true
}

func (o *Orchestrator) validate(s *mission.Scenario) *mission.ValidationResult {
	t := o.tunables
	result := &mission.ValidationResult{}

	addError := func(code mission.IssueCode, format string, args ...interface{}) {
		result.Issues = append(result.Issues, mission.ValidationIssue{
			Severity: mission.SeverityError,
			Code:     code,
			Message:  fmt.Sprintf(format, args...),
		})
	}
	addWarning := func(code mission.IssueCode, format string, args ...interface{}) {
		result.Issues = append(result.Issues, mission.ValidationIssue{
			Severity: mission.SeverityWarning,
			Code:     code,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	// Victory path
	if len(s.VictoryConditions) == 0 {
		addError(mission.IssueNoVictoryConditions, "scenario has no victory conditions")
	}
	for _, vc := range s.VictoryConditions {
		for _, id := range vc.RequiredObjectiveIDs {
			if s.ObjectiveByID(id) == nil {
				addError(mission.IssueInvalidVictoryObjectiveRef,
					"victory condition references missing objective %s", id)
			}
		}
	}

	// Objective chain integrity
	for _, obj := range s.Objectives {
		if obj.IsHidden && obj.RevealedBy != "" && s.ObjectiveByID(obj.RevealedBy) == nil {
			addError(mission.IssueInvalidRevealReference,
				"objective %s is revealed by missing objective %s", obj.ID, obj.RevealedBy)
		}
		if obj.IsHidden && !obj.IsOptional && obj.RevealedBy == "" {
			addError(mission.IssueUnrevealedRequiredObjective,
				"required objective %s is hidden with no reveal trigger", obj.ID)
		}
	}

	// Doom-timer feasibility
	estimated := 0
	for _, obj := range s.RequiredObjectives() {
		estimated += t.roundCost(&obj)
	}
	budget := float64(s.StartDoom) * t.efficiency(s.Difficulty)
	margin := budget - float64(estimated)
	if s.StartDoom < t.MinStartDoom {
		addError(mission.IssueDoomTooLow,
			"start doom %d is below the playable floor of %d", s.StartDoom, t.MinStartDoom)
	} else if margin < 0 {
		addError(mission.IssueDoomTooLow,
			"effective doom budget %.1f is below the estimated %d rounds needed", budget, estimated)
	} else if margin < float64(t.DoomTightMargin) {
		addWarning(mission.IssueDoomTight,
			"effective doom budget %.1f barely covers the estimated %d rounds", budget, estimated)
	}

	// Survival feasibility
	survivalRounds := survivalRoundsRequired(s)
	if s.VictoryType == mission.VictorySurvival && survivalRounds > 0 {
		if survivalRounds >= s.StartDoom {
			addError(mission.IssueSurvivalDoomMismatch,
				"doom reaches zero after %d rounds but survival requires %d", s.StartDoom, survivalRounds)
		} else if pressure := enemiesWithinWindow(s, survivalRounds); pressure > t.EnemyPressureTolerance {
			addWarning(mission.IssueHighEnemyPressure,
				"%d enemies spawn inside the %d-round survival window", pressure, survivalRounds)
		}
	}

	// Enemy spawn consistency
	requiredKills := 0
	for _, obj := range s.RequiredObjectives() {
		if obj.Type == mission.ObjectiveKillEnemy && obj.TargetAmount > 0 {
			requiredKills += obj.TargetAmount
		}
	}
	enemyCapacity := 0
	totalFromEvents := 0
	for _, ev := range s.DoomEvents {
		totalFromEvents += ev.Amount
		if ev.Type == mission.DoomEventSpawnEnemy {
			enemyCapacity += ev.Amount
		}
	}
	if requiresBossSpawn(s) && !hasBossSpawn(s) {
		addError(mission.IssueMissingBossSpawn,
			"a boss kill is required but no spawn_boss event exists")
	}
	if requiredKills > 0 && enemyCapacity < requiredKills {
		addError(mission.IssueInsufficientEnemySpawns,
			"%d kills required but events only spawn %d enemies", requiredKills, enemyCapacity)
	}

	// Confidence and verdict
	confidence := 100
	winnable := true
	for _, issue := range result.Issues {
		if issue.Severity == mission.SeverityError {
			confidence -= t.ErrorPenalty
			winnable = false
		} else {
			confidence -= t.WarningPenalty
		}
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	result.Confidence = confidence
	result.IsWinnable = winnable
	result.Analysis = mission.ValidationAnalysis{
		EstimatedMinRounds:     estimated,
		EffectiveDoomBudget:    math.Round(budget*10) / 10,
		TotalEnemiesFromEvents: totalFromEvents,
		HasBossSpawn:           hasBossSpawn(s),
		RequiredKills:          requiredKills,
		SurvivalRoundsRequired: survivalRounds,
	}
	return result
}

// ValidationSummary renders a one-line human verdict for a result
func ValidationSummary(result *mission.ValidationResult) string {
	errorCount := len(result.Errors())
	switch {
	case errorCount > 0 || !result.IsWinnable || result.Confidence < 60:
		return fmt.Sprintf("Scenario is NOT winnable: %d blocking issue(s) found.", errorCount)
	case result.Confidence >= 90:
		return fmt.Sprintf("Scenario is winnable (confidence %d%%).", result.Confidence)
	default:
		return fmt.Sprintf("Scenario is winnable but challenging (confidence %d%%).", result.Confidence)
	}
}

// survivalRoundsRequired returns the largest survive-objective target, 0 when
// none exists
func survivalRoundsRequired(s *mission.Scenario) int {
	rounds := 0
	for _, obj := range s.Objectives {
		if obj.Type == mission.ObjectiveSurvive && obj.TargetAmount > rounds {
			rounds = obj.TargetAmount
		}
	}
	return rounds
}

// requiresBossSpawn reports whether a required objective needs a boss on the
// board
func requiresBossSpawn(s *mission.Scenario) bool {
	for _, obj := range s.Objectives {
		if obj.IsOptional {
			continue
		}
		if obj.Type == mission.ObjectiveKillBoss {
			return true
		}
	}
	return false
}

func hasBossSpawn(s *mission.Scenario) bool {
	for _, ev := range s.DoomEvents {
		if ev.Type == mission.DoomEventSpawnBoss {
			return true
		}
	}
	return false
}

// enemiesWithinWindow sums spawn amounts for events that fire while doom
// descends from StartDoom through the survival window
func enemiesWithinWindow(s *mission.Scenario, rounds int) int {
	floor := s.StartDoom - rounds
	total := 0
	for _, ev := range s.DoomEvents {
		if ev.Type == mission.DoomEventSpawnEnemy && ev.Threshold >= floor {
			total += ev.Amount
		}
	}
	return total
}
