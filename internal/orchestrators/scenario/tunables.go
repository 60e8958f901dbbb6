package scenario

import (
	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// Tunables are the balance knobs of the pipeline: policy, not mechanism.
// Pass a custom table to experiment with pacing without touching the
// algorithms. Zero-value fields fall back to the defaults.
type Tunables struct {
	// Confidence scoring
	ErrorPenalty   int
	WarningPenalty int

	// DifficultyEfficiency scales startDoom into an effective budget; tougher
	// difficulties burn more time per unit of progress.
	DifficultyEfficiency map[mission.Difficulty]float64

	// Round-cost model for estimating minimum rounds to clear objectives
	FlatRoundCost      map[mission.ObjectiveType]int
	CollectRoundsPerItem int
	KillRoundsPerEnemy   int
	BossKillRounds       int

	// DoomTightMargin is the non-negative budget margin below which the
	// validator warns DOOM_TIGHT
	DoomTightMargin int

	// EnemyPressureTolerance caps how many enemies may spawn inside a
	// survival window before HIGH_ENEMY_PRESSURE
	EnemyPressureTolerance int

	// MinStartDoom is the cheap pre-filter's floor
	MinStartDoom int

	// SafetyMargin pads auto-fix doom raises
	SafetyMargin int

	// Doom event scheduling: thresholds as fractions of startDoom
	EarlyFraction float64
	MidFraction   float64
	LateFraction  float64
	// SpawnAmountBase sizes each spawn_enemy event per difficulty
	SpawnAmountBase map[mission.Difficulty]int

	// BonusObjectiveChance is a percentage (0-100) per generated scenario
	BonusObjectiveChance int

	// MaxAttempts bounds the generate-validate-repair loop when the caller
	// passes zero
	MaxAttempts int
}

// DefaultTunables returns the shipped balance table
func DefaultTunables() *Tunables {
	return &Tunables{
		ErrorPenalty:   30,
		WarningPenalty: 10,
		DifficultyEfficiency: map[mission.Difficulty]float64{
			mission.DifficultyNormal:    1.0,
			mission.DifficultyHard:      0.85,
			mission.DifficultyNightmare: 0.7,
		},
		FlatRoundCost: map[mission.ObjectiveType]int{
			mission.ObjectiveFindItem: 2,
			mission.ObjectiveFindTile: 2,
			mission.ObjectiveEscape:   1,
			mission.ObjectiveExplore:  2,
			mission.ObjectiveInteract: 1,
			mission.ObjectiveRitual:   2,
			mission.ObjectiveProtect:  2,
			mission.ObjectiveEscort:   2,
		},
		CollectRoundsPerItem:   1,
		KillRoundsPerEnemy:     1,
		BossKillRounds:         3,
		DoomTightMargin:        2,
		EnemyPressureTolerance: 6,
		MinStartDoom:           3,
		SafetyMargin:           2,
		EarlyFraction:          0.75,
		MidFraction:            0.5,
		LateFraction:           0.25,
		SpawnAmountBase: map[mission.Difficulty]int{
			mission.DifficultyNormal:    1,
			mission.DifficultyHard:      2,
			mission.DifficultyNightmare: 2,
		},
		BonusObjectiveChance: 50,
		MaxAttempts:          5,
	}
}

// roundCost estimates the minimum rounds one objective takes to clear
func (t *Tunables) roundCost(obj *mission.ScenarioObjective) int {
	amount := obj.TargetAmount
	if amount < 0 {
		amount = 0
	}

	switch obj.Type {
	case mission.ObjectiveCollect:
		if amount < 1 {
			amount = 1
		}
		return amount * t.CollectRoundsPerItem
	case mission.ObjectiveKillEnemy:
		if amount < 1 {
			amount = 1
		}
		return amount * t.KillRoundsPerEnemy
	case mission.ObjectiveKillBoss:
		return t.BossKillRounds
	case mission.ObjectiveSurvive:
		return amount
	case mission.ObjectiveRitual:
		cost := t.FlatRoundCost[mission.ObjectiveRitual]
		if amount > cost {
			cost = amount
		}
		return cost
	default:
		if cost, ok := t.FlatRoundCost[obj.Type]; ok {
			return cost
		}
		return 2
	}
}

// efficiency returns the difficulty efficiency factor, defaulting to normal's
func (t *Tunables) efficiency(d mission.Difficulty) float64 {
	if f, ok := t.DifficultyEfficiency[d]; ok {
		return f
	}
	return t.DifficultyEfficiency[mission.DifficultyNormal]
}

// spawnAmount sizes a spawn_enemy event for the difficulty
func (t *Tunables) spawnAmount(d mission.Difficulty) int {
	if n, ok := t.SpawnAmountBase[d]; ok && n > 0 {
		return n
	}
	return 1
}
