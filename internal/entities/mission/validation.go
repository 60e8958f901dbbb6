package mission

// IssueCode identifies a specific winnability check failure
type IssueCode string

// Validation issue codes. Error-severity codes force IsWinnable=false.
const (
	IssueNoVictoryConditions        IssueCode = "NO_VICTORY_CONDITIONS"
	IssueInvalidVictoryObjectiveRef IssueCode = "INVALID_VICTORY_OBJECTIVE_REF"
	IssueInvalidRevealReference     IssueCode = "INVALID_REVEAL_REFERENCE"
	IssueUnrevealedRequiredObjective IssueCode = "UNREVEALED_REQUIRED_OBJECTIVE"
	IssueDoomTooLow                 IssueCode = "DOOM_TOO_LOW"
	IssueDoomTight                  IssueCode = "DOOM_TIGHT"
	IssueSurvivalDoomMismatch       IssueCode = "SURVIVAL_DOOM_MISMATCH"
	IssueHighEnemyPressure          IssueCode = "HIGH_ENEMY_PRESSURE"
	IssueMissingBossSpawn           IssueCode = "MISSING_BOSS_SPAWN"
	IssueInsufficientEnemySpawns    IssueCode = "INSUFFICIENT_ENEMY_SPAWNS"
)

// ValidationIssue is a single finding from the winnability validator
type ValidationIssue struct {
	Severity Severity  `json:"severity"`
	Code     IssueCode `json:"code"`
	Message  string    `json:"message"`
}

// ValidationAnalysis carries the derived metrics behind the verdict
type ValidationAnalysis struct {
	EstimatedMinRounds     int     `json:"estimated_min_rounds"`
	EffectiveDoomBudget    float64 `json:"effective_doom_budget"`
	TotalEnemiesFromEvents int     `json:"total_enemies_from_events"`
	HasBossSpawn           bool    `json:"has_boss_spawn"`
	RequiredKills          int     `json:"required_kills"`
	SurvivalRoundsRequired int     `json:"survival_rounds_required"`
}

// ValidationResult is the full winnability verdict for a scenario
type ValidationResult struct {
	IsWinnable bool               `json:"is_winnable"`
	Confidence int                `json:"confidence"` // 0-100
	Issues     []ValidationIssue  `json:"issues"`
	Analysis   ValidationAnalysis `json:"analysis"`
}

// Errors returns only the error-severity issues
func (r *ValidationResult) Errors() []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

// HasIssue reports whether an issue with the given code is present
func (r *ValidationResult) HasIssue(code IssueCode) bool {
	for _, issue := range r.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}
