// Package mission provides the plain serializable records for the procedural
// mission pipeline: scenarios, objectives, doom events, quest spawns, and the
// validation result records exposed to the UI. All records round-trip through
// encoding/json so the save/load subsystem can restore them exactly.
package mission

// Scenario is a complete generated mission. It is immutable after validation;
// only objective progress fields mutate during play.
type Scenario struct {
	ID                   string             `json:"id"`
	MissionID            string             `json:"mission_id"` // catalog template this was expanded from
	Title                string             `json:"title"`
	Briefing             string             `json:"briefing"`
	Difficulty           Difficulty         `json:"difficulty"`
	StartDoom            int                `json:"start_doom"`
	DoomOnDeath          int                `json:"doom_on_death"`
	DoomOnSurvivorRescue int                `json:"doom_on_survivor_rescue"`
	VictoryType          VictoryType        `json:"victory_type"`
	Theme                string             `json:"theme"`
	TileSet              TileSet            `json:"tile_set"`
	StartLocation        string             `json:"start_location"`
	Objectives           []ScenarioObjective `json:"objectives"`
	VictoryConditions    []VictoryCondition `json:"victory_conditions"`
	DefeatConditions     []DefeatCondition  `json:"defeat_conditions"`
	DoomEvents           []DoomEvent        `json:"doom_events"` // sorted by Threshold descending
	CreatedAt            int64              `json:"created_at"`
}

// ScenarioObjective is a single concrete objective within a scenario
type ScenarioObjective struct {
	ID               string        `json:"id"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"short_description,omitempty"`
	Type             ObjectiveType `json:"type"`
	TargetID         string        `json:"target_id,omitempty"`
	TargetAmount     int           `json:"target_amount,omitempty"`
	CurrentAmount    int           `json:"current_amount"`
	IsOptional       bool          `json:"is_optional"`
	IsHidden         bool          `json:"is_hidden"`
	RevealedBy       string        `json:"revealed_by,omitempty"` // objective ID whose completion reveals this one
	Completed        bool          `json:"completed"`
}

// DoomEvent fires exactly once, the first time doom descends past Threshold
type DoomEvent struct {
	Threshold int           `json:"threshold"`
	Type      DoomEventType `json:"type"`
	TargetID  string        `json:"target_id,omitempty"`
	Amount    int           `json:"amount"`
	Message   string        `json:"message,omitempty"`
	Triggered bool          `json:"triggered"`
}

// VictoryCondition names the objectives that must all be completed to win
type VictoryCondition struct {
	Type                 ConditionType `json:"type"`
	RequiredObjectiveIDs []string      `json:"required_objective_ids"`
}

// DefeatCondition names a way the scenario is lost
type DefeatCondition struct {
	Type        ConditionType `json:"type"`
	Description string        `json:"description,omitempty"`
}

// ObjectiveByID returns the objective with the given ID, or nil
func (s *Scenario) ObjectiveByID(id string) *ScenarioObjective {
	for i := range s.Objectives {
		if s.Objectives[i].ID == id {
			return &s.Objectives[i]
		}
	}
	return nil
}

// RequiredObjectives returns the non-optional objectives
func (s *Scenario) RequiredObjectives() []ScenarioObjective {
	required := make([]ScenarioObjective, 0, len(s.Objectives))
	for _, obj := range s.Objectives {
		if !obj.IsOptional {
			required = append(required, obj)
		}
	}
	return required
}

// Clone returns a deep copy. The auto-fixer repairs copies, never its input.
func (s *Scenario) Clone() *Scenario {
	if s == nil {
		return nil
	}
	out := *s
	out.Objectives = append([]ScenarioObjective(nil), s.Objectives...)
	out.DoomEvents = append([]DoomEvent(nil), s.DoomEvents...)
	out.VictoryConditions = make([]VictoryCondition, len(s.VictoryConditions))
	for i, vc := range s.VictoryConditions {
		out.VictoryConditions[i] = VictoryCondition{
			Type:                 vc.Type,
			RequiredObjectiveIDs: append([]string(nil), vc.RequiredObjectiveIDs...),
		}
	}
	out.DefeatConditions = append([]DefeatCondition(nil), s.DefeatConditions...)
	return &out
}
