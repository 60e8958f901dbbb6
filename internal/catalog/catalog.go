// Package catalog holds the static mission content the generator assembles
// scenarios from: mission templates, location and enemy pools, the boss pool,
// narrative text banks, and theme tile preferences. It is pure data plus total
// lookup functions; nothing here has behavior beyond selection.
package catalog

import (
	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// ObjectiveTemplate is an objective slot inside a mission template. Key is
// stable within the template so victory patterns and reveal chains can
// reference slots before concrete IDs exist.
type ObjectiveTemplate struct {
	Key          string
	Description  string
	Short        string
	Type         mission.ObjectiveType
	TargetID     string
	TargetAmount int
	ItemType     mission.QuestItemType
	IsOptional   bool
	IsHidden     bool
	RevealedBy   string // Key of the slot whose completion reveals this one
}

// MissionTemplate is the blueprint a concrete scenario is expanded from
type MissionTemplate struct {
	ID           string
	Name         string
	VictoryType  mission.VictoryType
	TileSet      mission.TileSet
	BaseDoom     map[mission.Difficulty]int
	Objectives   []ObjectiveTemplate
	VictoryKeys  []string // objective slots the victory condition requires
	ExtraDefeats []mission.DefeatCondition
	Difficulties []mission.Difficulty // nil means all difficulties
}

// SupportsDifficulty reports whether the template may be used at d
func (t *MissionTemplate) SupportsDifficulty(d mission.Difficulty) bool {
	if len(t.Difficulties) == 0 {
		return true
	}
	for _, candidate := range t.Difficulties {
		if candidate == d {
			return true
		}
	}
	return false
}

// ObjectiveByKey returns the objective template with the given slot key, or nil
func (t *MissionTemplate) ObjectiveByKey(key string) *ObjectiveTemplate {
	for i := range t.Objectives {
		if t.Objectives[i].Key == key {
			return &t.Objectives[i]
		}
	}
	return nil
}

// TemplatesFor returns the mission templates usable at the given difficulty.
// Never empty for a valid difficulty.
func TemplatesFor(d mission.Difficulty) []MissionTemplate {
	out := make([]MissionTemplate, 0, len(missionTemplates))
	for _, t := range missionTemplates {
		if t.SupportsDifficulty(d) {
			out = append(out, t)
		}
	}
	return out
}

// TemplateByID returns the template with the given ID, or nil
func TemplateByID(id string) *MissionTemplate {
	for i := range missionTemplates {
		if missionTemplates[i].ID == id {
			return &missionTemplates[i]
		}
	}
	return nil
}

// Templates returns every mission template
func Templates() []MissionTemplate {
	return append([]MissionTemplate(nil), missionTemplates...)
}
