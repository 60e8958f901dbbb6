package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mythosquest/mission-engine/internal/catalog"
	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	scenarioservice "github.com/mythosquest/mission-engine/internal/services/scenario"
)

// GenerateScenario assembles one concrete scenario from a random mission
// template, theme, and the narrative banks
func (o *Orchestrator) GenerateScenario(ctx context.Context, input *scenarioservice.GenerateScenarioInput) (*scenarioservice.GenerateScenarioOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Difficulty.IsValid() {
		return nil, errors.InvalidArgumentf("unknown difficulty: %s", input.Difficulty)
	}

	s, err := o.generate(input.Difficulty, nil)
	if err != nil {
		return nil, err
	}
	return &scenarioservice.GenerateScenarioOutput{Scenario: s}, nil
}

// GenerateScenarioPool generates Count scenarios, biasing toward mission and
// victory-type diversity. Diversity is best-effort under randomness.
func (o *Orchestrator) GenerateScenarioPool(ctx context.Context, input *scenarioservice.GenerateScenarioPoolInput) (*scenarioservice.GenerateScenarioPoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Difficulty.IsValid() {
		return nil, errors.InvalidArgumentf("unknown difficulty: %s", input.Difficulty)
	}
	if input.Count <= 0 {
		return nil, errors.InvalidArgument("count must be positive")
	}

	usedMissions := make(map[string]bool)
	usedVictories := make(map[mission.VictoryType]bool)
	out := &scenarioservice.GenerateScenarioPoolOutput{
		Scenarios: make([]*mission.Scenario, 0, input.Count),
	}

	for i := 0; i < input.Count; i++ {
		s, err := o.generate(input.Difficulty, func(t *catalog.MissionTemplate) int {
			// Prefer unseen victory types, then unseen missions
			switch {
			case !usedVictories[t.VictoryType]:
				return 2
			case !usedMissions[t.ID]:
				return 1
			default:
				return 0
			}
		})
		if err != nil {
			return nil, err
		}
		usedMissions[s.MissionID] = true
		usedVictories[s.VictoryType] = true
		out.Scenarios = append(out.Scenarios, s)
	}
	return out, nil
}

// generate builds one scenario. preference, when non-nil, weights template
// selection for pool diversity: templates with the highest preference score
// form the candidate set.
func (o *Orchestrator) generate(difficulty mission.Difficulty, preference func(*catalog.MissionTemplate) int) (*mission.Scenario, error) {
	templates := catalog.TemplatesFor(difficulty)
	if len(templates) == 0 {
		return nil, errors.Internalf("no mission templates for difficulty %s", difficulty)
	}

	candidates := templates
	if preference != nil {
		best := -1
		var filtered []catalog.MissionTemplate
		for _, t := range templates {
			score := preference(&t)
			if score > best {
				best = score
				filtered = filtered[:0]
			}
			if score == best {
				filtered = append(filtered, t)
			}
		}
		candidates = filtered
	}

	idx, err := o.pick(len(candidates))
	if err != nil {
		return nil, err
	}
	template := candidates[idx]

	themes := catalog.ThemesForTileSet(template.TileSet)
	idx, err = o.pick(len(themes))
	if err != nil {
		return nil, err
	}
	theme := themes[idx]

	startDoom := template.BaseDoom[difficulty]
	if startDoom <= 0 {
		startDoom = 10
	}
	startDoom += theme.DoomAdjustment[difficulty]

	s := &mission.Scenario{
		ID:                   o.idGen.Generate(),
		MissionID:            template.ID,
		Difficulty:           difficulty,
		StartDoom:            startDoom,
		DoomOnDeath:          2,
		DoomOnSurvivorRescue: -1, // rescuing a survivor buys time back
		VictoryType:          template.VictoryType,
		Theme:                theme.Name,
		TileSet:              template.TileSet,
		StartLocation:        theme.StartLocation,
		CreatedAt:            o.clock.Now().Unix(),
	}

	if err := o.expandObjectives(s, &template); err != nil {
		return nil, err
	}
	if err := o.attachBonusObjective(s); err != nil {
		return nil, err
	}

	s.DefeatConditions = []mission.DefeatCondition{
		{Type: mission.ConditionAllDead, Description: "Every investigator is dead or insane"},
		{Type: mission.ConditionDoomZero, Description: "The doom track reaches zero"},
	}
	s.DefeatConditions = append(s.DefeatConditions, template.ExtraDefeats...)

	if err := o.buildDoomEvents(s, &template, theme.Atmosphere); err != nil {
		return nil, err
	}
	if err := o.synthesizeNarrative(s); err != nil {
		return nil, err
	}

	slog.Debug("generated scenario",
		"scenario_id", s.ID,
		"mission", template.ID,
		"theme", theme.Name,
		"start_doom", s.StartDoom,
	)
	return s, nil
}

// expandObjectives turns template slots into concrete objectives and the
// victory condition referencing them
func (o *Orchestrator) expandObjectives(s *mission.Scenario, template *catalog.MissionTemplate) error {
	if len(template.Objectives) == 0 {
		return errors.Internalf("template %s has no objectives", template.ID)
	}

	idByKey := make(map[string]string, len(template.Objectives))
	for _, slot := range template.Objectives {
		idByKey[slot.Key] = "obj_" + slot.Key
	}

	for _, slot := range template.Objectives {
		obj := mission.ScenarioObjective{
			ID:               idByKey[slot.Key],
			Description:      slot.Description,
			ShortDescription: slot.Short,
			Type:             slot.Type,
			TargetID:         slot.TargetID,
			TargetAmount:     slot.TargetAmount,
			IsOptional:       slot.IsOptional,
			IsHidden:         slot.IsHidden,
		}
		if slot.RevealedBy != "" {
			obj.RevealedBy = idByKey[slot.RevealedBy]
		}
		s.Objectives = append(s.Objectives, obj)
	}

	required := make([]string, 0, len(template.VictoryKeys))
	for _, key := range template.VictoryKeys {
		id, ok := idByKey[key]
		if !ok {
			return errors.Internalf("template %s victory key %s has no objective", template.ID, key)
		}
		required = append(required, id)
	}
	s.VictoryConditions = []mission.VictoryCondition{
		{Type: mission.ConditionCompleteObjectives, RequiredObjectiveIDs: required},
	}
	return nil
}

// attachBonusObjective rolls for an optional extra objective
func (o *Orchestrator) attachBonusObjective(s *mission.Scenario) error {
	attach, err := o.chance(o.tunables.BonusObjectiveChance)
	if err != nil || !attach {
		return err
	}

	idx, err := o.pick(len(catalog.BonusObjectiveTemplates))
	if err != nil {
		return err
	}
	bonus := catalog.BonusObjectiveTemplates[idx]
	s.Objectives = append(s.Objectives, mission.ScenarioObjective{
		ID:               "obj_" + bonus.Key,
		Description:      bonus.Description,
		ShortDescription: bonus.Short,
		Type:             bonus.Type,
		TargetID:         bonus.TargetID,
		TargetAmount:     bonus.TargetAmount,
		IsOptional:       true,
	})
	return nil
}

// buildDoomEvents merges the difficulty, mission, and atmosphere enemy pools
// into early/mid/late spawn waves with strictly decreasing thresholds, plus a
// boss wave when the mission demands one. Events are stored sorted descending.
func (o *Orchestrator) buildDoomEvents(s *mission.Scenario, template *catalog.MissionTemplate, atmosphere string) error {
	enemies := catalog.EnemiesFor(s.Difficulty, template.ID, atmosphere)
	if len(enemies) == 0 {
		return errors.Internal("enemy pool is empty")
	}

	thresholds := []int{
		int(float64(s.StartDoom) * o.tunables.EarlyFraction),
		int(float64(s.StartDoom) * o.tunables.MidFraction),
		int(float64(s.StartDoom) * o.tunables.LateFraction),
	}
	// Enforce strictly decreasing, each at least 1
	for i := range thresholds {
		if floor := len(thresholds) - i; thresholds[i] < floor {
			thresholds[i] = floor
		}
		if i > 0 && thresholds[i] >= thresholds[i-1] {
			thresholds[i] = thresholds[i-1] - 1
		}
	}

	amount := o.tunables.spawnAmount(s.Difficulty)
	waves := []string{"A scraping sound echoes from the dark.", "The air turns cold; they are coming.", "The walls themselves begin to scream."}
	for i, threshold := range thresholds {
		idx, err := o.pick(len(enemies))
		if err != nil {
			return err
		}
		s.DoomEvents = append(s.DoomEvents, mission.DoomEvent{
			Threshold: threshold,
			Type:      mission.DoomEventSpawnEnemy,
			TargetID:  enemies[idx],
			Amount:    amount + i, // later waves grow
			Message:   waves[i%len(waves)],
		})
	}

	// A boss wave backs every kill_boss objective
	for _, obj := range s.Objectives {
		if obj.Type != mission.ObjectiveKillBoss {
			continue
		}
		boss := catalog.BossByType(obj.TargetID)
		if boss == nil {
			pool := catalog.BossesFor(s.Difficulty)
			idx, err := o.pick(len(pool))
			if err != nil {
				return err
			}
			boss = &pool[idx]
		}
		s.DoomEvents = append(s.DoomEvents, mission.DoomEvent{
			Threshold: thresholds[1] + 1,
			Type:      mission.DoomEventSpawnBoss,
			TargetID:  boss.Type,
			Amount:    1,
			Message:   boss.SpawnMessage,
		})
		break
	}

	sort.SliceStable(s.DoomEvents, func(i, j int) bool {
		return s.DoomEvents[i].Threshold > s.DoomEvents[j].Threshold
	})
	return nil
}

// synthesizeNarrative fills title and briefing from the text banks
func (o *Orchestrator) synthesizeNarrative(s *mission.Scenario) error {
	titleIdx, err := o.pick(len(catalog.TitleTemplates))
	if err != nil {
		return err
	}
	mysteryIdx, err := o.pick(len(catalog.MysteryNames))
	if err != nil {
		return err
	}
	openingIdx, err := o.pick(len(catalog.BriefingOpenings))
	if err != nil {
		return err
	}

	s.Title = fmt.Sprintf(catalog.TitleTemplates[titleIdx], catalog.MysteryNames[mysteryIdx])

	var hook string
	switch s.VictoryType {
	case mission.VictoryAssassination:
		nameIdx, err := o.pick(len(catalog.TargetNames))
		if err != nil {
			return err
		}
		hook = fmt.Sprintf("All signs point to %s. End this.", catalog.TargetNames[nameIdx])
	case mission.VictoryInvestigation:
		nameIdx, err := o.pick(len(catalog.VictimNames))
		if err != nil {
			return err
		}
		hook = fmt.Sprintf("%s was the last to vanish. Find out why.", catalog.VictimNames[nameIdx])
	case mission.VictorySurvival:
		hook = "Hold your ground until dawn breaks, whatever comes."
	case mission.VictoryCollection:
		hook = "Recover what was scattered before it falls into worse hands."
	case mission.VictoryRitual:
		hook = "The gate must be closed, and the rite demands its price."
	default:
		hook = "Find a way out before the house decides you stay."
	}

	s.Briefing = fmt.Sprintf("%s %s", catalog.BriefingOpenings[openingIdx], hook)
	return nil
}
