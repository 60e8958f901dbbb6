package catalog

import (
	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// Narrative text banks. The generator draws from these with its injected
// roller; nothing here is load-bearing for winnability.

// TargetNames names assassination targets and culprits
var TargetNames = []string{
	"Malachar",
	"Sister Ravenna",
	"Doctor Hallowell",
	"The Pale Curator",
	"Ezekiel Marsh",
}

// VictimNames names the missing, the dead, and the ones worth saving
var VictimNames = []string{
	"Abigail Thorne",
	"The Ferryman's Son",
	"Professor Whitlock",
	"The Verger",
	"Little Tamsin",
}

// MysteryNames names the central horror of a scenario
var MysteryNames = []string{
	"the Whispering Dark",
	"the Drowned Choir",
	"the Hollow Moon",
	"the Red Sacrament",
	"the Nameless Tide",
}

// TitleTemplates are fmt templates taking a mystery name
var TitleTemplates = []string{
	"Shadow of %s",
	"The Coming of %s",
	"Beneath %s",
	"Last Rites of %s",
	"A Reckoning with %s",
}

// BriefingOpenings lead the synthesized briefing text
var BriefingOpenings = []string{
	"The letters stopped three weeks ago.",
	"No lights have burned in the windows since the storm.",
	"The locals will not speak of it after dark.",
	"Something has been taking the livestock, and now the children.",
	"The last investigator came back unable to speak.",
}

// CollectibleVocab names pickups per quest item type
var CollectibleVocab = map[mission.QuestItemType][]string{
	mission.QuestItemKey:         {"brass key", "iron key", "bone key"},
	mission.QuestItemClue:        {"torn journal page", "bloodied ledger", "faded photograph", "scratched locket"},
	mission.QuestItemCollectible: {"silver idol", "jade figurine", "tarnished chalice"},
	mission.QuestItemArtifact:    {"sealed relic", "graven tablet", "weeping icon"},
	mission.QuestItemComponent:   {"black candle", "vial of grave dust", "braided cord", "censer of myrrh"},
}

// ItemNameFor returns the nth vocabulary entry for an item type, wrapping
// around. Total: unknown item types get a generic name.
func ItemNameFor(itemType mission.QuestItemType, n int) string {
	vocab := CollectibleVocab[itemType]
	if len(vocab) == 0 {
		return "strange object"
	}
	if n < 0 {
		n = -n
	}
	return vocab[n%len(vocab)]
}

// BonusObjectiveTemplates are optional extras the generator may attach.
// Always optional; never part of a victory condition.
var BonusObjectiveTemplates = []ObjectiveTemplate{
	{
		Key:         "rescue_survivor",
		Description: "Find the survivor hiding somewhere inside and lead them out",
		Short:       "Rescue the survivor",
		Type:        mission.ObjectiveInteract,
		TargetID:    "survivor",
		IsOptional:  true,
	},
	{
		Key:         "recover_heirloom",
		Description: "Recover the family heirloom before the house takes it",
		Short:       "Recover the heirloom",
		Type:        mission.ObjectiveFindItem,
		TargetID:    "heirloom",
		ItemType:    mission.QuestItemCollectible,
		IsOptional:  true,
	},
	{
		Key:         "cleanse_shrine",
		Description: "Cleanse the defiled shrine and deny the enemy its power",
		Short:       "Cleanse the shrine",
		Type:        mission.ObjectiveInteract,
		TargetID:    "shrine",
		IsOptional:  true,
	},
}
