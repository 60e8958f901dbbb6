package mission

// Difficulty selects the per-difficulty numbers in mission templates
type Difficulty string

// Difficulty levels
const (
	DifficultyNormal    Difficulty = "normal"
	DifficultyHard      Difficulty = "hard"
	DifficultyNightmare Difficulty = "nightmare"
)

// Difficulties lists all difficulty levels in ascending order
var Difficulties = []Difficulty{DifficultyNormal, DifficultyHard, DifficultyNightmare}

// IsValid reports whether d is a known difficulty
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyNormal, DifficultyHard, DifficultyNightmare:
		return true
	}
	return false
}

// VictoryType classifies how a scenario is won
type VictoryType string

// Victory types
const (
	VictoryEscape        VictoryType = "escape"
	VictoryAssassination VictoryType = "assassination"
	VictorySurvival      VictoryType = "survival"
	VictoryCollection    VictoryType = "collection"
	VictoryRitual        VictoryType = "ritual"
	VictoryInvestigation VictoryType = "investigation"
)

// ObjectiveType classifies what an objective asks the players to do
type ObjectiveType string

// Objective types
const (
	ObjectiveFindItem  ObjectiveType = "find_item"
	ObjectiveCollect   ObjectiveType = "collect"
	ObjectiveFindTile  ObjectiveType = "find_tile"
	ObjectiveEscape    ObjectiveType = "escape"
	ObjectiveKillEnemy ObjectiveType = "kill_enemy"
	ObjectiveKillBoss  ObjectiveType = "kill_boss"
	ObjectiveSurvive   ObjectiveType = "survive"
	ObjectiveExplore   ObjectiveType = "explore"
	ObjectiveInteract  ObjectiveType = "interact"
	ObjectiveRitual    ObjectiveType = "ritual"
	ObjectiveProtect   ObjectiveType = "protect"
	ObjectiveEscort    ObjectiveType = "escort"
)

// DoomEventType classifies what fires when doom crosses a threshold
type DoomEventType string

// Doom event types
const (
	DoomEventSpawnEnemy DoomEventType = "spawn_enemy"
	DoomEventSpawnBoss  DoomEventType = "spawn_boss"
)

// ConditionType classifies victory and defeat conditions
type ConditionType string

// Condition types
const (
	ConditionCompleteObjectives ConditionType = "complete_objectives"
	ConditionAllDead            ConditionType = "all_investigators_dead"
	ConditionDoomZero           ConditionType = "doom_reaches_zero"
	ConditionProtecteeDead      ConditionType = "protectee_dead"
	ConditionRitualCompleted    ConditionType = "enemy_ritual_completed"
)

// TileSet selects which location pool a scenario draws from
type TileSet string

// Tile sets
const (
	TileSetIndoor  TileSet = "indoor"
	TileSetOutdoor TileSet = "outdoor"
	TileSetMixed   TileSet = "mixed"
)

// QuestItemType classifies objective-linked pickups
type QuestItemType string

// Quest item types
const (
	QuestItemKey         QuestItemType = "key"
	QuestItemClue        QuestItemType = "clue"
	QuestItemCollectible QuestItemType = "collectible"
	QuestItemArtifact    QuestItemType = "artifact"
	QuestItemComponent   QuestItemType = "component"
)

// QuestTileType classifies objective-linked locations
type QuestTileType string

// Quest tile types
const (
	QuestTileExit               QuestTileType = "exit"
	QuestTileAltar              QuestTileType = "altar"
	QuestTileFinalConfrontation QuestTileType = "final_confrontation"
	QuestTileNPCLocation        QuestTileType = "npc_location"
)

// Severity distinguishes blocking validation issues from advisories
type Severity string

// Issue severities
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Urgency grades the guaranteed-spawn escalation check
type Urgency string

// Escalation urgencies
const (
	UrgencyNone     Urgency = "none"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
)
