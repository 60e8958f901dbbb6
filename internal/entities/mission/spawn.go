package mission

// QuestItem is an objective-linked pickup that materializes on a tile during play
type QuestItem struct {
	ID              string        `json:"id"`
	ObjectiveID     string        `json:"objective_id"`
	ScenarioID      string        `json:"scenario_id"`
	Type            QuestItemType `json:"type"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	Spawned         bool          `json:"spawned"`
	SpawnedOnTileID string        `json:"spawned_on_tile_id,omitempty"`
	Collected       bool          `json:"collected"`
}

// QuestTile is an objective-linked location that materializes on the board.
// Lifecycle is monotonic: unrevealed, then revealed, then spawned.
type QuestTile struct {
	ID                string        `json:"id"`
	ObjectiveID       string        `json:"objective_id"`
	Type              QuestTileType `json:"type"`
	Name              string        `json:"name"`
	Spawned           bool          `json:"spawned"`
	Revealed          bool          `json:"revealed"`
	RevealCondition   string        `json:"reveal_condition,omitempty"`
	RevealObjectiveID string        `json:"reveal_objective_id,omitempty"`
	BossType          string        `json:"boss_type,omitempty"` // final_confrontation only
}

// ObjectiveSpawnState is the per-scenario runtime state of the spawn scheduler.
// It is created at scenario start, discarded at scenario end, and every mutation
// returns a new value so the save subsystem can snapshot it at any event boundary.
type ObjectiveSpawnState struct {
	ScenarioID          string      `json:"scenario_id"`
	QuestItems          []QuestItem `json:"quest_items"`
	QuestTiles          []QuestTile `json:"quest_tiles"`
	TilesExplored       int         `json:"tiles_explored"`
	ItemsCollected      int         `json:"items_collected"`
	TilesSinceLastSpawn int         `json:"tiles_since_last_spawn"` // pity counter
}

// Clone returns a deep copy of the spawn state
func (s *ObjectiveSpawnState) Clone() *ObjectiveSpawnState {
	if s == nil {
		return nil
	}
	out := *s
	out.QuestItems = append([]QuestItem(nil), s.QuestItems...)
	out.QuestTiles = append([]QuestTile(nil), s.QuestTiles...)
	return &out
}

// ItemByID returns the quest item with the given ID, or nil
func (s *ObjectiveSpawnState) ItemByID(id string) *QuestItem {
	for i := range s.QuestItems {
		if s.QuestItems[i].ID == id {
			return &s.QuestItems[i]
		}
	}
	return nil
}

// TileByID returns the quest tile with the given ID, or nil
func (s *ObjectiveSpawnState) TileByID(id string) *QuestTile {
	for i := range s.QuestTiles {
		if s.QuestTiles[i].ID == id {
			return &s.QuestTiles[i]
		}
	}
	return nil
}
