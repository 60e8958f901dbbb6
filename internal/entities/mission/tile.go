package mission

// Tile category names the board subsystem uses. Free-text room names vary per
// location pool; categories are the enumerated vocabulary spawn scoring keys on.
const (
	TileCategoryCorridor = "corridor"
	TileCategoryFoyer    = "foyer"
	TileCategoryEntrance = "entrance"
	TileCategoryStudy    = "study"
	TileCategoryLibrary  = "library"
	TileCategoryCellar   = "cellar"
	TileCategoryCrypt    = "crypt"
	TileCategoryChapel   = "chapel"
	TileCategoryRitual   = "ritual"
	TileCategoryBedroom  = "bedroom"
	TileCategoryKitchen  = "kitchen"
	TileCategoryAttic    = "attic"
	TileCategoryGarden   = "garden"
	TileCategoryClearing = "clearing"
)

// Tile is the read model this core consumes from the board subsystem. The only
// write access the spawn runtime has is quest-tile materialization, which sets
// QuestFunction and BossType on an already-explored tile.
type Tile struct {
	ID         string   `json:"id"`
	Q          int      `json:"q"` // axial coordinates
	R          int      `json:"r"`
	Category   string   `json:"category"`
	Name       string   `json:"name"`
	Floor      int      `json:"floor"`
	Explored   bool     `json:"explored"`
	Searchable bool     `json:"searchable"`
	Items      []string `json:"items,omitempty"`

	// QuestFunction is set when a revealed quest tile materializes here
	QuestFunction QuestTileType `json:"quest_function,omitempty"`
	BossType      string        `json:"boss_type,omitempty"`
}

// IsCorridor reports whether the tile is a connector rather than a room
func (t *Tile) IsCorridor() bool {
	return t.Category == TileCategoryCorridor
}

// CanHostSpawn reports whether a quest item may be placed here
func (t *Tile) CanHostSpawn() bool {
	return t.Searchable && !t.IsCorridor()
}
