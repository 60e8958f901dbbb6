package spawner

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
)

// Entity wrappers adapting mission records to the toolkit event bus

type questItemEntity struct {
	item *mission.QuestItem
}

func (e *questItemEntity) GetID() string   { return e.item.ID }
func (e *questItemEntity) GetType() string { return "quest_item" }

type questTileEntity struct {
	tile *mission.QuestTile
}

func (e *questTileEntity) GetID() string   { return e.tile.ID }
func (e *questTileEntity) GetType() string { return "quest_tile" }

type boardTileEntity struct {
	tile *mission.Tile
}

func (e *boardTileEntity) GetID() string   { return e.tile.ID }
func (e *boardTileEntity) GetType() string { return "tile" }

var (
	_ core.Entity = (*questItemEntity)(nil)
	_ core.Entity = (*questTileEntity)(nil)
	_ core.Entity = (*boardTileEntity)(nil)
)
