package observer

import (
	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/world"
)

// Message types.
const (
	TypeSnapshot = "snapshot"
	TypeInput    = "input"
)

// Snapshot is the server to client view of the active area.
// Tiles are sent only when the active area changed since the previous snapshot.
type Snapshot struct {
	Type       string        `json:"type"`
	Frame      uint64        `json:"frame"`
	Location   geo.AreaCoord `json:"location"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Tiles      []uint16      `json:"tiles,omitempty"`
	Structures []geo.Rect    `json:"structures,omitempty"`
	Entities   []EntityView  `json:"entities"`
}

// EntityView is the observable state of one entity.
type EntityView struct {
	ID     string        `json:"id"`
	Kind   string        `json:"kind"`
	X      float32       `json:"x"`
	Y      float32       `json:"y"`
	Area   geo.AreaCoord `json:"area"`
	Goals  int           `json:"goals,omitempty"`
	Hunger float32       `json:"hunger,omitempty"`
	Ripe   bool          `json:"ripe,omitempty"`
}

// InputMessage is the client to server player input. DX and DY are clamped to [-1, 1].
type InputMessage struct {
	Type string  `json:"type"`
	DX   float32 `json:"dx"`
	DY   float32 `json:"dy"`
}

func viewOf(e *model.Entity) EntityView {
	v := EntityView{ID: e.ID.UUID.String(), Kind: e.ID.Kind.String()}
	if p := e.Physical; p != nil {
		v.X, v.Y, v.Area = p.Pos.X, p.Pos.Y, p.Area
	}
	if e.Mover != nil {
		v.Goals = e.Mover.GoalCount()
	}
	if e.Hunger != nil {
		v.Hunger = e.Hunger.Current()
	}
	if e.Plant != nil {
		v.Ripe = e.Plant.Ripe()
	}
	return v
}

func tileValues(tiles []world.TileBlock) []uint16 {
	out := make([]uint16, len(tiles))
	for i, t := range tiles {
		out[i] = uint16(t.Tile)
	}
	return out
}
