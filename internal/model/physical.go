package model

import "github.com/udisondev/wildgrid/internal/game/geo"

// Physical places an entity in the world: real position inside its area plus the area.
type Physical struct {
	Pos  geo.WorldPos
	Area geo.AreaCoord
}

// NewPhysicalAt returns a Physical centred on tile t of area.
func NewPhysicalAt(t geo.TileCoord, area geo.AreaCoord) Physical {
	return Physical{Pos: t.Center(), Area: area}
}

// Tile returns the tile containing the entity.
func (p *Physical) Tile() geo.TileCoord {
	return p.Pos.Tile()
}

// SnapTo moves the entity to the centre of tile t.
func (p *Physical) SnapTo(t geo.TileCoord) {
	p.Pos = t.Center()
}

// Shift moves the area coordinate one step in direction d.
func (p *Physical) Shift(d geo.Direction) {
	p.Area = p.Area.Step(d)
}
