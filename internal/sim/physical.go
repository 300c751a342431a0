package sim

import (
	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/model"
)

// Physical rebuilds the occupancy grid and moves agents that walked off the stage
// into the neighbouring area.
type Physical struct{}

func (Physical) Name() string { return "physical" }

func (Physical) Run(c *Context) {
	m := c.Map
	m.ClearOccupancy()

	for _, e := range c.Entities.All() {
		if !c.InActiveArea(e) || e.Plant != nil {
			continue
		}
		if e.Mover != nil {
			if d := Wrap(e.Physical, c.StageWidth(), c.StageHeight()); d != geo.DirNone {
				e.Mover.ClearSteps()
				continue
			}
		}
		m.Occupy(e.Physical.Tile(), e.ID)
	}

	// plants take their cell last so foragers can find them
	for _, e := range c.Entities.All() {
		if e.Plant != nil && c.InActiveArea(e) {
			m.Occupy(e.Physical.Tile(), e.ID)
		}
	}
}

// Wrap moves p to the opposite stage edge of the next area when it left the stage.
// Returns the direction crossed, or DirNone.
func Wrap(p *model.Physical, stageW, stageH float32) geo.Direction {
	var d geo.Direction
	switch {
	case p.Pos.X > stageW:
		d = geo.East
		p.Pos.X = geo.HalfTileSize
	case p.Pos.X < 0:
		d = geo.West
		p.Pos.X = stageW - geo.HalfTileSize
	case p.Pos.Y > stageH:
		d = geo.North
		p.Pos.Y = geo.HalfTileSize
	case p.Pos.Y < 0:
		d = geo.South
		p.Pos.Y = stageH - geo.HalfTileSize
	default:
		return geo.DirNone
	}
	p.Shift(d)
	return d
}
