package world

import (
	"fmt"

	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/game/nav"
)

// AreaIndex is a position in the WorldMap area list.
// Indices are stable for the lifetime of the map.
type AreaIndex int

// NoArea marks a neighbour that has not been generated yet.
const NoArea AreaIndex = -1

// Valid reports whether i refers to a generated area.
func (i AreaIndex) Valid() bool { return i >= 0 }

func (i AreaIndex) String() string {
	if !i.Valid() {
		return "none"
	}
	return fmt.Sprintf("#%d", int(i))
}

// Area is one generated screen of the world.
type Area struct {
	Location   geo.AreaCoord
	Width      int
	Height     int
	Tiles      []TileBlock
	Graph      *nav.Graph
	Structures []geo.Rect
	Spawned    bool
	// Neighbors is indexed by Direction.Slot().
	Neighbors [geo.DirectionCount]AreaIndex
}

func newArea(loc geo.AreaCoord, width, height int) *Area {
	a := &Area{
		Location: loc,
		Width:    width,
		Height:   height,
		Tiles:    make([]TileBlock, width*height),
	}
	for i := range a.Neighbors {
		a.Neighbors[i] = NoArea
	}
	return a
}

// Resident reports whether tile data and the anchor graph are in memory.
func (a *Area) Resident() bool {
	return a.Tiles != nil && a.Graph != nil
}

// Anchors returns the anchor list of the area graph.
func (a *Area) Anchors() []nav.Anchor {
	if a.Graph == nil {
		return nil
	}
	return a.Graph.Anchors
}

// Block returns the tile at (x, y). ok is false out of bounds.
func (a *Area) Block(t geo.TileCoord) (TileBlock, bool) {
	if !t.In(a.Width, a.Height) || a.Tiles == nil {
		return TileBlock{}, false
	}
	return a.Tiles[t.Index(a.Width)], true
}

// IsPassable reports whether an agent may stand on t. Out of bounds is impassable.
func (a *Area) IsPassable(t geo.TileCoord) bool {
	b, ok := a.Block(t)
	return ok && b.Passable
}

// NearestPassable returns the passable tile closest to t by Chebyshev distance,
// scanning square rings around it. ok is false when the area has no passable tile.
func (a *Area) NearestPassable(t geo.TileCoord) (geo.TileCoord, bool) {
	t = t.Clamp(a.Width, a.Height)
	if a.IsPassable(t) {
		return t, true
	}
	limit := int32(max(a.Width, a.Height))
	for r := int32(1); r < limit; r++ {
		found, ok := geo.TileCoord{}, false
		geo.Ring(t, r, func(c geo.TileCoord) bool {
			if a.IsPassable(c) {
				found, ok = c, true
				return false
			}
			return true
		})
		if ok {
			return found, true
		}
	}
	return geo.TileCoord{}, false
}

// Neighbor returns the index of the neighbour in direction d.
func (a *Area) Neighbor(d geo.Direction) AreaIndex {
	slot := d.Slot()
	if slot < 0 {
		return NoArea
	}
	return a.Neighbors[slot]
}

func (a *Area) setTile(x, y int, b TileBlock) {
	a.Tiles[x+y*a.Width] = b
}

func (a *Area) buildGraph() {
	a.Graph = nav.BuildGraph(a.Location, a.Width, a.Height, func(x, y int) bool {
		return a.Tiles[x+y*a.Width].Passable
	})
}
