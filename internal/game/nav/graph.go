package nav

import (
	"errors"
	"fmt"

	"github.com/udisondev/wildgrid/internal/game/geo"
)

var portalDirections = [PortalCount]geo.Direction{
	PortalWest:  geo.West,
	PortalEast:  geo.East,
	PortalNorth: geo.North,
	PortalSouth: geo.South,
}

// neighbour offsets with their edge cost
var graphOffsets = [8]struct {
	dx, dy int32
	cost   int
}{
	{0, 1, CostOrthogonal},
	{1, 0, CostOrthogonal},
	{0, -1, CostOrthogonal},
	{-1, 0, CostOrthogonal},
	{1, 1, CostDiagonal},
	{-1, 1, CostDiagonal},
	{1, -1, CostDiagonal},
	{-1, -1, CostDiagonal},
}

// Graph is the anchor graph of one area: 4 portals followed by width*height tile anchors.
type Graph struct {
	Area    geo.AreaCoord
	Width   int
	Height  int
	Anchors []Anchor
}

// BuildGraph constructs the anchor graph over a passability map.
// Only passable tiles get outgoing edges; impassable tiles stay as isolated targets.
func BuildGraph(area geo.AreaCoord, width, height int, passable func(x, y int) bool) *Graph {
	anchors := make([]Anchor, PortalCount+width*height)

	for i, d := range portalDirections {
		anchors[i] = Anchor{Key: PortalKey(d, area, width, height), Portal: d}
	}

	for y := range height {
		for x := range width {
			idx := PortalCount + x + y*width
			a := Anchor{Key: AnchorKey{X: int32(x), Y: int32(y), Area: area}}

			if passable(x, y) {
				succ := make([]Edge, 0, 8)
				if x == 0 {
					succ = append(succ, Edge{To: PortalWest, Cost: CostOrthogonal})
				}
				if x == width-1 {
					succ = append(succ, Edge{To: PortalEast, Cost: CostOrthogonal})
				}
				if y == height-1 {
					succ = append(succ, Edge{To: PortalNorth, Cost: CostOrthogonal})
				}
				if y == 0 {
					succ = append(succ, Edge{To: PortalSouth, Cost: CostOrthogonal})
				}
				for _, o := range graphOffsets {
					nx, ny := x+int(o.dx), y+int(o.dy)
					if nx < 0 || ny < 0 || nx >= width || ny >= height {
						continue
					}
					if !passable(nx, ny) {
						continue
					}
					succ = append(succ, Edge{To: PortalCount + nx + ny*width, Cost: o.cost})
				}
				a.Succ = succ
			}

			anchors[idx] = a
		}
	}

	return &Graph{Area: area, Width: width, Height: height, Anchors: anchors}
}

// TileIndex returns the anchor index of an interior tile.
// Panics on out-of-range tiles: that is an anchor/area desync.
func (g *Graph) TileIndex(t geo.TileCoord) int {
	if !t.In(g.Width, g.Height) {
		panic(fmt.Sprintf("nav: tile %v outside %dx%d graph of area %s", t, g.Width, g.Height, g.Area))
	}
	return PortalCount + t.Index(g.Width)
}

// IndexOf resolves a key of this graph to its anchor index.
func (g *Graph) IndexOf(k AnchorKey) (int, bool) {
	if k.Area != g.Area {
		return 0, false
	}
	t := k.Tile()
	if t.In(g.Width, g.Height) {
		return PortalCount + t.Index(g.Width), true
	}
	for i := range PortalCount {
		if g.Anchors[i].Key == k {
			return i, true
		}
	}
	return 0, false
}

// Portal returns the portal anchor for an orthogonal direction.
func (g *Graph) Portal(d geo.Direction) Anchor {
	i := PortalIndex(d)
	if i < 0 {
		panic(fmt.Sprintf("nav: no portal for direction %s", d))
	}
	return g.Anchors[i]
}

// AnchorAt returns the anchor of a local tile.
func (g *Graph) AnchorAt(t geo.TileCoord) (Anchor, bool) {
	if !t.In(g.Width, g.Height) {
		return Anchor{}, false
	}
	return g.Anchors[g.TileIndex(t)], true
}

// HasEdge reports whether anchor from has a direct successor edge to anchor to.
func (g *Graph) HasEdge(from, to int) bool {
	for _, e := range g.Anchors[from].Succ {
		if e.To == to {
			return true
		}
	}
	return false
}

// ErrNoPath is returned when the goal cannot be reached inside the graph.
var ErrNoPath = errors.New("nav: no path")

// FindPath runs A* from one anchor to another in this graph.
// The path excludes from and ends at to. Both keys must belong to g.Area.
func (g *Graph) FindPath(from, to AnchorKey) ([]AnchorKey, int, error) {
	start, ok := g.IndexOf(from)
	if !ok {
		return nil, 0, fmt.Errorf("find path from %s: %w", from, ErrNoPath)
	}
	goal, ok := g.IndexOf(to)
	if !ok {
		return nil, 0, fmt.Errorf("find path to %s: %w", to, ErrNoPath)
	}

	h := AnchorHeuristic(to, g.Width, g.Height)
	steps, cost, found := AStar(start, goal, len(g.Anchors),
		func(n int, visit func(int, int)) {
			for _, e := range g.Anchors[n].Succ {
				visit(e.To, e.Cost)
			}
		},
		func(n int) int { return h(g.Anchors[n].Key) },
	)
	if !found {
		return nil, 0, fmt.Errorf("find path %s -> %s: %w", from, to, ErrNoPath)
	}

	path := make([]AnchorKey, len(steps))
	for i, idx := range steps {
		path[i] = g.Anchors[idx].Key
	}
	return path, cost, nil
}
