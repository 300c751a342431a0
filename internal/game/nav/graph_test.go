package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wildgrid/internal/game/geo"
)

func openField(x, y int) bool { return true }

func TestBuildGraphLayout(t *testing.T) {
	area := geo.AreaCoord{X: 2, Y: -1}
	g := BuildGraph(area, 10, 8, openField)

	require.Len(t, g.Anchors, PortalCount+10*8)
	assert.Equal(t, AnchorKey{X: -1, Y: 0, Area: area}, g.Anchors[PortalWest].Key)
	assert.Equal(t, AnchorKey{X: 10, Y: 0, Area: area}, g.Anchors[PortalEast].Key)
	assert.Equal(t, AnchorKey{X: 0, Y: 8, Area: area}, g.Anchors[PortalNorth].Key)
	assert.Equal(t, AnchorKey{X: 0, Y: -1, Area: area}, g.Anchors[PortalSouth].Key)

	for i := range PortalCount {
		assert.Empty(t, g.Anchors[i].Succ, "portal %d must have no successors", i)
		assert.True(t, g.Anchors[i].IsPortal())
	}

	// interior tile: 8 neighbours, no portals
	a, ok := g.AnchorAt(geo.TileCoord{X: 4, Y: 4})
	require.True(t, ok)
	assert.Len(t, a.Succ, 8)

	// corner (0,0): W and S portals plus 3 neighbours
	corner := g.Anchors[g.TileIndex(geo.TileCoord{})]
	assert.Len(t, corner.Succ, 5)
	assert.True(t, g.HasEdge(g.TileIndex(geo.TileCoord{}), PortalWest))
	assert.True(t, g.HasEdge(g.TileIndex(geo.TileCoord{}), PortalSouth))
}

func TestBuildGraphEdgeCosts(t *testing.T) {
	g := BuildGraph(geo.AreaCoord{}, 5, 5, openField)
	from := g.TileIndex(geo.TileCoord{X: 2, Y: 2})

	for _, e := range g.Anchors[from].Succ {
		to := g.Anchors[e.To].Key.Tile()
		if to.X != 2 && to.Y != 2 {
			assert.Equal(t, CostDiagonal, e.Cost)
		} else {
			assert.Equal(t, CostOrthogonal, e.Cost)
		}
	}
}

func TestImpassableTileIsIsolatedTarget(t *testing.T) {
	wall := geo.TileCoord{X: 3, Y: 3}
	g := BuildGraph(geo.AreaCoord{}, 7, 7, func(x, y int) bool {
		return !(x == int(wall.X) && y == int(wall.Y))
	})

	wallIdx := g.TileIndex(wall)
	assert.Empty(t, g.Anchors[wallIdx].Succ, "impassable tile has no outgoing edges")

	for _, d := range geo.AllDirections {
		dx, dy := d.Delta()
		n := geo.TileCoord{X: wall.X + dx, Y: wall.Y + dy}
		assert.False(t, g.HasEdge(g.TileIndex(n), wallIdx), "neighbour %v must not link into the wall", n)
	}
}

func TestFindPathDiagonalScenario(t *testing.T) {
	area := geo.AreaCoord{}
	g := BuildGraph(area, 10, 10, openField)

	path, cost, err := g.FindPath(KeyAt(geo.TileCoord{X: 4, Y: 4}, area), KeyAt(geo.TileCoord{}, area))
	require.NoError(t, err)
	assert.Len(t, path, 4)
	assert.Equal(t, 56, cost)
	assert.Equal(t, KeyAt(geo.TileCoord{}, area), path[len(path)-1])
}

func TestFindPathOctileOptimal(t *testing.T) {
	area := geo.AreaCoord{}
	g := BuildGraph(area, 12, 12, openField)

	tests := []struct {
		name     string
		from, to geo.TileCoord
	}{
		{"straight", geo.TileCoord{X: 0, Y: 5}, geo.TileCoord{X: 9, Y: 5}},
		{"diagonal", geo.TileCoord{X: 1, Y: 1}, geo.TileCoord{X: 8, Y: 8}},
		{"knight", geo.TileCoord{X: 2, Y: 0}, geo.TileCoord{X: 5, Y: 11}},
		{"reverse", geo.TileCoord{X: 11, Y: 11}, geo.TileCoord{X: 0, Y: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx := int(abs(tt.to.X - tt.from.X))
			dy := int(abs(tt.to.Y - tt.from.Y))
			want := CostDiagonal*min(dx, dy) + CostOrthogonal*(max(dx, dy)-min(dx, dy))

			path, cost, err := g.FindPath(KeyAt(tt.from, area), KeyAt(tt.to, area))
			require.NoError(t, err)
			assert.Equal(t, want, cost)
			assert.Len(t, path, max(dx, dy))
		})
	}
}

func TestFindPathLargeArea(t *testing.T) {
	area := geo.AreaCoord{}
	g := BuildGraph(area, 300, 300, openField)

	path, cost, err := g.FindPath(KeyAt(geo.TileCoord{}, area), KeyAt(geo.TileCoord{X: 299, Y: 299}, area))
	require.NoError(t, err)
	assert.Equal(t, 299*CostDiagonal, cost)
	assert.Len(t, path, 299)
}

func TestFindPathSerpentine(t *testing.T) {
	// horizontal walls every other row, open at alternating ends
	const w, h = 60, 61
	passable := func(x, y int) bool {
		if y%2 == 0 {
			return true
		}
		if (y/2)%2 == 0 {
			return x == w-1
		}
		return x == 0
	}
	area := geo.AreaCoord{}
	g := BuildGraph(area, w, h, passable)

	path, _, err := g.FindPath(KeyAt(geo.TileCoord{}, area), KeyAt(geo.TileCoord{Y: h - 1}, area))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(path), (w-2)*(h/2), "path winds through every gap")
}

func TestAStarLimit(t *testing.T) {
	line := func(n int, visit func(int, int)) { visit(n+1, 1) }
	zero := func(int) int { return 0 }

	_, cost, ok := AStar(0, 50, 0, line, zero)
	require.True(t, ok)
	assert.Equal(t, 50, cost)

	_, _, ok = AStar(0, 50, 50, line, zero)
	assert.True(t, ok, "limit equal to the nodes before goal is enough")

	_, _, ok = AStar(0, 50, 10, line, zero)
	assert.False(t, ok)
}

func TestFindPathToPortal(t *testing.T) {
	area := geo.AreaCoord{X: 1, Y: 1}
	g := BuildGraph(area, 6, 6, openField)

	path, cost, err := g.FindPath(KeyAt(geo.TileCoord{X: 3, Y: 2}, area), g.Portal(geo.East).Key)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, g.Portal(geo.East).Key, path[len(path)-1])
	assert.Equal(t, int32(5), path[len(path)-2].X, "portal reached from the east column")
	assert.Equal(t, 30, cost)
}

func TestFindPathBlocked(t *testing.T) {
	area := geo.AreaCoord{}
	// column x=3 is a full wall
	g := BuildGraph(area, 7, 5, func(x, y int) bool { return x != 3 })

	_, _, err := g.FindPath(KeyAt(geo.TileCoord{X: 0, Y: 2}, area), KeyAt(geo.TileCoord{X: 6, Y: 2}, area))
	assert.True(t, errors.Is(err, ErrNoPath))
}

func TestFindPathForeignArea(t *testing.T) {
	g := BuildGraph(geo.AreaCoord{}, 4, 4, openField)

	_, _, err := g.FindPath(KeyAt(geo.TileCoord{}, geo.AreaCoord{}), KeyAt(geo.TileCoord{}, geo.AreaCoord{X: 1}))
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestFindPathSameAnchor(t *testing.T) {
	area := geo.AreaCoord{}
	g := BuildGraph(area, 4, 4, openField)

	path, cost, err := g.FindPath(KeyAt(geo.TileCoord{X: 1, Y: 1}, area), KeyAt(geo.TileCoord{X: 1, Y: 1}, area))
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Zero(t, cost)
}

func TestPortalToward(t *testing.T) {
	from := geo.AreaCoord{}
	assert.Equal(t, geo.East, PortalToward(from, geo.AreaCoord{X: 2, Y: 5}))
	assert.Equal(t, geo.West, PortalToward(from, geo.AreaCoord{X: -1, Y: -1}))
	assert.Equal(t, geo.North, PortalToward(from, geo.AreaCoord{Y: 3}))
	assert.Equal(t, geo.South, PortalToward(from, geo.AreaCoord{Y: -3}))
	assert.Equal(t, geo.DirNone, PortalToward(from, from))
}

func TestAnchorHeuristicPortalEdge(t *testing.T) {
	area := geo.AreaCoord{}
	h := AnchorHeuristic(PortalKey(geo.East, area, 9, 9), 9, 9)
	// distance measured to the x=9 line regardless of y
	assert.Equal(t, 3, h(AnchorKey{X: 0, Y: 8, Area: area}))
	assert.Equal(t, 3, h(AnchorKey{X: 0, Y: 0, Area: area}))

	h = AnchorHeuristic(KeyAt(geo.TileCoord{X: 6, Y: 6}, area), 9, 9)
	assert.Equal(t, 4, h(KeyAt(geo.TileCoord{}, area)))
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
