package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wildgrid/internal/game/geo"
)

func TestGridFinderOpen(t *testing.T) {
	f := NewGridFinder(20, 20, func(geo.TileCoord) bool { return true })

	path, cost, err := f.FindPath(geo.TileCoord{X: 1, Y: 1}, geo.TileCoord{X: 1, Y: 6})
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
	assert.Len(t, path, 5)
	assert.Equal(t, geo.TileCoord{X: 1, Y: 6}, path[len(path)-1])

	path, _, err = f.FindPath(geo.TileCoord{X: 1, Y: 1}, geo.TileCoord{X: 4, Y: 6})
	require.NoError(t, err)
	assert.Equal(t, geo.TileCoord{X: 4, Y: 6}, path[len(path)-1])
}

func TestGridFinderExpandsVision(t *testing.T) {
	// wall at x=5 with a gap at y=18, far outside the initial vision
	passable := func(c geo.TileCoord) bool { return c.X != 5 || c.Y == 18 }
	f := NewGridFinder(20, 20, passable)
	f.Vision = 2
	f.VisionStep = 4
	f.MaxVision = 30

	path, _, err := f.FindPath(geo.TileCoord{X: 4, Y: 2}, geo.TileCoord{X: 6, Y: 2})
	require.NoError(t, err)
	assert.Contains(t, path, geo.TileCoord{X: 5, Y: 18})
}

func TestGridFinderVisionCap(t *testing.T) {
	passable := func(c geo.TileCoord) bool { return c.X != 5 || c.Y == 18 }
	f := NewGridFinder(20, 20, passable)
	f.Vision = 2
	f.VisionStep = 2
	f.MaxVision = 6

	_, _, err := f.FindPath(geo.TileCoord{X: 4, Y: 2}, geo.TileCoord{X: 6, Y: 2})
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestGridFinderBlockedGoal(t *testing.T) {
	f := NewGridFinder(5, 5, func(c geo.TileCoord) bool { return c != geo.TileCoord{X: 2, Y: 2} })

	_, _, err := f.FindPath(geo.TileCoord{}, geo.TileCoord{X: 2, Y: 2})
	assert.ErrorIs(t, err, ErrNoPath)
}
