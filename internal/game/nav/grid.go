package nav

import (
	"fmt"

	"github.com/udisondev/wildgrid/internal/game/geo"
)

// Default vision settings for free-roaming search.
const (
	DefaultVision     = 8
	DefaultVisionStep = 8
	DefaultMaxVision  = 64
)

// GridFinder searches the raw tile grid of one area without an anchor graph.
// Every step costs 1, diagonals included. The search is confined to a square
// around the origin that grows until a path is found or MaxVision is reached.
type GridFinder struct {
	Width, Height int
	Passable      func(geo.TileCoord) bool

	Vision     int32
	VisionStep int32
	MaxVision  int32
	// Weight scales the Manhattan heuristic. Values above 1 trade optimality for speed.
	Weight int
}

// NewGridFinder returns a finder with default vision settings.
func NewGridFinder(width, height int, passable func(geo.TileCoord) bool) *GridFinder {
	return &GridFinder{
		Width:      width,
		Height:     height,
		Passable:   passable,
		Vision:     DefaultVision,
		VisionStep: DefaultVisionStep,
		MaxVision:  DefaultMaxVision,
		Weight:     1,
	}
}

// FindPath returns the tiles from `from` (excluded) to `to` (included) and the step count.
func (f *GridFinder) FindPath(from, to geo.TileCoord) ([]geo.TileCoord, int, error) {
	if !to.In(f.Width, f.Height) || !f.Passable(to) {
		return nil, 0, fmt.Errorf("grid path to %v: %w", to, ErrNoPath)
	}

	weight := max(f.Weight, 1)
	heuristic := func(t geo.TileCoord) int {
		return weight * int(t.ManhattanTo(to))
	}

	step := max(f.VisionStep, 1)
	for radius := max(f.Vision, 1); ; radius += step {
		if radius > f.MaxVision {
			radius = f.MaxVision
		}

		if from.ChebyshevTo(to) <= radius {
			path, cost, ok := AStar(from, to, visionArea(radius), f.successors(from, radius), heuristic)
			if ok {
				return path, cost, nil
			}
		}

		if radius >= f.MaxVision {
			break
		}
	}

	return nil, 0, fmt.Errorf("grid path %v -> %v: %w", from, to, ErrNoPath)
}

// visionArea is the number of tiles in the square of the given radius.
func visionArea(radius int32) int {
	side := int(2*radius + 1)
	return side * side
}

func (f *GridFinder) successors(origin geo.TileCoord, radius int32) SuccessorFunc[geo.TileCoord] {
	return func(n geo.TileCoord, visit func(geo.TileCoord, int)) {
		for _, d := range geo.AllDirections {
			dx, dy := d.Delta()
			next := geo.TileCoord{X: n.X + dx, Y: n.Y + dy}
			if !next.In(f.Width, f.Height) || origin.ChebyshevTo(next) > radius {
				continue
			}
			if !f.Passable(next) {
				continue
			}
			visit(next, 1)
		}
	}
}
