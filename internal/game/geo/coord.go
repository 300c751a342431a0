package geo

import (
	"fmt"
	"math"
)

// TileCoord is a tile position inside one area.
type TileCoord struct {
	X, Y int32
}

// AreaCoord is the position of an area in the infinite area grid.
type AreaCoord struct {
	X, Y int32
}

// WorldPos is a real (sub-tile) position inside one area, in world units.
type WorldPos struct {
	X, Y float32
}

// Tile returns the tile containing p. Negative positions floor toward -inf.
func (p WorldPos) Tile() TileCoord {
	return TileCoord{
		X: int32(math.Floor(float64(p.X) / TileSize)),
		Y: int32(math.Floor(float64(p.Y) / TileSize)),
	}
}

// Center returns the world position of the tile centre.
func (t TileCoord) Center() WorldPos {
	return WorldPos{
		X: float32(t.X)*TileSize + HalfTileSize,
		Y: float32(t.Y)*TileSize + HalfTileSize,
	}
}

// In reports whether t lies inside a width×height grid.
func (t TileCoord) In(width, height int) bool {
	return t.X >= 0 && t.Y >= 0 && int(t.X) < width && int(t.Y) < height
}

// Index returns the row-major flat index of t. Caller must bounds-check first.
func (t TileCoord) Index(width int) int {
	return int(t.X) + int(t.Y)*width
}

// Clamp limits t to a width×height grid.
func (t TileCoord) Clamp(width, height int) TileCoord {
	return TileCoord{
		X: clamp32(t.X, 0, int32(width-1)),
		Y: clamp32(t.Y, 0, int32(height-1)),
	}
}

// ChebyshevTo returns the king-move distance between tiles.
func (t TileCoord) ChebyshevTo(o TileCoord) int32 {
	return max(abs32(t.X-o.X), abs32(t.Y-o.Y))
}

// ManhattanTo returns |dx|+|dy|.
func (t TileCoord) ManhattanTo(o TileCoord) int32 {
	return abs32(t.X-o.X) + abs32(t.Y-o.Y)
}

// Ring calls fn for every tile at Chebyshev distance r from centre, column by
// column from the west, south to north within a column. It stops when fn returns false.
// Tiles are not bounds-checked.
func Ring(centre TileCoord, r int32, fn func(TileCoord) bool) {
	if r <= 0 {
		fn(centre)
		return
	}
	for x := centre.X - r; x <= centre.X+r; x++ {
		if x == centre.X-r || x == centre.X+r {
			for y := centre.Y - r; y <= centre.Y+r; y++ {
				if !fn(TileCoord{X: x, Y: y}) {
					return
				}
			}
			continue
		}
		if !fn(TileCoord{X: x, Y: centre.Y - r}) || !fn(TileCoord{X: x, Y: centre.Y + r}) {
			return
		}
	}
}

// TileAt converts a flat index back to a tile coordinate.
func TileAt(index, width int) TileCoord {
	return TileCoord{X: int32(index % width), Y: int32(index / width)}
}

// Step returns the neighbouring area in direction d.
func (a AreaCoord) Step(d Direction) AreaCoord {
	dx, dy := d.Delta()
	return AreaCoord{X: a.X + dx, Y: a.Y + dy}
}

// Add offsets the area coordinate.
func (a AreaCoord) Add(dx, dy int32) AreaCoord {
	return AreaCoord{X: a.X + dx, Y: a.Y + dy}
}

// Less orders area coordinates by X then Y.
func (a AreaCoord) Less(o AreaCoord) bool {
	if a.X != o.X {
		return a.X < o.X
	}
	return a.Y < o.Y
}

func (a AreaCoord) String() string {
	return fmt.Sprintf("(%d,%d)", a.X, a.Y)
}

// DirectionBetween computes the direction from one tile to an adjacent (or farther) tile.
func DirectionBetween(from, to TileCoord) Direction {
	return DirectionOf(to.X-from.X, to.Y-from.Y)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
