package nav

import (
	"fmt"

	"github.com/udisondev/wildgrid/internal/game/geo"
)

// Edge costs (octile approximation of 10 and 10*sqrt(2)).
const (
	CostOrthogonal = 10
	CostDiagonal   = 14
)

// Portal anchor indices. Interior anchors start at PortalCount.
const (
	PortalWest = iota
	PortalEast
	PortalNorth
	PortalSouth
	PortalCount
)

// AnchorKey identifies a navigable point: local tile plus area.
// Portal anchors use out-of-range local coordinates (see PortalKey).
type AnchorKey struct {
	X, Y int32
	Area geo.AreaCoord
}

// Tile returns the local tile of the key.
func (k AnchorKey) Tile() geo.TileCoord {
	return geo.TileCoord{X: k.X, Y: k.Y}
}

// Center returns the real position of the key's tile centre.
// For portal keys the result lies just past the area edge.
func (k AnchorKey) Center() geo.WorldPos {
	return k.Tile().Center()
}

// Less is a total order over keys: area first, then local tile.
func (k AnchorKey) Less(o AnchorKey) bool {
	if k.Area != o.Area {
		return k.Area.Less(o.Area)
	}
	if k.X != o.X {
		return k.X < o.X
	}
	return k.Y < o.Y
}

func (k AnchorKey) String() string {
	return fmt.Sprintf("%d:%d@%s", k.X, k.Y, k.Area)
}

// KeyAt builds the key of an interior tile.
func KeyAt(tile geo.TileCoord, area geo.AreaCoord) AnchorKey {
	return AnchorKey{X: tile.X, Y: tile.Y, Area: area}
}

// Edge is a weighted successor link to another anchor of the same graph.
type Edge struct {
	To   int
	Cost int
}

// Anchor is a node of an area's navigation graph.
// Two anchors are equal when their keys are equal; successors are ignored.
type Anchor struct {
	Key    AnchorKey
	Portal geo.Direction // DirNone for interior anchors
	Succ   []Edge
}

// Equal compares anchors by position only.
func (a Anchor) Equal(o Anchor) bool {
	return a.Key == o.Key
}

// IsPortal reports whether a is one of the four edge portals.
func (a Anchor) IsPortal() bool {
	return a.Portal != geo.DirNone
}

// PortalIndex maps an orthogonal direction to its portal anchor index.
// Returns -1 for diagonals and DirNone.
func PortalIndex(d geo.Direction) int {
	switch d {
	case geo.West:
		return PortalWest
	case geo.East:
		return PortalEast
	case geo.North:
		return PortalNorth
	case geo.South:
		return PortalSouth
	default:
		return -1
	}
}

// PortalKey returns the out-of-range key used by the portal in direction d.
func PortalKey(d geo.Direction, area geo.AreaCoord, width, height int) AnchorKey {
	switch d {
	case geo.West:
		return AnchorKey{X: -1, Y: 0, Area: area}
	case geo.East:
		return AnchorKey{X: int32(width), Y: 0, Area: area}
	case geo.North:
		return AnchorKey{X: 0, Y: int32(height), Area: area}
	case geo.South:
		return AnchorKey{X: 0, Y: -1, Area: area}
	default:
		panic(fmt.Sprintf("nav: no portal for direction %s", d))
	}
}

// PortalToward picks the single portal leading from one area toward another:
// the x axis wins when both differ. Returns DirNone for the same area.
func PortalToward(from, to geo.AreaCoord) geo.Direction {
	switch {
	case to.X > from.X:
		return geo.East
	case to.X < from.X:
		return geo.West
	case to.Y > from.Y:
		return geo.North
	case to.Y < from.Y:
		return geo.South
	default:
		return geo.DirNone
	}
}
