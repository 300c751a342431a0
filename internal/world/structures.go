package world

import (
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/wildgrid/internal/game/geo"
)

// Structure layout limits.
const (
	StructurePad = 1 // tiles kept clear along the area edge
	MinSplit     = 5 // smallest leaf edge produced by a split
	MinRoom      = 3 // smallest room edge, walls included
	MaxMargin    = 2
)

// splitLeaves partitions bounds into up to target leaves by recursive binary splits.
// When no leaf can be split further the target is reduced to what fits.
func splitLeaves(bounds geo.Rect, target int, rng *rand.Rand) []geo.Rect {
	if target <= 0 || bounds.Empty() {
		return nil
	}

	leaves := []geo.Rect{bounds}
	limit := target*4 + 16

	for iter := 0; len(leaves) < target && iter < limit; iter++ {
		candidates := make([]int, 0, len(leaves))
		for i, l := range leaves {
			if l.W >= 2*MinSplit || l.H >= 2*MinSplit {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			slog.Debug("structure target reduced", "requested", target, "placed", len(leaves))
			target = len(leaves)
			break
		}

		i := candidates[rng.IntN(len(candidates))]
		leaf := leaves[i]

		vertical := leaf.W >= 2*MinSplit
		if leaf.W >= 2*MinSplit && leaf.H >= 2*MinSplit {
			vertical = rng.IntN(2) == 0
		}

		var a, b geo.Rect
		if vertical {
			a, b = leaf.SplitX(middleThird(leaf.W, rng))
		} else {
			a, b = leaf.SplitY(middleThird(leaf.H, rng))
		}
		leaves[i] = a
		leaves = append(leaves, b)
	}

	return leaves
}

// middleThird picks a split offset in [d/3, d-d/3), keeping both halves at least MinSplit.
func middleThird(d int, rng *rand.Rand) int {
	third := d / 3
	at := third + rng.IntN(d-2*third)
	return min(max(at, MinSplit), d-MinSplit)
}

// fitRoom shrinks a leaf by a random margin. ok is false when no room fits.
func fitRoom(leaf geo.Rect, rng *rand.Rand) (geo.Rect, bool) {
	maxX := min((leaf.W-MinRoom)/2, MaxMargin)
	maxY := min((leaf.H-MinRoom)/2, MaxMargin)
	if maxX < 1 || maxY < 1 {
		return geo.Rect{}, false
	}
	mx := 1 + rng.IntN(maxX)
	my := 1 + rng.IntN(maxY)
	return leaf.Inset(mx, my), true
}

// stampStructures places up to target rooms into a and returns their rects.
// Walls are impassable; floors and the single door are passable.
func stampStructures(a *Area, target int, rng *rand.Rand) []geo.Rect {
	bounds := geo.Rect{X: 0, Y: 0, W: a.Width, H: a.Height}.Inset(StructurePad, StructurePad)

	var rooms []geo.Rect
	for _, leaf := range splitLeaves(bounds, target, rng) {
		room, ok := fitRoom(leaf, rng)
		if !ok {
			continue
		}
		stampRoom(a, room, rng)
		rooms = append(rooms, room)
	}
	if len(rooms) < target {
		slog.Debug("degenerate structure request", "location", a.Location, "requested", target, "placed", len(rooms))
	}
	return rooms
}

func stampRoom(a *Area, room geo.Rect, rng *rand.Rand) {
	for y := room.Y; y < room.Y+room.H; y++ {
		for x := room.X; x < room.X+room.W; x++ {
			if room.OnPerimeter(x, y) {
				a.setTile(x, y, TileBlock{Tile: TileWall})
			} else {
				a.setTile(x, y, TileBlock{Tile: TileFloor, Passable: true})
			}
		}
	}

	var doors []geo.TileCoord
	for _, t := range room.Perimeter() {
		if !room.IsCorner(int(t.X), int(t.Y)) {
			doors = append(doors, t)
		}
	}
	door := doors[rng.IntN(len(doors))]
	a.setTile(int(door.X), int(door.Y), TileBlock{Tile: TileDoor, Passable: true})
}
