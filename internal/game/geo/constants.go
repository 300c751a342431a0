package geo

// Tile geometry.
const (
	TileSize     = 16 // world units per tile edge
	HalfTileSize = TileSize / 2
)

// Direction identifies one of the eight area neighbours.
// North is +Y and east is +X.
type Direction uint8

const (
	DirNone Direction = iota
	North
	East
	South
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// DirectionCount is the number of real directions (DirNone excluded).
const DirectionCount = 8

// AllDirections lists every direction in neighbour-slot order.
var AllDirections = [DirectionCount]Direction{
	North, East, South, West, NorthEast, NorthWest, SouthEast, SouthWest,
}

var directionDeltas = [...][2]int32{
	DirNone:   {0, 0},
	North:     {0, 1},
	East:      {1, 0},
	South:     {0, -1},
	West:      {-1, 0},
	NorthEast: {1, 1},
	NorthWest: {-1, 1},
	SouthEast: {1, -1},
	SouthWest: {-1, -1},
}

// Delta returns the unit offset of the direction.
func (d Direction) Delta() (dx, dy int32) {
	if int(d) >= len(directionDeltas) {
		return 0, 0
	}
	v := directionDeltas[d]
	return v[0], v[1]
}

// Slot returns the neighbour array slot for the direction (0..7), or -1 for DirNone.
func (d Direction) Slot() int {
	if d == DirNone || d > SouthWest {
		return -1
	}
	return int(d) - 1
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	default:
		return DirNone
	}
}

// IsDiagonal reports whether both delta components are non-zero.
func (d Direction) IsDiagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

// String returns human-readable direction name
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	default:
		return "NONE"
	}
}

// DirectionOf returns the direction matching the sign of (dx, dy).
func DirectionOf(dx, dy int32) Direction {
	sx, sy := sign(dx), sign(dy)
	for _, d := range AllDirections {
		ddx, ddy := d.Delta()
		if ddx == sx && ddy == sy {
			return d
		}
	}
	return DirNone
}

func sign(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
