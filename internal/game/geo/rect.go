package geo

// Rect is an axis-aligned tile rectangle (x, y, w, h).
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rect has no tiles.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether tile (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// OnPerimeter reports whether (x, y) is an edge tile of r.
func (r Rect) OnPerimeter(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.X || y == r.Y || x == r.X+r.W-1 || y == r.Y+r.H-1
}

// IsCorner reports whether (x, y) is one of the four corner tiles.
func (r Rect) IsCorner(x, y int) bool {
	return (x == r.X || x == r.X+r.W-1) && (y == r.Y || y == r.Y+r.H-1)
}

// Inset shrinks r by dx on the left/right and dy on the top/bottom.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// SplitX cuts r vertically at offset at (0 < at < W).
func (r Rect) SplitX(at int) (Rect, Rect) {
	return Rect{X: r.X, Y: r.Y, W: at, H: r.H}, Rect{X: r.X + at, Y: r.Y, W: r.W - at, H: r.H}
}

// SplitY cuts r horizontally at offset at (0 < at < H).
func (r Rect) SplitY(at int) (Rect, Rect) {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: at}, Rect{X: r.X, Y: r.Y + at, W: r.W, H: r.H - at}
}

// Perimeter returns the edge tiles of r, clockwise from the bottom-left corner.
func (r Rect) Perimeter() []TileCoord {
	if r.Empty() {
		return nil
	}
	out := make([]TileCoord, 0, 2*(r.W+r.H))
	for x := r.X; x < r.X+r.W; x++ {
		out = append(out, TileCoord{X: int32(x), Y: int32(r.Y)})
	}
	for y := r.Y + 1; y < r.Y+r.H; y++ {
		out = append(out, TileCoord{X: int32(r.X + r.W - 1), Y: int32(y)})
	}
	if r.H > 1 {
		for x := r.X + r.W - 2; x >= r.X; x-- {
			out = append(out, TileCoord{X: int32(x), Y: int32(r.Y + r.H - 1)})
		}
	}
	if r.W > 1 {
		for y := r.Y + r.H - 2; y > r.Y; y-- {
			out = append(out, TileCoord{X: int32(r.X), Y: int32(y)})
		}
	}
	return out
}
