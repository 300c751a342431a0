package world

import "fmt"

// Tile is a tileset index. Terrain tiles come first, grouped by biome,
// followed by structure tiles.
type Tile uint16

// Terrain tileset layout.
const (
	TilesetSize = 4 // terrain bands per biome
	BiomeCount  = 3
)

// Biomes.
const (
	BiomeMeadow = iota
	BiomeForest
	BiomeSteppe
)

// Structure tiles.
const (
	TileWall Tile = BiomeCount*TilesetSize + iota
	TileFloor
	TileDoor
)

// TerrainTile returns the terrain tile for a biome and value band.
func TerrainTile(biome, band int) Tile {
	return Tile(biome*TilesetSize + band)
}

// IsTerrain reports whether t is a terrain tile.
func (t Tile) IsTerrain() bool {
	return t < TileWall
}

// Biome returns the biome of a terrain tile, or -1.
func (t Tile) Biome() int {
	if !t.IsTerrain() {
		return -1
	}
	return int(t) / TilesetSize
}

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDoor:
		return "door"
	}
	if t.IsTerrain() {
		return fmt.Sprintf("terrain(%d/%d)", t.Biome(), int(t)%TilesetSize)
	}
	return fmt.Sprintf("tile(%d)", uint16(t))
}

// TileBlock is one cell of an area.
type TileBlock struct {
	Tile     Tile
	Passable bool
}
