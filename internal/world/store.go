package world

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/udisondev/wildgrid/internal/game/geo"
)

// AreaSnapshot is the persisted form of an evicted area.
type AreaSnapshot struct {
	Location   geo.AreaCoord
	Width      int
	Height     int
	Tiles      []TileBlock
	Structures []geo.Rect
	Spawned    bool
}

// Snapshot captures the resident data of a.
func (a *Area) Snapshot() AreaSnapshot {
	return AreaSnapshot{
		Location:   a.Location,
		Width:      a.Width,
		Height:     a.Height,
		Tiles:      a.Tiles,
		Structures: a.Structures,
		Spawned:    a.Spawned,
	}
}

// AreaStore keeps tile data of areas released from memory.
type AreaStore interface {
	SaveArea(ctx context.Context, snap AreaSnapshot) error
	// LoadArea returns ok=false when nothing is stored for loc.
	LoadArea(ctx context.Context, loc geo.AreaCoord) (AreaSnapshot, bool, error)
}

const passableBit = 1 << 15

// PackTiles encodes tiles as little-endian uint16 values, passability in the high bit.
func PackTiles(tiles []TileBlock) []byte {
	out := make([]byte, 2*len(tiles))
	for i, t := range tiles {
		v := uint16(t.Tile) &^ passableBit
		if t.Passable {
			v |= passableBit
		}
		binary.LittleEndian.PutUint16(out[2*i:], v)
	}
	return out
}

// UnpackTiles decodes the output of PackTiles.
func UnpackTiles(b []byte) ([]TileBlock, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("tile data has odd length %d", len(b))
	}
	tiles := make([]TileBlock, len(b)/2)
	for i := range tiles {
		v := binary.LittleEndian.Uint16(b[2*i:])
		tiles[i] = TileBlock{Tile: Tile(v &^ passableBit), Passable: v&passableBit != 0}
	}
	return tiles, nil
}

// MemoryStore is an in-process AreaStore.
type MemoryStore struct {
	mu    sync.RWMutex
	areas map[geo.AreaCoord]AreaSnapshot
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{areas: make(map[geo.AreaCoord]AreaSnapshot)}
}

func (s *MemoryStore) SaveArea(_ context.Context, snap AreaSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.areas[snap.Location] = snap
	return nil
}

func (s *MemoryStore) LoadArea(_ context.Context, loc geo.AreaCoord) (AreaSnapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.areas[loc]
	return snap, ok, nil
}

// Len returns the number of stored areas.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.areas)
}
