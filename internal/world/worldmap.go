package world

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/game/nav"
	"github.com/udisondev/wildgrid/internal/model"
)

// MapOptions configures a WorldMap.
type MapOptions struct {
	// Store receives evicted areas. Nil means evicted areas are regenerated on return.
	Store AreaStore
	// MaxResident caps areas with tiles in memory. Zero keeps every area resident.
	MaxResident int
}

// RegenResult is the outcome of Regenerate, consumed by Load.
type RegenResult struct {
	Area  *Area
	Index AreaIndex
}

// WorldMap holds every generated area and exposes the active one.
// Not safe for concurrent use; it is owned by the simulation loop.
type WorldMap struct {
	Width  int
	Height int

	// Active area view.
	Tiles      []TileBlock
	Anchors    []nav.Anchor
	Structures []geo.Rect
	Entities   []model.ID // occupancy, rebuilt every tick
	Location   geo.AreaCoord
	AreaIndex  AreaIndex
	Seed       Seed
	Rerolled   bool
	Spawned    bool

	gen      *Generator
	areas    []*Area
	index    map[geo.AreaCoord]AreaIndex
	store    AreaStore
	resident *residency
}

// NewWorldMap generates the origin area and makes it active.
func NewWorldMap(ctx context.Context, gen *Generator, opts MapOptions) *WorldMap {
	cfg := gen.Config()
	m := &WorldMap{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Seed:      gen.Seed(),
		AreaIndex: NoArea,
		gen:       gen,
		index:     make(map[geo.AreaCoord]AreaIndex),
		store:     opts.Store,
		resident:  newResidency(opts.MaxResident),
	}

	origin := gen.Generate(geo.AreaCoord{}, GenerateOptions{})
	m.Load(ctx, RegenResult{Area: origin, Index: m.insert(origin)})
	return m
}

// AreaCount returns the number of generated areas.
func (m *WorldMap) AreaCount() int { return len(m.areas) }

// Area returns the area record at index i.
func (m *WorldMap) Area(i AreaIndex) *Area {
	if !i.Valid() || int(i) >= len(m.areas) {
		panic(fmt.Sprintf("world: area index %s out of range (%d areas)", i, len(m.areas)))
	}
	return m.areas[i]
}

// Active returns the active area record.
func (m *WorldMap) Active() *Area { return m.Area(m.AreaIndex) }

// IndexOf returns the index of the area at loc.
func (m *WorldMap) IndexOf(loc geo.AreaCoord) (AreaIndex, bool) {
	i, ok := m.index[loc]
	return i, ok
}

// AreaAt returns the area at loc if it is generated and resident.
func (m *WorldMap) AreaAt(loc geo.AreaCoord) (*Area, bool) {
	i, ok := m.index[loc]
	if !ok {
		return nil, false
	}
	a := m.areas[i]
	if !a.Resident() {
		return nil, false
	}
	return a, true
}

// GraphAt returns the anchor graph of the area at loc if it is resident.
func (m *WorldMap) GraphAt(loc geo.AreaCoord) (*nav.Graph, bool) {
	a, ok := m.AreaAt(loc)
	if !ok {
		return nil, false
	}
	return a.Graph, true
}

// Graph returns the anchor graph of the active area.
func (m *WorldMap) Graph() *nav.Graph { return m.Active().Graph }

// Regenerate returns the neighbour of area idx in direction d, generating and
// linking it when it does not exist yet. The active view is unchanged until Load.
func (m *WorldMap) Regenerate(ctx context.Context, idx AreaIndex, d geo.Direction) RegenResult {
	from := m.Area(idx)

	if n := from.Neighbor(d); n.Valid() {
		a := m.areas[n]
		m.rehydrate(ctx, a)
		return RegenResult{Area: a, Index: n}
	}

	a := m.gen.Generate(from.Location.Step(d), GenerateOptions{})
	return RegenResult{Area: a, Index: m.insert(a)}
}

// Load makes res the active area.
func (m *WorldMap) Load(ctx context.Context, res RegenResult) {
	if !res.Index.Valid() || int(res.Index) >= len(m.areas) || m.areas[res.Index] != res.Area {
		panic(fmt.Sprintf("world: load of area %s does not match map list", res.Index))
	}
	a := res.Area
	m.rehydrate(ctx, a)

	m.Tiles = a.Tiles
	m.Anchors = a.Graph.Anchors
	m.Structures = a.Structures
	m.Location = a.Location
	m.AreaIndex = res.Index
	m.Spawned = a.Spawned
	m.Rerolled = true
	m.Entities = make([]model.ID, m.Width*m.Height)

	m.evict(ctx)

	slog.Debug("area loaded",
		"location", a.Location,
		"index", res.Index,
		"areas", len(m.areas),
		"resident", m.resident.len())
}

// Transition moves the active view one area in direction d.
func (m *WorldMap) Transition(ctx context.Context, d geo.Direction) RegenResult {
	res := m.Regenerate(ctx, m.AreaIndex, d)
	m.Load(ctx, res)
	return res
}

// MarkSpawned records that the active area has been populated.
func (m *WorldMap) MarkSpawned() {
	m.Spawned = true
	m.Active().Spawned = true
}

// IsPassable reports whether tile t of the active area can be walked on.
func (m *WorldMap) IsPassable(t geo.TileCoord) bool {
	if !t.In(m.Width, m.Height) {
		return false
	}
	return m.Tiles[t.Index(m.Width)].Passable
}

// ClearOccupancy resets the occupancy grid.
func (m *WorldMap) ClearOccupancy() {
	clear(m.Entities)
}

// Occupy records id at tile t. Out-of-bounds tiles are ignored.
func (m *WorldMap) Occupy(t geo.TileCoord, id model.ID) {
	if !t.In(m.Width, m.Height) {
		return
	}
	m.Entities[t.Index(m.Width)] = id
}

// OccupantAt returns the entity recorded at tile t.
func (m *WorldMap) OccupantAt(t geo.TileCoord) (model.ID, bool) {
	if !t.In(m.Width, m.Height) {
		return model.ID{}, false
	}
	id := m.Entities[t.Index(m.Width)]
	return id, !id.IsNil()
}

func (m *WorldMap) insert(a *Area) AreaIndex {
	i := AreaIndex(len(m.areas))
	m.areas = append(m.areas, a)
	m.index[a.Location] = i
	m.link(i)
	m.resident.touch(i)
	return i
}

// link connects area i with every generated area around it, both ways.
func (m *WorldMap) link(i AreaIndex) {
	a := m.areas[i]
	for _, d := range geo.AllDirections {
		n, ok := m.index[a.Location.Step(d)]
		if !ok {
			continue
		}
		a.Neighbors[d.Slot()] = n
		m.areas[n].Neighbors[d.Opposite().Slot()] = i
	}
}

func (m *WorldMap) rehydrate(ctx context.Context, a *Area) {
	i := m.index[a.Location]
	m.resident.touch(i)
	if a.Resident() {
		return
	}

	if m.store != nil {
		snap, ok, err := m.store.LoadArea(ctx, a.Location)
		if err != nil {
			slog.Warn("area store load failed, regenerating", "location", a.Location, "error", err)
		}
		if ok && len(snap.Tiles) == a.Width*a.Height {
			a.Tiles = snap.Tiles
			a.Structures = snap.Structures
			a.buildGraph()
			return
		}
		if err == nil {
			slog.Warn("evicted area missing from store, regenerating", "location", a.Location)
		}
	}

	fresh := m.gen.Generate(a.Location, GenerateOptions{})
	a.Tiles = fresh.Tiles
	a.Graph = fresh.Graph
	a.Structures = fresh.Structures
}

func (m *WorldMap) evict(ctx context.Context) {
	for _, i := range m.resident.victims(m.AreaIndex) {
		a := m.areas[i]
		if m.store != nil {
			if err := m.store.SaveArea(ctx, a.Snapshot()); err != nil {
				slog.Warn("area store save failed, keeping area resident", "location", a.Location, "error", err)
				continue
			}
		}
		a.Tiles = nil
		a.Graph = nil
		m.resident.forget(i)

		slog.Debug("area evicted", "location", a.Location, "index", i)
	}
}
