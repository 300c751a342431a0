package spawn

import (
	"log/slog"

	"github.com/udisondev/wildgrid/internal/config"
	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/sim"
)

const (
	// AdjacentChance is the probability a structure's resident starts in a neighbouring area.
	AdjacentChance = 0.2
	// MaxPlacementTries bounds the search for a passable tile.
	MaxPlacementTries = 10
)

// Spawner populates freshly loaded areas with plants and persons.
// The first populated area also receives the configured starting crowd.
type Spawner struct {
	initial int
}

// NewSpawner creates a spawner placing persons initial persons into the first area.
func NewSpawner(initial int) *Spawner {
	return &Spawner{initial: initial}
}

func (s *Spawner) Name() string { return "spawn" }

func (s *Spawner) Run(c *sim.Context) {
	m := c.Map
	if m.Spawned {
		return
	}

	plants := s.spawnPlants(c)
	persons := s.spawnResidents(c)
	if s.initial > 0 {
		persons += s.spawnCrowd(c, s.initial)
		s.initial = 0
	}
	m.MarkSpawned()

	slog.Info("area populated", "area", m.Location, "plants", plants, "persons", persons)
}

func (s *Spawner) spawnPlants(c *sim.Context) int {
	cfg := c.Cfg
	n := cfg.PlantLower
	if cfg.PlantUpper > cfg.PlantLower {
		n += c.Rand.IntN(cfg.PlantUpper - cfg.PlantLower)
	}

	full := geo.Rect{W: c.Map.Width, H: c.Map.Height}
	placed := 0
	for range n {
		tile, ok := passableIn(c, full)
		if !ok {
			continue
		}
		if c.Entities.Add(model.NewPlant(tile, c.Map.Location, cfg.PlantRate, c.Rand.Float32())) {
			placed++
		}
	}
	return placed
}

// spawnResidents places one person per structure, inside its walls.
func (s *Spawner) spawnResidents(c *sim.Context) int {
	m := c.Map
	placed := 0
	for _, r := range m.Structures {
		area := m.Location
		var (
			tile geo.TileCoord
			ok   bool
		)
		if c.Rand.Float32() < AdjacentChance {
			d := geo.AllDirections[c.Rand.IntN(len(geo.AllDirections))]
			area = area.Step(d)
			tile, ok = randomIn(c, geo.Rect{W: m.Width, H: m.Height}), true
			// passability of an area not yet generated is unknown
			if a, resident := m.AreaAt(area); resident {
				tile, ok = a.NearestPassable(tile)
			}
		} else {
			tile, ok = passableIn(c, r.Inset(1, 1))
		}
		if !ok {
			slog.Debug("no free tile for resident", "structure", r)
			continue
		}
		if c.Entities.Add(model.NewPerson(tile, area, personParams(c.Cfg))) {
			placed++
		}
	}
	return placed
}

func (s *Spawner) spawnCrowd(c *sim.Context, n int) int {
	full := geo.Rect{W: c.Map.Width, H: c.Map.Height}
	placed := 0
	for range n {
		tile, ok := passableIn(c, full)
		if !ok {
			continue
		}
		if c.Entities.Add(model.NewPerson(tile, c.Map.Location, personParams(c.Cfg))) {
			placed++
		}
	}
	return placed
}

// passableIn picks a random passable tile of r in the active area.
func passableIn(c *sim.Context, r geo.Rect) (geo.TileCoord, bool) {
	if r.Empty() {
		return geo.TileCoord{}, false
	}
	for range MaxPlacementTries {
		t := randomIn(c, r)
		if c.Map.IsPassable(t) {
			return t, true
		}
	}
	return geo.TileCoord{}, false
}

func randomIn(c *sim.Context, r geo.Rect) geo.TileCoord {
	return geo.TileCoord{
		X: int32(r.X + c.Rand.IntN(r.W)),
		Y: int32(r.Y + c.Rand.IntN(r.H)),
	}
}

func personParams(cfg *config.World) model.PersonParams {
	mode := model.NavAnchors
	if cfg.NavigationMode == config.NavFreeRoam {
		mode = model.NavFreeRoam
	}
	return model.PersonParams{
		Speed:          cfg.BaseSpeed,
		HungerCapacity: cfg.HungerCapacity,
		HungerRate:     cfg.HungerRate,
		Mode:           mode,
	}
}
