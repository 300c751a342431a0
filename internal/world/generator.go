package world

import (
	"log/slog"
	"math"

	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/noise"
)

// GeneratorConfig controls area generation.
type GeneratorConfig struct {
	Width  int
	Height int

	TerrainZoom   float64
	AdjustZoom    float64
	AdjustWeight  float64
	BiomeZoom     float64
	StructureZoom float64

	Biomes        bool
	MaxStructures int

	// Noise builds the provider from Seed.Noise. Defaults to OpenSimplex.
	Noise noise.Factory
}

// DefaultGeneratorConfig returns generation settings for a width×height area.
func DefaultGeneratorConfig(width, height int) GeneratorConfig {
	return GeneratorConfig{
		Width:         width,
		Height:        height,
		TerrainZoom:   24,
		AdjustZoom:    6,
		AdjustWeight:  0.25,
		BiomeZoom:     4,
		StructureZoom: 3,
		Biomes:        true,
		MaxStructures: 4,
	}
}

// GenerateOptions overrides per-call generation parameters.
type GenerateOptions struct {
	// Structures forces the structure count when non-nil.
	Structures *int
}

// Generator produces areas deterministically from a Seed.
type Generator struct {
	cfg  GeneratorConfig
	seed Seed

	terrain   noise.Field
	adjust    noise.Field
	biome     noise.Field
	structure noise.Field
}

// NewGenerator creates a generator for seed.
func NewGenerator(cfg GeneratorConfig, seed Seed) *Generator {
	factory := cfg.Noise
	if factory == nil {
		factory = noise.NewSimplex
	}
	src := factory(seed.Noise)

	return &Generator{
		cfg:       cfg,
		seed:      seed,
		terrain:   noise.Field{Source: src, OffsetX: seed.TerrainX, OffsetY: seed.TerrainY, Zoom: cfg.TerrainZoom},
		adjust:    noise.Field{Source: src, OffsetX: seed.AdjustX, OffsetY: seed.AdjustY, Zoom: cfg.AdjustZoom},
		biome:     noise.Field{Source: src, OffsetX: seed.BiomeX, OffsetY: seed.BiomeY, Zoom: cfg.BiomeZoom},
		structure: noise.Field{Source: src, OffsetX: seed.StructureX, OffsetY: seed.StructureY, Zoom: cfg.StructureZoom},
	}
}

// Seed returns the generator seed.
func (g *Generator) Seed() Seed { return g.seed }

// Config returns the generator settings.
func (g *Generator) Config() GeneratorConfig { return g.cfg }

// Generate builds the area at loc: terrain, structures and anchor graph.
// Neighbour links are left empty; WorldMap fills them on insertion.
func (g *Generator) Generate(loc geo.AreaCoord, opts GenerateOptions) *Area {
	a := g.Terrain(loc)

	target := g.structureCount(loc)
	if opts.Structures != nil {
		target = *opts.Structures
	}
	a.Structures = stampStructures(a, target, g.seed.StructureRand(loc))

	a.buildGraph()

	slog.Debug("area generated",
		"location", loc,
		"structures", len(a.Structures),
		"requested", target)

	return a
}

// Terrain builds the area tiles from noise only, without structures or graph.
func (g *Generator) Terrain(loc geo.AreaCoord) *Area {
	w, h := g.cfg.Width, g.cfg.Height
	a := newArea(loc, w, h)

	biome := BiomeMeadow
	if g.cfg.Biomes {
		v := noise.Normalize(g.biome.At(float64(loc.X), float64(loc.Y)))
		biome = noise.Bucket(v, BiomeCount)
	}

	baseX := float64(loc.X) * float64(w)
	baseY := float64(loc.Y) * float64(h)

	for y := range h {
		for x := range w {
			wx, wy := baseX+float64(x), baseY+float64(y)
			v := g.terrain.At(wx, wy) + g.cfg.AdjustWeight*g.adjust.At(wx, wy)
			v = noise.Unit(noise.Ease(noise.Unit(noise.Normalize(v))))

			a.setTile(x, y, TileBlock{
				Tile:     TerrainTile(biome, noise.Bucket(v, TilesetSize)),
				Passable: true,
			})
		}
	}

	return a
}

func (g *Generator) structureCount(loc geo.AreaCoord) int {
	if g.cfg.MaxStructures <= 0 {
		return 0
	}
	v := noise.Normalize(g.structure.At(float64(loc.X), float64(loc.Y)))
	return int(math.Floor(noise.Unit(v) * float64(g.cfg.MaxStructures+1)))
}
