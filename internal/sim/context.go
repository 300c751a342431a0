// Package sim runs the simulation: an explicit per-tick Context passed through
// an ordered list of systems.
package sim

import (
	"context"
	"math/rand/v2"

	"github.com/udisondev/wildgrid/internal/config"
	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/world"
)

// Input exposes player controls as named axes in [-1, 1].
type Input interface {
	Axis(name string) float32
}

// Axis names read by PlayerControl.
const (
	AxisHorizontal = "horizontal_mv"
	AxisVertical   = "vertical_mv"
)

// NoInput is an Input with every axis at rest.
type NoInput struct{}

func (NoInput) Axis(string) float32 { return 0 }

// Context is the shared state handed to every system on every frame.
type Context struct {
	Ctx      context.Context
	Map      *world.WorldMap
	Entities *model.Registry
	Cfg      *config.World
	Rand     *rand.Rand
	Input    Input

	// Dt is the frame duration in seconds.
	Dt float32
	// Tick is set by the Timer system on frames where the slow timer fired.
	Tick bool
	// Frame counts completed frames.
	Frame uint64
}

// NewContext builds a context with a PCG source seeded from seed.
func NewContext(ctx context.Context, m *world.WorldMap, reg *model.Registry, cfg *config.World, seed uint64) *Context {
	return &Context{
		Ctx:      ctx,
		Map:      m,
		Entities: reg,
		Cfg:      cfg,
		Rand:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Input:    NoInput{},
	}
}

// StageWidth returns the stage width in world units.
func (c *Context) StageWidth() float32 { return c.Cfg.PixelWidth(geo.TileSize) }

// StageHeight returns the stage height in world units.
func (c *Context) StageHeight() float32 { return c.Cfg.PixelHeight(geo.TileSize) }

// InActiveArea reports whether e stands in the active area.
func (c *Context) InActiveArea(e *model.Entity) bool {
	return e.Physical != nil && e.Physical.Area == c.Map.Location
}
