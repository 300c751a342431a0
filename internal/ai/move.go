package ai

import (
	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/game/nav"
	"github.com/udisondev/wildgrid/internal/sim"
)

// Move advances agents of the active area along their steps.
// Each axis moves up to speed*dt independently, so diagonal steps are faster.
type Move struct{}

func (Move) Name() string { return "move" }

func (Move) Run(c *sim.Context) {
	for _, e := range c.Entities.All() {
		mv := e.Mover
		if mv == nil || !c.InActiveArea(e) {
			continue
		}
		p := e.Physical

		step, ok := mv.Step()
		if !ok {
			goal, ok := mv.Goal()
			if ok && goal.Target.Area == p.Area && goal.Target.Tile() == p.Tile() {
				complete(c, e)
			}
			continue
		}

		target := stepTarget(step, p.Pos, c.Map.Width, c.Map.Height)
		dir := geo.DirectionOf(sign(target.X-p.Pos.X), sign(target.Y-p.Pos.Y))
		limit := mv.Speed() * c.Dt
		p.Pos.X = approach(p.Pos.X, target.X, limit)
		p.Pos.Y = approach(p.Pos.Y, target.Y, limit)

		if p.Pos == target {
			mv.PopStep(dir)
		}
	}
}

// stepTarget returns where an agent at pos heads for step. Portal steps lead
// straight out across their edge.
func stepTarget(step nav.AnchorKey, pos geo.WorldPos, w, h int) geo.WorldPos {
	target := step.Center()
	switch {
	case step.X < 0 || int(step.X) >= w:
		target.Y = pos.Y
	case step.Y < 0 || int(step.Y) >= h:
		target.X = pos.X
	}
	return target
}

// approach moves from toward to by at most limit, landing exactly on to when in reach.
func approach(from, to, limit float32) float32 {
	switch d := to - from; {
	case d > limit:
		return from + limit
	case d < -limit:
		return from - limit
	default:
		return to
	}
}

func sign(v float32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
