package ai

import (
	"log/slog"

	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/game/nav"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/sim"
)

// CompletionFraction estimates how much of a path of the given cost an agent
// covers in elapsed seconds. Costs use 10 per tile. The result saturates at 1.
func CompletionFraction(cost int, speed, elapsed float32, tileSize int) float32 {
	if cost <= 0 {
		return 0
	}
	length := float32(cost*tileSize) / nav.CostOrthogonal
	return min(speed*elapsed/length, 1)
}

// Catchup advances agents that spent time offscreen along their plans in one jump.
type Catchup struct{}

func (Catchup) Name() string { return "catchup" }

func (Catchup) Run(c *sim.Context) {
	wait := float32(c.Cfg.UnknownPathWait.Seconds())

	for _, e := range c.Entities.All() {
		mv, off, p := e.Mover, e.Offscreen, e.Physical
		if mv == nil || off == nil || p == nil {
			continue
		}
		elapsed := off.Elapsed()
		if elapsed <= 0 {
			continue
		}

		var f float32
		if mv.PathCost() > 0 {
			f = CompletionFraction(mv.PathCost(), mv.Speed(), elapsed, geo.TileSize)
		} else if wait > 0 {
			f = min(elapsed/wait, 1)
		}

		switch {
		case f >= 1:
			if goal, ok := mv.Goal(); ok {
				if goal.Target.Area != p.Area {
					d := nav.PortalToward(p.Area, goal.Target.Area)
					enterArea(p, d, c.StageWidth(), c.StageHeight())
				} else {
					p.SnapTo(passableNear(c, p.Area, goal.Target.Tile()))
					complete(c, e)
				}
				mv.ClearSteps()

				if IsDebugEnabled() {
					slog.Debug("offscreen catch-up", "agent", e.ID, "area", p.Area, "elapsed", elapsed)
				}
			}
			off.Reset()

		case f > 0 && c.InActiveArea(e):
			if path := mv.Path(); len(path) > 0 {
				i := min(int(f*float32(len(path))), len(path)-1)
				p.SnapTo(path[i].Tile().Clamp(c.Map.Width, c.Map.Height))
			}
			off.Reset()
		}
	}
}

// enterArea moves p one area in direction d, placing it just inside the edge it came through.
func enterArea(p *model.Physical, d geo.Direction, stageW, stageH float32) {
	p.Shift(d)
	switch d {
	case geo.East:
		p.Pos.X = geo.HalfTileSize
	case geo.West:
		p.Pos.X = stageW - geo.HalfTileSize
	case geo.North:
		p.Pos.Y = geo.HalfTileSize
	case geo.South:
		p.Pos.Y = stageH - geo.HalfTileSize
	}
}
