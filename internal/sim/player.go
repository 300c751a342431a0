package sim

import (
	"log/slog"

	"github.com/udisondev/wildgrid/internal/game/geo"
)

// PlayerControl moves the player from Input and switches the active area when
// the player crosses a stage edge.
type PlayerControl struct{}

func (PlayerControl) Name() string { return "player" }

func (PlayerControl) Run(c *Context) {
	e, ok := c.Entities.Player()
	if !ok || e.Physical == nil {
		return
	}

	step := e.Player.Speed * c.Dt
	e.Physical.Pos.X += step * clampAxis(c.Input.Axis(AxisHorizontal))
	e.Physical.Pos.Y += step * clampAxis(c.Input.Axis(AxisVertical))

	d := Wrap(e.Physical, c.StageWidth(), c.StageHeight())
	if d == geo.DirNone {
		return
	}

	res := c.Map.Regenerate(c.Ctx, c.Map.AreaIndex, d)
	c.Map.Load(c.Ctx, res)
	e.Physical.Area = c.Map.Location

	slog.Info("area transition",
		"direction", d,
		"location", c.Map.Location,
		"areas", c.Map.AreaCount())
}

func clampAxis(v float32) float32 {
	return min(max(v, -1), 1)
}
