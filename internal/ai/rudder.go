package ai

import (
	"log/slog"

	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/game/nav"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/sim"
)

// Rudder plans a path for agents that have a goal but no steps.
// Goals in another area are approached through the portal toward that area.
type Rudder struct{}

func (Rudder) Name() string { return "rudder" }

func (Rudder) Run(c *sim.Context) {
	for _, e := range c.Entities.All() {
		mv := e.Mover
		if mv == nil || e.Physical == nil || mv.HasSteps() {
			continue
		}
		goal, ok := mv.Goal()
		if !ok {
			continue
		}

		var (
			path []nav.AnchorKey
			cost int
			err  error
		)
		if mv.Mode() == model.NavFreeRoam && c.InActiveArea(e) {
			path, cost, err = planFreeRoam(c, e.Physical, goal)
		} else {
			graph, known := c.Map.GraphAt(e.Physical.Area)
			if !known {
				continue
			}
			path, cost, err = PlanAnchors(graph, e.Physical, goal)
		}

		if err != nil {
			if c.InActiveArea(e) {
				mv.DropGoal()
				if IsDebugEnabled() {
					slog.Debug("goal dropped", "agent", e.ID, "goal", goal.Target, "error", err)
				}
			}
			continue
		}

		mv.SetPath(path, cost)
		if IsDebugEnabled() {
			slog.Debug("path planned", "agent", e.ID, "goal", goal.Target, "steps", len(path), "cost", cost)
		}
	}
}

// PlanAnchors finds a path on the agent's area graph toward goal, or toward the
// portal leading to the goal area.
func PlanAnchors(g *nav.Graph, p *model.Physical, goal model.Goal) ([]nav.AnchorKey, int, error) {
	origin := nav.KeyAt(p.Tile().Clamp(g.Width, g.Height), p.Area)

	target := goal.Target
	if target.Area != p.Area {
		target = g.Portal(nav.PortalToward(p.Area, target.Area)).Key
	}
	return g.FindPath(origin, target)
}

func planFreeRoam(c *sim.Context, p *model.Physical, goal model.Goal) ([]nav.AnchorKey, int, error) {
	m := c.Map
	finder := nav.NewGridFinder(m.Width, m.Height, m.IsPassable)
	origin := p.Tile().Clamp(m.Width, m.Height)

	target := goal.Target.Tile()
	var portal *nav.AnchorKey
	if goal.Target.Area != p.Area {
		d := nav.PortalToward(p.Area, goal.Target.Area)
		edge, ok := edgeTile(m.Width, m.Height, origin, d, m.IsPassable)
		if !ok {
			return nil, 0, nav.ErrNoPath
		}
		target = edge
		k := nav.PortalKey(d, p.Area, m.Width, m.Height)
		portal = &k
	}

	tiles, steps, err := finder.FindPath(origin, target)
	if err != nil {
		return nil, 0, err
	}

	path := make([]nav.AnchorKey, 0, len(tiles)+1)
	for _, t := range tiles {
		path = append(path, nav.KeyAt(t, p.Area))
	}
	cost := steps * nav.CostOrthogonal
	if portal != nil {
		path = append(path, *portal)
		cost += nav.CostOrthogonal
	}
	return path, cost, nil
}

// edgeTile returns the passable tile on the edge facing d closest to origin.
func edgeTile(w, h int, origin geo.TileCoord, d geo.Direction, passable func(geo.TileCoord) bool) (geo.TileCoord, bool) {
	var at func(i int32) geo.TileCoord
	var along, n int32
	switch d {
	case geo.East:
		at, along, n = func(i int32) geo.TileCoord { return geo.TileCoord{X: int32(w - 1), Y: i} }, origin.Y, int32(h)
	case geo.West:
		at, along, n = func(i int32) geo.TileCoord { return geo.TileCoord{X: 0, Y: i} }, origin.Y, int32(h)
	case geo.North:
		at, along, n = func(i int32) geo.TileCoord { return geo.TileCoord{X: i, Y: int32(h - 1)} }, origin.X, int32(w)
	case geo.South:
		at, along, n = func(i int32) geo.TileCoord { return geo.TileCoord{X: i, Y: 0} }, origin.X, int32(w)
	default:
		return geo.TileCoord{}, false
	}

	for off := int32(0); off < n; off++ {
		for _, i := range [2]int32{along - off, along + off} {
			if i < 0 || i >= n {
				continue
			}
			if t := at(i); passable(t) {
				return t, true
			}
		}
	}
	return geo.TileCoord{}, false
}
