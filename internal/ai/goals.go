package ai

import (
	"log/slog"

	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/game/nav"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/sim"
)

// Idle gives wandering goals to idle agents of the active area on timer ticks.
type Idle struct{}

func (Idle) Name() string { return "idle" }

func (Idle) Run(c *sim.Context) {
	if !c.Tick {
		return
	}
	m := c.Map
	for _, e := range c.Entities.All() {
		if e.Mover == nil || !c.InActiveArea(e) {
			continue
		}
		if _, busy := e.Mover.Goal(); busy {
			continue
		}
		tile := geo.TileCoord{X: int32(c.Rand.IntN(m.Width)), Y: int32(c.Rand.IntN(m.Height))}
		e.Mover.AddGoal(model.NewGoal(model.Wander, m.Anchors[nav.PortalCount+tile.Index(m.Width)].Key))
	}
}

// HungerDecay drains hunger meters. Agents that have been offscreen only briefly
// are likely fed meanwhile.
type HungerDecay struct{}

func (HungerDecay) Name() string { return "hunger" }

func (HungerDecay) Run(c *sim.Context) {
	for _, e := range c.Entities.All() {
		h := e.Hunger
		if h == nil {
			continue
		}
		if h.Current() > 0 {
			h.Add(-h.Rate() * c.Dt)
		}
		if e.Offscreen == nil || e.Offscreen.Elapsed() <= 0 {
			continue
		}
		chance := ReliefChance(e.Offscreen.Elapsed(), c.Cfg.OffscreenHungerRelief)
		if c.Rand.Float32() < chance {
			h.Refill()
		}
	}
}

// ReliefChance is the probability an offscreen agent is refilled this frame.
func ReliefChance(offscreen, factor float32) float32 {
	return min(max(1-offscreen*factor, 0), 1)
}

// MealGoals sends hungry agents of the active area to the nearest ripe plant,
// or to search a neighbouring area when none is in sight.
type MealGoals struct{}

func (MealGoals) Name() string { return "meal_goals" }

func (MealGoals) Run(c *sim.Context) {
	for _, e := range c.Entities.All() {
		if e.Hunger == nil || e.Mover == nil || !e.Hunger.Hungry() {
			continue
		}
		if !c.InActiveArea(e) || e.Mover.HasGoalKind(model.MealGoal) {
			continue
		}

		if plant, tile, ok := FindMeal(c, e.Physical.Tile()); ok {
			e.Hunger.Meal = plant.ID
			e.Mover.AddGoal(model.NewGoal(model.MealGoal, nav.KeyAt(tile, c.Map.Location)))
			if IsDebugEnabled() {
				slog.Debug("meal goal", "agent", e.ID, "plant", plant.ID, "tile", tile)
			}
			continue
		}

		if e.Mover.HasGoalKind(model.MealSearch) {
			continue
		}
		e.Mover.AddGoal(model.NewGoal(model.MealSearch, searchTarget(c)))
	}
}

// FindMeal scans square rings of growing radius around origin for a ripe plant.
func FindMeal(c *sim.Context, origin geo.TileCoord) (*model.Entity, geo.TileCoord, bool) {
	m := c.Map
	limit := int32(max(m.Width, m.Height))
	var (
		found *model.Entity
		at    geo.TileCoord
	)
	for r := int32(1); r < limit && found == nil; r++ {
		geo.Ring(origin, r, func(t geo.TileCoord) bool {
			id, ok := m.OccupantAt(t)
			if !ok || id.Kind != model.KindPlant {
				return true
			}
			plant, ok := c.Entities.Get(id)
			if ok && plant.Plant != nil && plant.Plant.Ripe() {
				found, at = plant, t
				return false
			}
			return true
		})
	}
	return found, at, found != nil
}

// searchTarget picks a random tile in a random area around the active one.
// When that area is resident the tile is moved to the nearest passable one.
func searchTarget(c *sim.Context) nav.AnchorKey {
	dx, dy := c.Rand.IntN(3)-1, c.Rand.IntN(3)-1
	if dx == 0 && dy == 0 {
		dx, dy = c.Rand.IntN(3)-1, c.Rand.IntN(3)-1
	}
	area := c.Map.Location.Add(int32(dx), int32(dy))
	tile := geo.TileCoord{X: int32(c.Rand.IntN(c.Map.Width)), Y: int32(c.Rand.IntN(c.Map.Height))}
	return nav.KeyAt(passableNear(c, area, tile), area)
}

// passableNear returns the passable tile closest to t in area, or t itself
// when the area is not resident or has no passable tile.
func passableNear(c *sim.Context, area geo.AreaCoord, t geo.TileCoord) geo.TileCoord {
	a, ok := c.Map.AreaAt(area)
	if !ok {
		return t
	}
	if near, ok := a.NearestPassable(t); ok {
		return near
	}
	return t
}

// complete pops the current goal of e and lets it eat when the goal was a meal.
func complete(c *sim.Context, e *model.Entity) {
	g, ok := e.Mover.PopGoal()
	if !ok || g.Kind != model.MealGoal || e.Hunger == nil {
		return
	}
	meal := e.Hunger.Meal
	e.Hunger.Meal = model.ID{}

	plant, ok := c.Entities.Get(meal)
	if !ok || plant.Plant == nil || !plant.Plant.Ripe() {
		return
	}
	plant.Plant.Harvest()
	e.Hunger.Refill()

	if IsDebugEnabled() {
		slog.Debug("meal eaten", "agent", e.ID, "plant", plant.ID)
	}
}
