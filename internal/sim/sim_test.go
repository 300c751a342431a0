package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/game/nav"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/testutil"
)

func TestScheduler_Order(t *testing.T) {
	var log []string
	s := NewScheduler(recorder{"a", &log}, recorder{"b", &log})
	s.Add(recorder{"c", &log})

	c := newTestContext(t)
	s.Step(c, 0.5)
	s.Step(c, 0.5)

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, log)
	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
	assert.Equal(t, uint64(2), c.Frame)
	assert.Equal(t, float32(0.5), c.Dt)
}

func TestLoop_StopsOnCancel(t *testing.T) {
	var log []string
	c := newTestContext(t)
	loop := NewLoop(NewScheduler(recorder{"a", &log}), c, time.Millisecond)

	err := loop.Run(testutil.ContextWithTimeout(t, 30*time.Millisecond))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotEmpty(t, log)
}

func TestTimer(t *testing.T) {
	c := newTestContext(t)
	c.Cfg.TickRate = 500 * time.Millisecond
	c.Dt = 0.25

	var timer Timer
	var ticks []bool
	for range 8 {
		timer.Run(c)
		ticks = append(ticks, c.Tick)
	}
	// fires on the frame after the accumulator reaches the rate
	assert.Equal(t, []bool{false, false, true, false, false, true, false, false}, ticks)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		pos     geo.WorldPos
		dir     geo.Direction
		wantPos geo.WorldPos
	}{
		{"east", geo.WorldPos{X: 161, Y: 20}, geo.East, geo.WorldPos{X: 8, Y: 20}},
		{"west", geo.WorldPos{X: -1, Y: 20}, geo.West, geo.WorldPos{X: 152, Y: 20}},
		{"north", geo.WorldPos{X: 20, Y: 129}, geo.North, geo.WorldPos{X: 20, Y: 8}},
		{"south", geo.WorldPos{X: 20, Y: -0.5}, geo.South, geo.WorldPos{X: 20, Y: 120}},
		{"inside", geo.WorldPos{X: 20, Y: 20}, geo.DirNone, geo.WorldPos{X: 20, Y: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.Physical{Pos: tt.pos}
			assert.Equal(t, tt.dir, Wrap(p, 160, 128))
			assert.Equal(t, tt.wantPos, p.Pos)
			dx, dy := tt.dir.Delta()
			assert.Equal(t, geo.AreaCoord{X: dx, Y: dy}, p.Area)
		})
	}
}

func TestPhysical_OccupancyAndCrossing(t *testing.T) {
	c := newTestContext(t)

	walker := model.NewPerson(geo.TileCoord{X: 2, Y: 2}, geo.AreaCoord{}, model.PersonParams{Speed: 10, HungerCapacity: 10})
	plant := model.NewPlant(geo.TileCoord{X: 2, Y: 2}, geo.AreaCoord{}, 0.1, 0)
	leaver := model.NewPerson(geo.TileCoord{X: 9, Y: 3}, geo.AreaCoord{}, model.PersonParams{Speed: 10, HungerCapacity: 10})
	leaver.Physical.Pos.X = 161
	leaver.Mover.AddGoal(model.NewGoal(model.Wander, nav.AnchorKey{X: 1, Y: 1, Area: geo.AreaCoord{X: 1}}))
	leaver.Mover.SetPath([]nav.AnchorKey{{X: 10, Y: 3}}, 10)
	require.True(t, c.Entities.Add(walker))
	require.True(t, c.Entities.Add(plant))
	require.True(t, c.Entities.Add(leaver))

	Physical{}.Run(c)

	got, ok := c.Map.OccupantAt(geo.TileCoord{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, plant.ID, got, "plant owns its cell")

	assert.Equal(t, geo.AreaCoord{X: 1}, leaver.Physical.Area)
	assert.Equal(t, float32(geo.HalfTileSize), leaver.Physical.Pos.X)
	assert.False(t, leaver.Mover.HasSteps())
}

func TestOffscreenTimer(t *testing.T) {
	c := newTestContext(t)
	here := model.NewPlant(geo.TileCoord{}, geo.AreaCoord{}, 0.1, 0)
	away := model.NewPlant(geo.TileCoord{}, geo.AreaCoord{X: 4}, 0.1, 0)
	here.Offscreen.Tick(3)
	c.Entities.Add(here)
	c.Entities.Add(away)

	OffscreenTimer{}.Run(c)
	OffscreenTimer{}.Run(c)

	assert.Zero(t, here.Offscreen.Elapsed())
	assert.InDelta(t, 0.2, away.Offscreen.Elapsed(), 1e-6)
}

func TestPlantGrowth(t *testing.T) {
	c := newTestContext(t)
	c.Dt = 0.5
	onscreen := model.NewPlant(geo.TileCoord{}, geo.AreaCoord{}, 0.5, 0)
	offscreen := model.NewPlant(geo.TileCoord{}, geo.AreaCoord{X: 1}, 0.5, 0)
	offscreen.Offscreen.Tick(1)
	c.Entities.Add(onscreen)
	c.Entities.Add(offscreen)

	PlantGrowth{}.Run(c)

	assert.Equal(t, float32(0.25), onscreen.Plant.Progress)
	assert.Equal(t, float32(0.75), offscreen.Plant.Progress)

	PlantGrowth{}.Run(c)
	assert.True(t, offscreen.Plant.Ripe())
}

func TestPlayerControl_Transition(t *testing.T) {
	c := newTestContext(t)
	c.Dt = 1
	player := model.NewPlayer(geo.TileCoord{X: 9, Y: 4}, geo.AreaCoord{}, 100)
	c.Entities.Add(player)
	c.Input = axes{AxisHorizontal: 1}
	c.Map.Rerolled = false

	PlayerControl{}.Run(c)

	assert.Equal(t, geo.AreaCoord{X: 1}, c.Map.Location)
	assert.Equal(t, geo.AreaCoord{X: 1}, player.Physical.Area)
	assert.Equal(t, float32(geo.HalfTileSize), player.Physical.Pos.X)
	assert.True(t, c.Map.Rerolled)
	assert.Equal(t, 2, c.Map.AreaCount())

	c.Input = axes{AxisHorizontal: -5}
	player.Physical.Pos.X = 50
	PlayerControl{}.Run(c)
	assert.Equal(t, geo.AreaCoord{}, c.Map.Location)
	assert.Equal(t, float32(160-geo.HalfTileSize), player.Physical.Pos.X)
	assert.Equal(t, 2, c.Map.AreaCount())
}

func TestPlayerControl_StaysInside(t *testing.T) {
	c := newTestContext(t)
	player := model.NewPlayer(geo.TileCoord{X: 4, Y: 4}, geo.AreaCoord{}, 100)
	c.Entities.Add(player)
	c.Input = axes{AxisVertical: 1}
	start := player.Physical.Pos

	PlayerControl{}.Run(c)

	assert.Equal(t, start.X, player.Physical.Pos.X)
	assert.InDelta(t, start.Y+10, player.Physical.Pos.Y, 1e-4)
	assert.Equal(t, geo.AreaCoord{}, c.Map.Location)
}
