package ai

import (
	"context"
	"testing"

	"github.com/udisondev/wildgrid/internal/config"
	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/sim"
	"github.com/udisondev/wildgrid/internal/testutil"
)

const (
	testW = 10
	testH = 8
)

// newTestContext builds a 10x8 world without structures; every tile is passable.
func newTestContext(t *testing.T) *sim.Context {
	t.Helper()
	cfg := config.DefaultWorld()
	cfg.StageWidth = testW
	cfg.StageHeight = testH

	m := testutil.FlatWorld(t, testW, testH)

	c := sim.NewContext(context.Background(), m, model.NewRegistry(), &cfg, 7)
	c.Dt = 0.1
	return c
}

func addPerson(t *testing.T, c *sim.Context, tile geo.TileCoord, area geo.AreaCoord, speed float32) *model.Entity {
	t.Helper()
	e := model.NewPerson(tile, area, model.PersonParams{Speed: speed, HungerCapacity: 100, HungerRate: 0.1})
	if !c.Entities.Add(e) {
		t.Fatalf("adding person %v", e.ID)
	}
	return e
}

func addPlant(t *testing.T, c *sim.Context, tile geo.TileCoord, progress float32) *model.Entity {
	t.Helper()
	e := model.NewPlant(tile, c.Map.Location, 0.1, progress)
	if !c.Entities.Add(e) {
		t.Fatalf("adding plant %v", e.ID)
	}
	return e
}

// movement is the rudder/move/physical slice of the frame.
func movement() *sim.Scheduler {
	return sim.NewScheduler(Rudder{}, Move{}, sim.Physical{})
}
