package testutil

import (
	"context"
	"testing"

	"github.com/udisondev/wildgrid/internal/world"
)

// FlatWorld returns a map of width x height areas generated from the zero seed
// without structures, so every tile is passable.
func FlatWorld(t testing.TB, width, height int) *world.WorldMap {
	t.Helper()

	cfg := world.DefaultGeneratorConfig(width, height)
	cfg.MaxStructures = 0
	m := world.NewWorldMap(context.Background(), world.NewGenerator(cfg, world.Seed{}), world.MapOptions{})
	if len(m.Structures) != 0 {
		t.Fatalf("flat world has %d structures", len(m.Structures))
	}
	return m
}
