package sim

import (
	"context"
	"testing"

	"github.com/udisondev/wildgrid/internal/config"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/testutil"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	cfg := config.DefaultWorld()
	cfg.StageWidth = 10
	cfg.StageHeight = 8

	m := testutil.FlatWorld(t, cfg.StageWidth, cfg.StageHeight)

	c := NewContext(context.Background(), m, model.NewRegistry(), &cfg, 1)
	c.Dt = 0.1
	return c
}

type axes map[string]float32

func (a axes) Axis(name string) float32 { return a[name] }

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Name() string    { return r.name }
func (r recorder) Run(c *Context) { *r.log = append(*r.log, r.name) }
