package observer

import (
	"encoding/json"
	"log/slog"

	"github.com/udisondev/wildgrid/internal/sim"
)

// Publisher is the simulation system broadcasting snapshots of the active area.
type Publisher struct {
	hub   *Hub
	every uint64
}

// NewPublisher publishes every n-th frame; n <= 1 publishes every frame.
func NewPublisher(hub *Hub, n int) *Publisher {
	return &Publisher{hub: hub, every: uint64(max(n, 1))}
}

func (p *Publisher) Name() string { return "observer" }

func (p *Publisher) Run(c *sim.Context) {
	m := c.Map
	full := m.Rerolled
	if !full && c.Frame%p.every != 0 {
		return
	}
	m.Rerolled = false

	snap := Build(c, full)
	msg, err := json.Marshal(snap)
	if err != nil {
		slog.Error("encoding snapshot", "error", err)
		return
	}
	if full {
		p.hub.SetBaseline(msg)
	}
	p.hub.Broadcast(msg)
}

// Build assembles the snapshot of the active area. Tiles and structures are
// included when withTiles is set.
func Build(c *sim.Context, withTiles bool) Snapshot {
	m := c.Map
	snap := Snapshot{
		Type:     TypeSnapshot,
		Frame:    c.Frame,
		Location: m.Location,
		Width:    m.Width,
		Height:   m.Height,
		Entities: make([]EntityView, 0, c.Entities.Len()),
	}
	if withTiles {
		snap.Tiles = tileValues(m.Tiles)
		snap.Structures = m.Structures
	}
	for _, e := range c.Entities.All() {
		if c.InActiveArea(e) {
			snap.Entities = append(snap.Entities, viewOf(e))
		}
	}
	return snap
}
