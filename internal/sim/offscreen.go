package sim

// OffscreenTimer accumulates time for entities outside the active area.
type OffscreenTimer struct{}

func (OffscreenTimer) Name() string { return "offscreen" }

func (OffscreenTimer) Run(c *Context) {
	for _, e := range c.Entities.All() {
		if e.Offscreen == nil || e.Physical == nil {
			continue
		}
		if c.InActiveArea(e) {
			e.Offscreen.Reset()
		} else {
			e.Offscreen.Tick(c.Dt)
		}
	}
}

// PlantGrowth ripens fruit, faster for plants that have been offscreen for long.
type PlantGrowth struct{}

func (PlantGrowth) Name() string { return "plant" }

func (PlantGrowth) Run(c *Context) {
	for _, e := range c.Entities.All() {
		p := e.Plant
		if p == nil {
			continue
		}
		growth := p.Rate * c.Dt
		if e.Offscreen != nil {
			growth += p.Rate * e.Offscreen.Elapsed()
		}
		p.Grow(growth)
	}
}
