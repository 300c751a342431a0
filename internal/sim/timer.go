package sim

// Timer raises Context.Tick once per configured tick rate.
type Timer struct {
	elapsed float32
}

func (*Timer) Name() string { return "timer" }

func (t *Timer) Run(c *Context) {
	rate := float32(c.Cfg.TickRate.Seconds())
	if t.elapsed >= rate {
		t.elapsed = 0
		c.Tick = true
		return
	}
	t.elapsed += c.Dt
	c.Tick = false
}
