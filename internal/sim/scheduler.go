package sim

import (
	"context"
	"log/slog"
	"time"
)

// System is one step of the frame.
type System interface {
	Name() string
	Run(c *Context)
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

// NewScheduler creates a scheduler with systems in run order.
func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: systems}
}

// Add appends systems to the end of the order.
func (s *Scheduler) Add(systems ...System) {
	s.systems = append(s.systems, systems...)
}

// Names returns system names in run order.
func (s *Scheduler) Names() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.Name()
	}
	return names
}

// Step runs one frame of dt seconds.
func (s *Scheduler) Step(c *Context, dt float32) {
	c.Dt = dt
	for _, sys := range s.systems {
		sys.Run(c)
	}
	c.Frame++
}

// Loop drives a Scheduler from a ticker.
type Loop struct {
	sched    *Scheduler
	ctx      *Context
	interval time.Duration
}

// NewLoop creates a loop stepping every interval with a fixed dt.
func NewLoop(sched *Scheduler, c *Context, interval time.Duration) *Loop {
	return &Loop{sched: sched, ctx: c, interval: interval}
}

// Run steps the simulation until ctx is canceled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	dt := float32(l.interval.Seconds())
	l.ctx.Ctx = ctx

	slog.Info("simulation loop started",
		"interval", l.interval,
		"systems", len(l.sched.systems))

	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation loop stopping", "frames", l.ctx.Frame)
			return ctx.Err()

		case <-ticker.C:
			l.sched.Step(l.ctx, dt)
		}
	}
}
