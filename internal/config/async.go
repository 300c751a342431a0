package config

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// AsyncLoader reads the config on a background goroutine.
// Done can be polled from a frame loop; Wait joins the goroutine.
type AsyncLoader struct {
	g    errgroup.Group
	done atomic.Bool
	cfg  World
}

// LoadAsync starts loading path.
func LoadAsync(path string) *AsyncLoader {
	l := &AsyncLoader{}
	l.g.Go(func() error {
		defer l.done.Store(true)
		cfg, err := LoadWorld(path)
		l.cfg = cfg
		return err
	})
	return l
}

// Done reports whether loading has finished.
func (l *AsyncLoader) Done() bool {
	return l.done.Load()
}

// Wait blocks until loading finishes and returns the result.
func (l *AsyncLoader) Wait() (World, error) {
	err := l.g.Wait()
	return l.cfg, err
}
