package observer

import (
	"sync"

	"github.com/udisondev/wildgrid/internal/sim"
)

// InputState holds the latest player input received from observers.
// It is written by connection goroutines and read by the simulation loop.
type InputState struct {
	mu     sync.RWMutex
	dx, dy float32
}

// Set records a movement request, clamping each axis to [-1, 1].
func (s *InputState) Set(dx, dy float32) {
	s.mu.Lock()
	s.dx = min(max(dx, -1), 1)
	s.dy = min(max(dy, -1), 1)
	s.mu.Unlock()
}

// Axis implements sim.Input.
func (s *InputState) Axis(name string) float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch name {
	case sim.AxisHorizontal:
		return s.dx
	case sim.AxisVertical:
		return s.dy
	}
	return 0
}

var _ sim.Input = (*InputState)(nil)
