package model

import (
	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/game/nav"
)

// NavMode selects how a mover plans paths.
type NavMode uint8

const (
	// NavAnchors plans over the area anchor graph, crossing areas through portals.
	NavAnchors NavMode = iota
	// NavFreeRoam plans over the raw tile grid of the active area.
	NavFreeRoam
)

// Mover is the navigation state of an autonomous agent.
//
// Steps are only ever set while the goal queue is non-empty.
type Mover struct {
	goals    GoalQueue
	steps    []nav.AnchorKey
	pathCost int

	speed   float32
	lastDir geo.Direction
	mode    NavMode

	lastCompleted *Goal
}

// NewMover creates a mover with base speed in world units per second.
func NewMover(speed float32) *Mover {
	return &Mover{speed: speed}
}

// Speed returns base speed.
func (m *Mover) Speed() float32 { return m.speed }

// Mode returns the navigation mode.
func (m *Mover) Mode() NavMode { return m.mode }

// SetMode switches the navigation mode and drops the current path.
func (m *Mover) SetMode(mode NavMode) {
	m.mode = mode
	m.ClearSteps()
}

// LastDir returns the direction of the last completed step.
func (m *Mover) LastDir() geo.Direction { return m.lastDir }

// AddGoal queues g.
func (m *Mover) AddGoal(g Goal) { m.goals.Push(g) }

// Goal returns the current goal without changing the queue.
func (m *Mover) Goal() (Goal, bool) { return m.goals.Peek() }

// PopGoal removes the current goal and its path.
func (m *Mover) PopGoal() (Goal, bool) {
	g, ok := m.goals.Pop()
	if ok {
		m.lastCompleted = &g
	}
	m.ClearSteps()
	return g, ok
}

// DropGoal removes the current goal without recording it as completed.
func (m *Mover) DropGoal() (Goal, bool) {
	g, ok := m.goals.Pop()
	m.ClearSteps()
	return g, ok
}

// LastCompleted returns the most recently completed goal.
func (m *Mover) LastCompleted() (Goal, bool) {
	if m.lastCompleted == nil {
		return Goal{}, false
	}
	return *m.lastCompleted, true
}

// HasGoalKind reports whether a goal of kind k is queued.
func (m *Mover) HasGoalKind(k GoalKind) bool { return m.goals.Has(k) }

// GoalCount returns the number of queued goals.
func (m *Mover) GoalCount() int { return m.goals.Len() }

// SetPath installs steps toward the current goal. Ignored when no goal is queued.
func (m *Mover) SetPath(steps []nav.AnchorKey, cost int) {
	if m.goals.Len() == 0 {
		return
	}
	m.steps = steps
	m.pathCost = cost
}

// Step returns the head step.
func (m *Mover) Step() (nav.AnchorKey, bool) {
	if len(m.steps) == 0 {
		return nav.AnchorKey{}, false
	}
	return m.steps[0], true
}

// PopStep removes the head step and records the direction taken.
func (m *Mover) PopStep(dir geo.Direction) {
	if len(m.steps) == 0 {
		return
	}
	m.steps = m.steps[1:]
	if dir != geo.DirNone {
		m.lastDir = dir
	}
}

// HasSteps reports whether a path is pending.
func (m *Mover) HasSteps() bool { return len(m.steps) > 0 }

// Path returns the remaining steps. The slice must not be modified.
func (m *Mover) Path() []nav.AnchorKey { return m.steps }

// PathCost returns the cost of the installed path, 0 when there is none.
func (m *Mover) PathCost() int { return m.pathCost }

// ClearSteps drops the current path.
func (m *Mover) ClearSteps() {
	m.steps = nil
	m.pathCost = 0
}
