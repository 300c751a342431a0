package model

import (
	"container/heap"

	"github.com/udisondev/wildgrid/internal/game/nav"
)

// GoalKind tells what a goal is for.
type GoalKind uint8

const (
	MealGoal GoalKind = iota
	MealSearch
	Wander
)

// String returns human-readable goal kind name
func (k GoalKind) String() string {
	switch k {
	case MealGoal:
		return "MEAL"
	case MealSearch:
		return "MEAL_SEARCH"
	case Wander:
		return "WANDER"
	default:
		return "UNKNOWN"
	}
}

// Priority is the default queue priority of the kind. Lower runs first.
func (k GoalKind) Priority() int {
	return int(k)
}

// Goal is a navigation target with a priority.
type Goal struct {
	Priority int
	Target   nav.AnchorKey
	Kind     GoalKind
}

// NewGoal builds a goal with the kind's default priority.
func NewGoal(kind GoalKind, target nav.AnchorKey) Goal {
	return Goal{Priority: kind.Priority(), Target: target, Kind: kind}
}

// Before is the queue order: priority, then target position, then kind.
func (g Goal) Before(o Goal) bool {
	if g.Priority != o.Priority {
		return g.Priority < o.Priority
	}
	if g.Target != o.Target {
		return g.Target.Less(o.Target)
	}
	return g.Kind < o.Kind
}

// GoalQueue is a min-heap of goals.
type GoalQueue struct {
	items goalHeap
}

// Len returns the number of queued goals.
func (q *GoalQueue) Len() int { return len(q.items) }

// Push adds g.
func (q *GoalQueue) Push(g Goal) { heap.Push(&q.items, g) }

// Peek returns the head without removing it.
func (q *GoalQueue) Peek() (Goal, bool) {
	if len(q.items) == 0 {
		return Goal{}, false
	}
	return q.items[0], true
}

// Pop removes and returns the head.
func (q *GoalQueue) Pop() (Goal, bool) {
	if len(q.items) == 0 {
		return Goal{}, false
	}
	return heap.Pop(&q.items).(Goal), true
}

// Has reports whether any queued goal is of kind k.
func (q *GoalQueue) Has(k GoalKind) bool {
	for _, g := range q.items {
		if g.Kind == k {
			return true
		}
	}
	return false
}

// Clear drops every goal.
func (q *GoalQueue) Clear() { q.items = q.items[:0] }

type goalHeap []Goal

func (h goalHeap) Len() int           { return len(h) }
func (h goalHeap) Less(i, j int) bool { return h[i].Before(h[j]) }
func (h goalHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *goalHeap) Push(x any)        { *h = append(*h, x.(Goal)) }
func (h *goalHeap) Pop() any {
	old := *h
	n := len(old)
	g := old[n-1]
	*h = old[:n-1]
	return g
}
