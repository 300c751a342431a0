package world

import "container/list"

// residency tracks resident areas in recency order. Zero max disables eviction.
type residency struct {
	max   int
	order *list.List // front is most recent
	elems map[AreaIndex]*list.Element
}

func newResidency(max int) *residency {
	return &residency{
		max:   max,
		order: list.New(),
		elems: make(map[AreaIndex]*list.Element),
	}
}

func (r *residency) touch(i AreaIndex) {
	if e, ok := r.elems[i]; ok {
		r.order.MoveToFront(e)
		return
	}
	r.elems[i] = r.order.PushFront(i)
}

func (r *residency) forget(i AreaIndex) {
	if e, ok := r.elems[i]; ok {
		r.order.Remove(e)
		delete(r.elems, i)
	}
}

func (r *residency) len() int { return r.order.Len() }

// victims returns least recently used areas over the limit, never keep.
func (r *residency) victims(keep AreaIndex) []AreaIndex {
	if r.max <= 0 || r.order.Len() <= r.max {
		return nil
	}
	excess := r.order.Len() - r.max
	out := make([]AreaIndex, 0, excess)
	for e := r.order.Back(); e != nil && len(out) < excess; e = e.Prev() {
		i := e.Value.(AreaIndex)
		if i == keep {
			continue
		}
		out = append(out, i)
	}
	return out
}
