package model

// Entity is a bag of optional components keyed by ID.
type Entity struct {
	ID        ID
	Physical  *Physical
	Mover     *Mover
	Hunger    *Hunger
	Plant     *Plant
	Offscreen *Offscreen
	Player    *Player
}

// Registry holds entities in insertion order.
type Registry struct {
	entities []*Entity
	byID     map[ID]*Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[ID]*Entity)}
}

// Add registers e. Entities with a nil ID are rejected.
func (r *Registry) Add(e *Entity) bool {
	if e.ID.IsNil() {
		return false
	}
	if _, dup := r.byID[e.ID]; dup {
		return false
	}
	r.entities = append(r.entities, e)
	r.byID[e.ID] = e
	return true
}

// Get returns the entity with id.
func (r *Registry) Get(id ID) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// All returns entities in insertion order. The slice must not be modified.
func (r *Registry) All() []*Entity { return r.entities }

// Len returns the entity count.
func (r *Registry) Len() int { return len(r.entities) }

// Player returns the first entity with a Player component.
func (r *Registry) Player() (*Entity, bool) {
	for _, e := range r.entities {
		if e.Player != nil {
			return e, true
		}
	}
	return nil, false
}

// CountKind returns the number of entities of kind k.
func (r *Registry) CountKind(k Kind) int {
	n := 0
	for _, e := range r.entities {
		if e.ID.Kind == k {
			n++
		}
	}
	return n
}
