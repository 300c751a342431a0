package model

import "github.com/udisondev/wildgrid/internal/game/geo"

// PersonParams configures NewPerson.
type PersonParams struct {
	Speed          float32
	HungerCapacity float32
	HungerRate     float32
	Mode           NavMode
}

// NewPerson builds an autonomous agent at tile t of area.
func NewPerson(t geo.TileCoord, area geo.AreaCoord, p PersonParams) *Entity {
	phys := NewPhysicalAt(t, area)
	mover := NewMover(p.Speed)
	mover.mode = p.Mode
	return &Entity{
		ID:        NewID(KindPerson),
		Physical:  &phys,
		Mover:     mover,
		Hunger:    NewHunger(p.HungerCapacity, p.HungerRate),
		Offscreen: &Offscreen{},
	}
}

// NewPlant builds a fruiting plant at tile t of area.
func NewPlant(t geo.TileCoord, area geo.AreaCoord, rate, progress float32) *Entity {
	phys := NewPhysicalAt(t, area)
	return &Entity{
		ID:        NewID(KindPlant),
		Physical:  &phys,
		Plant:     &Plant{Fruiting: true, Rate: rate, Progress: progress},
		Offscreen: &Offscreen{},
	}
}

// NewPlayer builds the player entity at tile t of the origin area.
func NewPlayer(t geo.TileCoord, area geo.AreaCoord, speed float32) *Entity {
	phys := NewPhysicalAt(t, area)
	return &Entity{
		ID:       NewID(KindPlayer),
		Physical: &phys,
		Player:   &Player{Width: geo.TileSize, Height: geo.TileSize, Speed: speed},
	}
}
