package model

import (
	"github.com/google/uuid"
)

// Kind is the entity category carried in an ID.
type Kind uint8

const (
	KindNone Kind = iota
	KindPerson
	KindPlant
	KindPlayer
)

// String returns human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindPerson:
		return "person"
	case KindPlant:
		return "plant"
	case KindPlayer:
		return "player"
	default:
		return "none"
	}
}

// ID identifies an entity for the whole session.
// The zero ID is nil and marks an empty occupancy cell.
type ID struct {
	UUID uuid.UUID
	Kind Kind
}

// NewID returns a fresh random ID of the given kind.
func NewID(kind Kind) ID {
	return ID{UUID: uuid.New(), Kind: kind}
}

// IsNil reports whether id is the empty ID.
func (id ID) IsNil() bool {
	return id.UUID == uuid.Nil
}

func (id ID) String() string {
	return id.Kind.String() + ":" + id.UUID.String()
}
