package world

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/wildgrid/internal/game/geo"
)

// Seed carries the noise seed, per-field sampling offsets and the structure salt.
// The zero Seed is valid and fully deterministic.
type Seed struct {
	Noise int64

	TerrainX, TerrainY     float64
	AdjustX, AdjustY       float64
	BiomeX, BiomeY         float64
	StructureX, StructureY float64

	// Salt feeds structure placement only. Two seeds differing only in Salt
	// produce identical terrain.
	Salt uint64
}

const seedOffsetRange = 1 << 16

// SeedFromInt derives a full Seed from a single integer.
// Zero maps to the zero Seed.
func SeedFromInt(v int64) Seed {
	if v == 0 {
		return Seed{}
	}

	var in [8]byte
	binary.LittleEndian.PutUint64(in[:], uint64(v))
	sum := blake2b.Sum512(in[:])

	word := func(i int) uint64 { return binary.LittleEndian.Uint64(sum[i*8:]) }
	offset := func(i int) float64 { return float64(word(i) % seedOffsetRange) }

	return Seed{
		Noise:      int64(word(0)),
		TerrainX:   offset(1),
		TerrainY:   offset(2),
		AdjustX:    offset(3),
		AdjustY:    offset(4),
		BiomeX:     offset(5),
		BiomeY:     offset(6),
		StructureX: offset(7),
		StructureY: float64((word(1) >> 32) % seedOffsetRange),
		Salt:       word(7) >> 1,
	}
}

// WithSalt returns a copy of s with a different structure salt.
func (s Seed) WithSalt(salt uint64) Seed {
	s.Salt = salt
	return s
}

// StructureRand returns the structure placement RNG for an area.
// It depends on the noise seed, the salt and the location only.
func (s Seed) StructureRand(loc geo.AreaCoord) *rand.Rand {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], s.Salt)
	binary.LittleEndian.PutUint64(buf[8:], uint64(s.Noise))
	binary.LittleEndian.PutUint32(buf[16:], uint32(loc.X))
	binary.LittleEndian.PutUint32(buf[20:], uint32(loc.Y))

	sum := blake2b.Sum256(buf[:])
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(sum[0:]),
		binary.LittleEndian.Uint64(sum[8:]),
	))
}
