// Package noise provides seeded 2D coherent noise sampling for terrain generation.
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Provider samples 2D noise. Output is expected in [-1, 1].
type Provider interface {
	Eval2(x, y float64) float64
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(x, y float64) float64

func (f ProviderFunc) Eval2(x, y float64) float64 { return f(x, y) }

// Factory builds a provider from a seed.
type Factory func(seed int64) Provider

// NewSimplex returns an OpenSimplex provider for seed.
func NewSimplex(seed int64) Provider {
	return opensimplex.New(seed)
}

// Flat returns a provider that always yields v.
func Flat(v float64) Provider {
	return ProviderFunc(func(float64, float64) float64 { return v })
}

// Field samples a provider at scaled and offset coordinates.
// Sampling at (x, y) reads source at ((x+OffsetX)/Zoom, (y+OffsetY)/Zoom).
type Field struct {
	Source  Provider
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

// At returns the raw sample for (x, y).
func (f Field) At(x, y float64) float64 {
	zoom := f.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return f.Source.Eval2((x+f.OffsetX)/zoom, (y+f.OffsetY)/zoom)
}

// Normalize maps [-1, 1] to [0, 1].
func Normalize(v float64) float64 {
	return (v + 1) / 2
}

// Ease applies smoothstep to v in [0, 1].
func Ease(v float64) float64 {
	return v * v * (3 - 2*v)
}

// Unit clamps v into [0, 1).
func Unit(v float64) float64 {
	const below1 = 0.9999999
	switch {
	case v < 0:
		return 0
	case v > below1:
		return below1
	default:
		return v
	}
}

// Bucket maps v in [0, 1) to one of n buckets.
func Bucket(v float64, n int) int {
	b := int(Unit(v) * float64(n))
	return min(b, n-1)
}
