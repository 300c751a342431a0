package model

// Offscreen accumulates time an entity spends outside the active area.
type Offscreen struct {
	elapsed float32
}

// Tick adds dt seconds.
func (o *Offscreen) Tick(dt float32) { o.elapsed += dt }

// Reset zeroes the timer.
func (o *Offscreen) Reset() { o.elapsed = 0 }

// Elapsed returns accumulated seconds.
func (o *Offscreen) Elapsed() float32 { return o.elapsed }

// Hungry thresholds.
const (
	HungryFraction    = 0.3 // of capacity
	HungryRateSeconds = 240 // seconds of decay left
)

// Hunger is a depleting food meter. Current stays within [0, capacity].
type Hunger struct {
	capacity float32
	rate     float32 // per second
	current  float32

	// Meal is the plant the agent is heading to eat.
	Meal ID
}

// NewHunger creates a full meter.
func NewHunger(capacity, rate float32) *Hunger {
	return &Hunger{capacity: capacity, rate: rate, current: capacity}
}

func (h *Hunger) Capacity() float32 { return h.capacity }
func (h *Hunger) Rate() float32     { return h.rate }
func (h *Hunger) Current() float32  { return h.current }

// Add changes the meter by x, clamped.
func (h *Hunger) Add(x float32) {
	h.current = min(max(h.current+x, 0), h.capacity)
}

// Refill fills the meter and clears the meal target.
func (h *Hunger) Refill() {
	h.current = h.capacity
	h.Meal = ID{}
}

// Hungry reports whether the agent should look for food.
func (h *Hunger) Hungry() bool {
	return h.current < h.capacity*HungryFraction || h.current < h.rate*HungryRateSeconds
}

// Plant is a fruit-bearing plant. Fruit is ripe once progress reaches 1.
type Plant struct {
	Fruiting bool
	Rate     float32 // progress per second
	Progress float32
}

// Ripe reports whether fruit can be eaten.
func (p *Plant) Ripe() bool {
	return p.Fruiting && p.Progress >= 1
}

// Grow advances progress by x while unripe.
func (p *Plant) Grow(x float32) {
	if !p.Fruiting || p.Progress >= 1 {
		return
	}
	p.Progress += x
}

// Harvest resets progress.
func (p *Plant) Harvest() { p.Progress = 0 }

// Player is the user-controlled entity.
type Player struct {
	Width  float32
	Height float32
	Speed  float32
}
