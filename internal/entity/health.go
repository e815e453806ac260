package entity

// Health tracks an agent's remaining lives.
type Health struct {
	current int
	max     int
	onDeath func()
	died    bool
}

// NewHealth creates a full health pool.
func NewHealth(max int) *Health {
	return &Health{current: max, max: max}
}

// OnDeath registers fn to run the first time health reaches zero.
func (h *Health) OnDeath(fn func()) {
	h.onDeath = fn
}

// Current returns remaining health.
func (h *Health) Current() int { return h.current }

// Max returns maximum health.
func (h *Health) Max() int { return h.max }

// IsDead reports whether health is exhausted.
func (h *Health) IsDead() bool { return h.current <= 0 }

// Percent returns remaining health in [0, 1] for energy bars.
func (h *Health) Percent() float64 {
	if h.max <= 0 {
		return 0
	}
	return float64(h.current) / float64(h.max)
}

// Damage reduces health and returns actual damage taken.
func (h *Health) Damage(amount int) int {
	if amount <= 0 || h.IsDead() {
		return 0
	}
	actual := amount
	if actual > h.current {
		actual = h.current
	}
	h.current -= actual

	if h.IsDead() && !h.died {
		h.died = true
		if h.onDeath != nil {
			h.onDeath()
		}
	}
	return actual
}

// Heal restores health and returns actual amount healed.
// A dead pool stays dead until Reset.
func (h *Health) Heal(amount int) int {
	if amount <= 0 || h.IsDead() {
		return 0
	}
	actual := amount
	if h.current+actual > h.max {
		actual = h.max - h.current
	}
	h.current += actual
	return actual
}

// Reset refills health and re-arms the death callback.
func (h *Health) Reset() {
	h.current = h.max
	h.died = false
}
