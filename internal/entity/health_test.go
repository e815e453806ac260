package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthDamageAndDeath(t *testing.T) {
	h := NewHealth(3)
	deaths := 0
	h.OnDeath(func() { deaths++ })

	assert.Equal(t, 1, h.Damage(1))
	assert.InDelta(t, 2.0/3.0, h.Percent(), 1e-9)
	assert.Equal(t, 0, h.Damage(0))
	assert.Equal(t, 0, h.Damage(-2))

	assert.Equal(t, 2, h.Damage(5), "damage is clamped to remaining health")
	assert.True(t, h.IsDead())
	assert.Equal(t, 0.0, h.Percent())
	assert.Equal(t, 1, deaths)

	assert.Equal(t, 0, h.Damage(1))
	assert.Equal(t, 1, deaths, "death fires once")
}

func TestHealthHeal(t *testing.T) {
	h := NewHealth(3)
	h.Damage(2)

	assert.Equal(t, 1, h.Heal(1))
	assert.Equal(t, 1, h.Heal(10), "healing is capped at max")
	assert.Equal(t, 3, h.Current())

	h.Damage(3)
	assert.Equal(t, 0, h.Heal(1), "the dead are not healed")
}

func TestHealthReset(t *testing.T) {
	h := NewHealth(2)
	deaths := 0
	h.OnDeath(func() { deaths++ })

	h.Damage(2)
	h.Reset()
	assert.Equal(t, 2, h.Current())
	assert.False(t, h.IsDead())

	h.Damage(2)
	assert.Equal(t, 2, deaths, "reset re-arms the death callback")
}
