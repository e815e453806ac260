package daynight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNightStart(t *testing.T) {
	tests := []struct {
		percentNight float64
		expected     int
	}{
		{0.25, 1080},
		{0, 1440},
		{1, 0},
		{1.5, 0}, // Clamped
	}

	for _, tt := range tests {
		c := NewCycle(Config{FullDay: time.Minute, PercentNight: tt.percentNight})
		assert.Equal(t, tt.expected, c.NightStart(), "PercentNight %v", tt.percentNight)
	}
}

func TestCycleEasesMinutes(t *testing.T) {
	c := NewCycle(DefaultConfig())
	assert.Equal(t, 0, c.Minute())

	// A quarter of the way through real time is an eighth of the day eased
	c.Step(15 * time.Second)
	assert.Equal(t, 180, c.Minute())
	assert.Equal(t, "03:00", c.Clock())

	c.Step(15 * time.Second)
	assert.Equal(t, 720, c.Minute())
	assert.Equal(t, PhaseDay, c.Phase())
}

func TestCycleNightWindow(t *testing.T) {
	c := NewCycle(DefaultConfig())

	// The eased clock reaches minute 1080 at roughly 38.8 seconds
	c.Step(38 * time.Second)
	assert.False(t, c.IsNight())
	c.Step(2 * time.Second)
	assert.True(t, c.IsNight())
	assert.Equal(t, PhaseNight, c.Phase())
}

func TestCycleWraps(t *testing.T) {
	c := NewCycle(DefaultConfig())

	c.Step(150 * time.Second)
	assert.Equal(t, 2, c.Days())
	assert.InDelta(t, 0.5, c.Progress(), 1e-9)
	assert.Equal(t, 720, c.Minute())

	c.Step(-time.Second)
	assert.InDelta(t, 0.5, c.Progress(), 1e-9, "negative steps are ignored")
}

func TestSunIntensity(t *testing.T) {
	c := NewCycle(DefaultConfig())
	assert.InDelta(t, 0.5, c.SunIntensity(), 1e-9, "dawn")

	// High sun at 37.5% of the day
	c.Step(22500 * time.Millisecond)
	assert.InDelta(t, 1.0, c.SunIntensity(), 1e-9, "high sun")

	// High moon at 87.5% of the day
	c.Step(30 * time.Second)
	assert.InDelta(t, 0.0, c.SunIntensity(), 1e-9, "high moon")
}

func TestNewCycleDefaultsFullDay(t *testing.T) {
	c := NewCycle(Config{PercentNight: 0.25})
	c.Step(30 * time.Second)
	assert.InDelta(t, 0.5, c.Progress(), 1e-9)
}
