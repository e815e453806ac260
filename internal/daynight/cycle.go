// Package daynight runs the island's day/night clock.
package daynight

import (
	"fmt"
	"time"
)

// Phase is the part of the day the clock is in.
type Phase string

const (
	PhaseDay   Phase = "day"
	PhaseNight Phase = "night"
)

// MinutesInDay is the length of one in-game day in game minutes.
const MinutesInDay = 60 * 24

// Config tunes a Cycle.
type Config struct {
	FullDay        time.Duration // Real time per in-game day
	PercentNight   float64       // Fraction of the day that is night, in [0, 1]
	DayIntensity   float64       // Sun intensity at high sun
	NightIntensity float64       // Sun intensity at high moon
	DawnIntensity  float64       // Sun intensity when the day starts and ends
}

// DefaultConfig returns a one-minute day with a quarter of it at night.
func DefaultConfig() Config {
	return Config{
		FullDay:        60 * time.Second,
		PercentNight:   0.25,
		DayIntensity:   1,
		NightIntensity: 0,
		DawnIntensity:  0.5,
	}
}

// Cycle advances game time and reports the phase and sun intensity.
// Game minutes follow an in-out quad ease across each day.
type Cycle struct {
	cfg     Config
	elapsed time.Duration // Into the current day
	days    int
}

// NewCycle creates a cycle at the start of day one.
func NewCycle(cfg Config) *Cycle {
	if cfg.FullDay <= 0 {
		cfg.FullDay = DefaultConfig().FullDay
	}
	cfg.PercentNight = clamp(cfg.PercentNight, 0, 1)
	return &Cycle{cfg: cfg}
}

// Step advances the clock by dt, wrapping into following days.
func (c *Cycle) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
	for c.elapsed >= c.cfg.FullDay {
		c.elapsed -= c.cfg.FullDay
		c.days++
	}
}

// Days returns how many full days have passed.
func (c *Cycle) Days() int { return c.days }

// Progress returns the linear fraction of the current day elapsed, in [0, 1).
func (c *Cycle) Progress() float64 {
	return float64(c.elapsed) / float64(c.cfg.FullDay)
}

// Minute returns the eased minute of the day, in [0, MinutesInDay).
func (c *Cycle) Minute() int {
	m := int(inOutQuad(c.Progress()) * MinutesInDay)
	if m >= MinutesInDay {
		m = MinutesInDay - 1
	}
	return m
}

// NightStart returns the minute night begins. Night runs to the end of the day.
func (c *Cycle) NightStart() int {
	start := MinutesInDay - int(MinutesInDay*c.cfg.PercentNight)
	if start < 0 {
		return 0
	}
	if start > MinutesInDay {
		return MinutesInDay
	}
	return start
}

// IsNight reports whether the current minute falls in the night window.
func (c *Cycle) IsNight() bool {
	m := c.Minute()
	return m >= c.NightStart() && m < MinutesInDay
}

// Phase returns the current phase.
func (c *Cycle) Phase() Phase {
	if c.IsNight() {
		return PhaseNight
	}
	return PhaseDay
}

// SunIntensity returns the sun's brightness. It eases from dawn up to full
// day at high sun, down to night at high moon, then back to dawn.
func (c *Cycle) SunIntensity() float64 {
	p := c.Progress()
	highSun := (1 - c.cfg.PercentNight) * 0.5
	highMoon := (1 - c.cfg.PercentNight) + c.cfg.PercentNight*0.5

	switch {
	case p < highSun:
		return lerp(c.cfg.DawnIntensity, c.cfg.DayIntensity, inOutQuad(p/highSun))
	case p < highMoon:
		return lerp(c.cfg.DayIntensity, c.cfg.NightIntensity, inOutQuad((p-highSun)/(highMoon-highSun)))
	default:
		return lerp(c.cfg.NightIntensity, c.cfg.DawnIntensity, inOutQuad((p-highMoon)/(1-highMoon)))
	}
}

// Clock formats the current minute as HH:MM.
func (c *Cycle) Clock() string {
	m := c.Minute()
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func inOutQuad(t float64) float64 {
	t = clamp(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
