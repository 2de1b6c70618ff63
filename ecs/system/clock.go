package system

import (
	"time"

	"github.com/milk9111/objectfield/common"
)

type ClockMode int

const (
	// ClockFixed advances by DtScale every frame regardless of real time.
	ClockFixed ClockMode = iota
	// ClockWallclock scales real elapsed time into frame units.
	ClockWallclock
)

const maxFrameSteps = 4

// Clock is the per-field time source shared by the motion systems. It is
// owned by one mounted field and never shared between instances.
type Clock struct {
	Mode    ClockMode
	DtScale float32

	dt      float32
	elapsed float64
	frame   int
	last    time.Time
}

func NewClock(mode ClockMode, dtScale float32) *Clock {
	if dtScale <= 0 {
		dtScale = 1
	}
	return &Clock{Mode: mode, DtScale: dtScale}
}

// Tick advances the clock by one frame.
func (c *Clock) Tick(now time.Time) {
	if c == nil {
		return
	}
	c.frame++

	if c.Mode == ClockFixed {
		c.dt = c.DtScale
		c.elapsed += 1.0 / common.ReferenceFPS
		c.last = now
		return
	}

	if c.last.IsZero() {
		c.last = now
		c.dt = c.DtScale
		c.elapsed += 1.0 / common.ReferenceFPS
		return
	}

	secs := now.Sub(c.last).Seconds()
	c.last = now
	if secs < 0 {
		secs = 0
	}
	c.elapsed += secs
	c.dt = float32(secs*common.ReferenceFPS) * c.DtScale
	if limit := maxFrameSteps * c.DtScale; c.dt > limit {
		c.dt = limit
	}
}

// Dt is the displacement multiplier for the current frame.
func (c *Clock) Dt() float32 {
	if c == nil {
		return 0
	}
	return c.dt
}

// Elapsed returns seconds since the first tick.
func (c *Clock) Elapsed() float32 {
	if c == nil {
		return 0
	}
	return float32(c.elapsed)
}

func (c *Clock) Frame() int {
	if c == nil {
		return 0
	}
	return c.frame
}
