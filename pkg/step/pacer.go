package step

import (
	"math"
	"runtime"
	"sync/atomic"
	"time"
)

// Speed bounds accepted by [Clock.SetSpeed].
const (
	MinSpeed = 0.125
	MaxSpeed = 16.0
)

// Instant is a [Pacer] that never sleeps. Every delay yields the processor
// once so that other goroutines (a UI loop, a renderer) can make progress.
type Instant struct{}

// Delay yields and returns.
func (Instant) Delay(time.Duration) { runtime.Gosched() }

// Clock is a [Pacer] backed by the wall clock whose speed can be changed at
// any time, including while a run is sleeping on it. A speed of 2 halves
// every delay.
type Clock struct {
	speed atomic.Uint64 // math.Float64bits
}

// NewClock returns a clock running at the given speed.
func NewClock(speed float64) *Clock {
	c := &Clock{}
	c.SetSpeed(speed)
	return c
}

// Delay sleeps for d divided by the current speed. A zero d yields.
func (c *Clock) Delay(d time.Duration) {
	if d <= 0 {
		runtime.Gosched()
		return
	}
	time.Sleep(time.Duration(float64(d) / c.Speed()))
}

// Speed returns the current speed factor.
func (c *Clock) Speed() float64 {
	s := math.Float64frombits(c.speed.Load())
	if s == 0 {
		return 1
	}
	return s
}

// SetSpeed sets the speed factor, clamped to [MinSpeed, MaxSpeed].
// Non-positive values reset the clock to normal speed.
func (c *Clock) SetSpeed(speed float64) {
	switch {
	case speed <= 0 || math.IsNaN(speed):
		speed = 1
	case speed < MinSpeed:
		speed = MinSpeed
	case speed > MaxSpeed:
		speed = MaxSpeed
	}
	c.speed.Store(math.Float64bits(speed))
}

// Faster doubles the speed and returns the new value.
func (c *Clock) Faster() float64 {
	c.SetSpeed(c.Speed() * 2)
	return c.Speed()
}

// Slower halves the speed and returns the new value.
func (c *Clock) Slower() float64 {
	c.SetSpeed(c.Speed() / 2)
	return c.Speed()
}
