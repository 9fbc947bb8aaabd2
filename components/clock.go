package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the frame clock. With Fixed > 0 every tick advances by Fixed
// seconds; otherwise Delta is the wall-clock time since the previous tick.
type ClockData struct {
	Fixed   float64
	Delta   float64
	Elapsed float64
	Tick    int

	last time.Time
	now  func() time.Time
}

// NewClock returns a clock. fixed <= 0 selects wall-clock timing.
func NewClock(fixed float64) ClockData {
	return ClockData{Fixed: fixed, now: time.Now}
}

// Advance moves the clock forward one tick and returns the new Delta. The
// first wall-clock tick has a Delta of 0.
func (c *ClockData) Advance() float64 {
	switch {
	case c.Fixed > 0:
		c.Delta = c.Fixed
	default:
		if c.now == nil {
			c.now = time.Now
		}
		now := c.now()
		if c.last.IsZero() {
			c.Delta = 0
		} else {
			c.Delta = now.Sub(c.last).Seconds()
		}
		c.last = now
	}
	c.Elapsed += c.Delta
	c.Tick++
	return c.Delta
}

var Clock = donburi.NewComponentType[ClockData]()
