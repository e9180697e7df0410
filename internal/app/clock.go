package app

// Clock hands out the fixed simulation step and counts ticks.
type Clock struct {
	Step    float64
	Ticks   uint64
	Elapsed float64
}

func NewClock(step float64) *Clock {
	return &Clock{Step: step}
}

// Tick advances the clock by one step and returns the delta to feed the systems.
func (c *Clock) Tick() float64 {
	c.Ticks++
	c.Elapsed = float64(c.Ticks) * c.Step
	return c.Step
}
