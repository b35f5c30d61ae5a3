package locomotion

import "math"

// JumpVelocity is the launch speed that peaks at height under gravity.
func JumpVelocity(height, gravity float64) float64 {
	return math.Sqrt(2 * height * gravity)
}

// integrateVertical advances the grounded/airborne machine. Ground contact is
// reported by the mover; this only decides the vertical speed for the tick.
func (c *Controller) integrateVertical(in TickInput, dt float64) (float64, bool) {
	g := c.cfg.Gravity

	if in.Grounded {
		if in.JumpPressed {
			c.state.VerticalVelocity = JumpVelocity(c.cfg.JumpHeight, g)
			c.state.Phase = PhaseAirborne
			return c.state.VerticalVelocity, true
		}
		// ground snap: keep the contact probe touching without accumulating fall speed
		c.state.VerticalVelocity = -g * dt
		c.state.Phase = PhaseGrounded
		return c.state.VerticalVelocity, false
	}

	c.state.VerticalVelocity -= g * dt
	c.state.Phase = PhaseAirborne
	return c.state.VerticalVelocity, false
}
