package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/servant/common"
)

// blend eases CurrentSpeed toward the target speed and returns the horizontal
// velocity in world space along with whether the input left the dead-zone.
//
// The easing factor is rate*dt clamped to 1, which makes the curve depend on
// the frame rate. Callers stepping at a fixed dt get identical results.
func (c *Controller) blend(in TickInput, dt float64) (mgl64.Vec3, bool) {
	local := ClampMoveAxes(in.MoveAxis, in.TurnAxis)
	dz := c.cfg.deadZone()
	moving := math.Abs(local[2]) > dz || math.Abs(local[0]) > dz

	// sprint blends toward sprint speed even while idle
	target := 0.0
	switch {
	case in.SprintHeld:
		target = c.cfg.SprintSpeed
	case moving:
		target = c.cfg.MoveSpeed
	}

	speed := c.state.CurrentSpeed
	speed += (target - speed) * common.Clamp01(c.cfg.SprintTransitionRate*dt)
	c.state.CurrentSpeed = common.Clamp(speed, 0, c.cfg.topSpeed())

	if !moving {
		return mgl64.Vec3{}, false
	}

	forward := c.bodyForward(in.BodyForward)
	right := Up.Cross(forward)
	dir := forward.Mul(local[2]).Add(right.Mul(local[0]))
	return dir.Mul(c.state.CurrentSpeed), true
}

// bodyForward flattens the reported body forward, falling back to the
// controller's own facing when the report is unusable.
func (c *Controller) bodyForward(reported mgl64.Vec3) mgl64.Vec3 {
	if fwd, ok := FlattenDirection(reported); ok {
		return fwd
	}
	if fwd, ok := FlattenDirection(c.state.Facing.Rotate(Forward)); ok {
		return fwd
	}
	return Forward
}
