package locomotion

import "github.com/go-gl/mathgl/mgl64"

// turn slerps the facing toward the camera's horizontal heading. A camera
// looking straight up or down has no heading and leaves the facing alone.
func (c *Controller) turn(in TickInput, moving bool, dt float64) {
	if !moving && !c.cfg.AlwaysTurn {
		return
	}
	target, ok := YawRotation(in.CameraForward)
	if !ok {
		return
	}
	c.state.Facing = slerpShortest(c.state.Facing, target, c.cfg.TurnRate*dt)
}

// trackCompanion moves the companion toward a point ahead of the body, inside
// a cone around the body's forward that leans toward where the camera looks.
func (c *Controller) trackCompanion(in TickInput, dt float64) (mgl64.Vec3, bool) {
	dist := c.cfg.CompanionDistance
	if dist <= 0 {
		return mgl64.Vec3{}, false
	}

	ideal := in.CameraPosition.Add(in.CameraForward.Mul(dist))
	dir, ok := ClampCompanionDirection(in.BodyForward, ideal.Sub(in.BodyPosition), c.cfg.CompanionMaxAngleDeg)
	if !ok {
		return mgl64.Vec3{}, false
	}
	target := in.BodyPosition.Add(dir.Mul(dist))
	if !finiteVec3(target) {
		return mgl64.Vec3{}, false
	}

	if !c.state.CompanionPlaced {
		c.state.CompanionPosition = target
		c.state.CompanionPlaced = true
		return target, true
	}
	c.state.CompanionPosition = lerpVec3(c.state.CompanionPosition, target, c.cfg.CompanionLerpRate*dt)
	return target, true
}
