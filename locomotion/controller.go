package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/servant/common"
)

// Controller owns one character's motion state. It is not safe for
// concurrent use; distinct controllers are fully independent.
type Controller struct {
	cfg   Config
	state State
}

func NewController(cfg Config, spawn Spawn) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st := State{Facing: normalizeFacing(spawn.Facing)}
	if spawn.Companion != nil && finiteVec3(*spawn.Companion) {
		st.CompanionPosition = *spawn.Companion
		st.CompanionPlaced = true
	}
	return &Controller{cfg: cfg, state: st}, nil
}

// WithConfig returns a controller with new tuning that continues from the
// current state. The receiver is left untouched.
func (c *Controller) WithConfig(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	st := c.state
	st.CurrentSpeed = common.Clamp(st.CurrentSpeed, 0, cfg.topSpeed())
	return &Controller{cfg: cfg, state: st}, nil
}

func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a copy of the motion state.
func (c *Controller) State() State {
	return c.state
}

// Tick advances the controller by one simulation step.
func (c *Controller) Tick(in TickInput) TickOutput {
	dt := in.DeltaTime
	if !common.Finite(dt) || dt < 0 {
		dt = 0
	}

	horizontal, moving := c.blend(in, dt)
	vertical, jumped := c.integrateVertical(in, dt)
	c.turn(in, moving, dt)
	target, tracked := c.trackCompanion(in, dt)

	velocity := mgl64.Vec3{horizontal[0], vertical, horizontal[2]}
	return TickOutput{
		Horizontal:        horizontal,
		Vertical:          vertical,
		Velocity:          velocity,
		Displacement:      velocity.Mul(dt),
		Facing:            c.state.Facing,
		CompanionPosition: c.state.CompanionPosition,
		CompanionTarget:   target,
		CompanionTracked:  tracked,
		Moving:            moving,
		NormalizedSpeed:   common.Clamp01(c.state.CurrentSpeed / c.cfg.topSpeed()),
		Jumped:            jumped,
		Phase:             c.state.Phase,
	}
}

func normalizeFacing(q mgl64.Quat) mgl64.Quat {
	l := q.Len()
	if !common.Finite(l) || l < degenerateLength {
		return mgl64.QuatIdent()
	}
	return q.Normalize()
}
