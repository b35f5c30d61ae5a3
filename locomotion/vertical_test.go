package locomotion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, mutate func(c *Config)) *Controller {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	ctrl, err := NewController(cfg, Spawn{})
	require.NoError(t, err)
	return ctrl
}

func standingInput(dt float64) TickInput {
	return TickInput{
		Grounded:       true,
		CameraForward:  Forward,
		CameraPosition: vec(0, 2, -5),
		BodyForward:    Forward,
		DeltaTime:      dt,
	}
}

func TestGroundedVelocityNeverBuildsUp(t *testing.T) {
	ctrl := newTestController(t, nil)
	g := ctrl.Config().Gravity
	const eps = 1e-9

	for i, dt := range []float64{1.0 / 60, 1.0 / 30, 0.1, 0.5, 0, 1.0 / 144} {
		out := ctrl.Tick(standingInput(dt))
		assert.GreaterOrEqual(t, out.Vertical, -g*dt-eps, "tick %d", i)
		assert.LessOrEqual(t, out.Vertical, 0.0, "tick %d", i)
		assert.Equal(t, PhaseGrounded, out.Phase)
		assert.False(t, out.Jumped)
	}
}

func TestJumpImpulse(t *testing.T) {
	ctrl := newTestController(t, func(c *Config) {
		c.JumpHeight = 2
		c.Gravity = 9.81
	})

	in := standingInput(1.0 / 60)
	in.JumpPressed = true
	out := ctrl.Tick(in)

	require.True(t, out.Jumped)
	require.Equal(t, PhaseAirborne, out.Phase)
	require.InDelta(t, math.Sqrt(2*2*9.81), out.Vertical, 1e-12)
	require.InDelta(t, 6.26, out.Vertical, 0.01)
	require.InDelta(t, out.Vertical, ctrl.State().VerticalVelocity, 0)
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	ctrl := newTestController(t, nil)
	in := standingInput(0.1)
	in.Grounded = false
	in.JumpPressed = true

	out := ctrl.Tick(in)
	require.False(t, out.Jumped)
	require.InDelta(t, -ctrl.Config().Gravity*0.1, out.Vertical, 1e-12)
}

func TestAirborneGravityAccumulates(t *testing.T) {
	ctrl := newTestController(t, nil)
	g := ctrl.Config().Gravity

	jump := standingInput(0.1)
	jump.JumpPressed = true
	v0 := ctrl.Tick(jump).Vertical

	air := standingInput(0.1)
	air.Grounded = false
	for i := 1; i <= 20; i++ {
		out := ctrl.Tick(air)
		require.InDelta(t, v0-g*0.1*float64(i), out.Vertical, 1e-9)
		require.Equal(t, PhaseAirborne, out.Phase)
	}

	// landing resets to the ground snap value
	out := ctrl.Tick(standingInput(0.1))
	require.Equal(t, PhaseGrounded, out.Phase)
	require.InDelta(t, -g*0.1, out.Vertical, 1e-12)
}
