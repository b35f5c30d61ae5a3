package locomotion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnTowardCameraIsBounded(t *testing.T) {
	ctrl := newTestController(t, nil)
	in := standingInput(0.1)
	in.MoveAxis = 1
	in.CameraForward = vec(1, -0.3, 0)

	out := ctrl.Tick(in)
	// turn rate 2 at dt 0.1 covers a fifth of the 90 degree gap
	require.InDelta(t, 18, headingDeg(out.Facing), 1e-6)

	prev := headingDeg(out.Facing)
	for i := 0; i < 100; i++ {
		out = ctrl.Tick(in)
		h := headingDeg(out.Facing)
		require.GreaterOrEqual(t, h, prev-1e-9)
		require.LessOrEqual(t, h, 90+1e-9)
		prev = h
	}
	require.InDelta(t, 90, prev, 1e-6)
}

func TestTurnTakesShorterArc(t *testing.T) {
	ctrl, err := NewController(DefaultConfig(), Spawn{Facing: mgl64.QuatRotate(mgl64.DegToRad(170), Up)})
	require.NoError(t, err)

	in := standingInput(0.1)
	in.MoveAxis = 1
	in.CameraForward = vec(math.Sin(mgl64.DegToRad(-170)), 0, math.Cos(mgl64.DegToRad(-170)))

	out := ctrl.Tick(in)
	h := headingDeg(out.Facing)
	// 20 degree gap through 180; a fifth of it is 4 degrees
	require.InDelta(t, 174, h, 1e-6)
}

func TestNoTurnInsideDeadZone(t *testing.T) {
	ctrl := newTestController(t, nil)
	in := standingInput(0.1)
	in.MoveAxis = 0.005
	in.TurnAxis = -0.009
	in.CameraForward = vec(1, 0, 0)

	before := ctrl.State().Facing
	out := ctrl.Tick(in)
	require.False(t, out.Moving)
	require.Equal(t, before, out.Facing)
}

func TestAlwaysTurnVariant(t *testing.T) {
	ctrl := newTestController(t, func(c *Config) { c.AlwaysTurn = true })
	in := standingInput(0.1)
	in.CameraForward = vec(1, 0, 0)

	out := ctrl.Tick(in)
	require.False(t, out.Moving)
	require.InDelta(t, 18, headingDeg(out.Facing), 1e-6)
}

func TestDegenerateCameraSkipsTurn(t *testing.T) {
	cases := []struct {
		name    string
		forward mgl64.Vec3
	}{
		{"straight_up", vec(0, 1, 0)},
		{"straight_down", vec(0, -1, 0)},
		{"zero", vec(0, 0, 0)},
		{"nan", vec(math.NaN(), 0, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := newTestController(t, func(c *Config) { c.AlwaysTurn = true })
			in := standingInput(0.1)
			in.MoveAxis = 1
			in.CameraForward = tc.forward

			before := ctrl.State().Facing
			out := ctrl.Tick(in)
			require.Equal(t, before, out.Facing)
			for _, c := range out.CompanionPosition {
				require.False(t, math.IsNaN(c))
			}
		})
	}
}

func TestCompanionDirectionStaysInCone(t *testing.T) {
	const maxDeg = 20.0
	for body := -180.0; body < 180; body += 15 {
		for cam := -180.0; cam <= 180; cam += 5 {
			bodyFwd := horizontalAt(body)
			camFwd := horizontalAt(cam)

			allowed, ok := ClampCompanionDirection(bodyFwd, camFwd, maxDeg)
			require.True(t, ok)
			require.InDelta(t, 1, allowed.Len(), 1e-9)

			got := math.Abs(SignedAngleDeg(bodyFwd, allowed))
			require.LessOrEqual(t, got, maxDeg+1e-9, "body=%v cam=%v", body, cam)
		}
	}
}

func TestCompanionDirectlyBehind(t *testing.T) {
	allowed, ok := ClampCompanionDirection(Forward, vec(0, 0, -1), 20)
	require.True(t, ok)
	assert.InDelta(t, 20, math.Abs(SignedAngleDeg(Forward, allowed)), 1e-9)
}

func TestCompanionTracking(t *testing.T) {
	t.Run("first_tick_places_on_target", func(t *testing.T) {
		ctrl := newTestController(t, nil)
		out := ctrl.Tick(standingInput(0.1))

		require.True(t, out.CompanionTracked)
		requireVecInDelta(t, vec(0, 0, 100), out.CompanionTarget, 1e-9)
		requireVecInDelta(t, out.CompanionTarget, out.CompanionPosition, 0)
		require.True(t, ctrl.State().CompanionPlaced)
	})

	t.Run("clamped_toward_camera", func(t *testing.T) {
		ctrl := newTestController(t, nil)
		in := standingInput(0.1)
		in.CameraForward = vec(1, 0, 0)

		out := ctrl.Tick(in)
		rad := mgl64.DegToRad(20)
		requireVecInDelta(t, vec(100*math.Sin(rad), 0, 100*math.Cos(rad)), out.CompanionTarget, 1e-9)
	})

	t.Run("lerps_from_spawn", func(t *testing.T) {
		start := vec(0, 0, 0)
		ctrl, err := NewController(DefaultConfig(), Spawn{Companion: &start})
		require.NoError(t, err)

		out := ctrl.Tick(standingInput(0.1))
		requireVecInDelta(t, vec(0, 0, 20), out.CompanionPosition, 1e-9)

		out = ctrl.Tick(standingInput(0.1))
		requireVecInDelta(t, vec(0, 0, 36), out.CompanionPosition, 1e-9)
	})

	t.Run("disabled_by_zero_distance", func(t *testing.T) {
		ctrl := newTestController(t, func(c *Config) { c.CompanionDistance = 0 })
		out := ctrl.Tick(standingInput(0.1))
		require.False(t, out.CompanionTracked)
		require.False(t, ctrl.State().CompanionPlaced)
	})

	t.Run("zero_body_forward_skips", func(t *testing.T) {
		start := vec(1, 2, 3)
		ctrl, err := NewController(DefaultConfig(), Spawn{Companion: &start})
		require.NoError(t, err)

		in := standingInput(0.1)
		in.BodyForward = vec(0, 0, 0)
		out := ctrl.Tick(in)
		require.False(t, out.CompanionTracked)
		require.Equal(t, start, out.CompanionPosition)
	})
}

// horizontalAt is the horizontal unit direction at deg degrees from +Z toward +X.
func horizontalAt(deg float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(deg)
	return vec(math.Sin(rad), 0, math.Cos(rad))
}
