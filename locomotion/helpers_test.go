package locomotion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func vec(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

func requireVecInDelta(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], delta, "component %d of %v vs %v", i, want, got)
	}
}

// headingDeg is the yaw of a facing, measured from +Z toward +X.
func headingDeg(q mgl64.Quat) float64 {
	fwd, _ := FlattenDirection(q.Rotate(Forward))
	return SignedAngleDeg(Forward, fwd)
}
