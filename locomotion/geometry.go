package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/servant/common"
)

// The frame is Y-up with +Z as a body's local forward and +X as its local right.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// degenerateLength is the shortest direction that is still normalized.
const degenerateLength = 1e-6

// ClampMoveAxes builds the local movement vector (turn, 0, move) with its
// magnitude limited to 1, so diagonals are no faster than a single axis.
func ClampMoveAxes(move, turn float64) mgl64.Vec3 {
	if !common.Finite(move) {
		move = 0
	}
	if !common.Finite(turn) {
		turn = 0
	}
	local := mgl64.Vec3{turn, 0, move}
	if l := local.Len(); l > 1 {
		local = local.Mul(1 / l)
	}
	return local
}

// FlattenDirection projects v onto the horizontal plane and normalizes it.
// It reports false when the projection is too short to carry a heading.
func FlattenDirection(v mgl64.Vec3) (mgl64.Vec3, bool) {
	flat := mgl64.Vec3{v[0], 0, v[2]}
	l := flat.Len()
	if !common.Finite(l) || l < degenerateLength {
		return mgl64.Vec3{}, false
	}
	return flat.Mul(1 / l), true
}

// SignedAngleDeg is the angle in degrees that rotates from onto to about Up.
// Positive turns +Z toward +X. Both vectors are expected to be horizontal.
func SignedAngleDeg(from, to mgl64.Vec3) float64 {
	sin := from.Cross(to).Dot(Up)
	cos := from.Dot(to)
	return mgl64.RadToDeg(math.Atan2(sin, cos))
}

// YawRotation is the rotation that turns Forward onto the horizontal heading of dir.
func YawRotation(dir mgl64.Vec3) (mgl64.Quat, bool) {
	flat, ok := FlattenDirection(dir)
	if !ok {
		return mgl64.QuatIdent(), false
	}
	return mgl64.QuatRotate(math.Atan2(flat[0], flat[2]), Up), true
}

// ClampCompanionDirection turns bodyForward toward toTarget by at most maxDeg
// degrees and returns the resulting horizontal unit direction.
func ClampCompanionDirection(bodyForward, toTarget mgl64.Vec3, maxDeg float64) (mgl64.Vec3, bool) {
	fwd, ok := FlattenDirection(bodyForward)
	if !ok {
		return mgl64.Vec3{}, false
	}
	dir, ok := FlattenDirection(toTarget)
	if !ok {
		return mgl64.Vec3{}, false
	}
	angle := common.Clamp(SignedAngleDeg(fwd, dir), -maxDeg, maxDeg)
	allowed := mgl64.QuatRotate(mgl64.DegToRad(angle), Up).Rotate(fwd)
	return allowed, true
}

// slerpShortest interpolates along the shorter arc with t clamped to [0,1].
func slerpShortest(from, to mgl64.Quat, t float64) mgl64.Quat {
	t = common.Clamp01(t)
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	switch t {
	case 0:
		return from
	case 1:
		return to.Normalize()
	}
	return mgl64.QuatSlerp(from, to, t).Normalize()
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = common.Clamp01(t)
	return mgl64.Vec3{common.Lerp(a[0], b[0], t), common.Lerp(a[1], b[1], t), common.Lerp(a[2], b[2], t)}
}

func finiteVec3(v mgl64.Vec3) bool {
	return common.Finite(v[0]) && common.Finite(v[1]) && common.Finite(v[2])
}
