package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a world-space pose. Y is up and local +Z is forward.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Forward is the rotated local +Z axis.
func (t Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
}

var TransformComponent = NewComponent[Transform]()
