package component

import "github.com/go-gl/mathgl/mgl64"

// Camera is a third-person orbit camera around a target entity.
type Camera struct {
	Target uint64

	Yaw      float64
	Pitch    float64
	MinPitch float64
	MaxPitch float64
	Distance float64
	// Height lifts the look-at point above the target's feet.
	Height float64

	// Derived each frame by the camera system.
	Position mgl64.Vec3
	Forward  mgl64.Vec3
}

var CameraComponent = NewComponent[Camera]()
