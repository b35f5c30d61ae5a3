package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/servant/common"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/settings"
)

// CameraSystem orbits each camera around its target. Mouse travel turns yaw
// and pitch in degrees scaled by the look sensitivity.
type CameraSystem struct {
	sensitivity float64
	lookSign    float64
}

func NewCameraSystem(s settings.Settings) *CameraSystem {
	return &CameraSystem{sensitivity: s.MouseSensitivity, lookSign: s.LookSign()}
}

func (c *CameraSystem) Update(w *ecs.World, _ time.Duration) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		target := ecs.Entity(cam.Target)
		if input, ok := ecs.Get(w, target, component.InputComponent.Kind()); ok {
			cam.Yaw = wrapDegrees(cam.Yaw + input.LookX*c.sensitivity)
			cam.Pitch += input.LookY * c.sensitivity * c.lookSign
		}
		cam.Pitch = common.Clamp(cam.Pitch, cam.MinPitch, cam.MaxPitch)

		pivot := mgl64.Vec3{0, cam.Height, 0}
		if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
			pivot = t.Position.Add(pivot)
		}
		cam.Forward = OrbitForward(cam.Yaw, cam.Pitch)
		cam.Position = pivot.Sub(cam.Forward.Mul(cam.Distance))
	})
}

// OrbitForward is the unit view direction for a yaw (0 looks along +Z,
// 90 along +X) and a pitch (positive looks down).
func OrbitForward(yawDeg, pitchDeg float64) mgl64.Vec3 {
	yaw := mgl64.DegToRad(yawDeg)
	pitch := mgl64.DegToRad(pitchDeg)
	return mgl64.Vec3{
		math.Sin(yaw) * math.Cos(pitch),
		-math.Sin(pitch),
		math.Cos(yaw) * math.Cos(pitch),
	}
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
