package entity

import (
	"fmt"

	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec, target ecs.Entity) (ecs.Entity, error) {
	if !w.IsAlive(target) {
		return 0, fmt.Errorf("camera: target %s: %w", target, component.ErrEntityNotAlive)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Target:   uint64(target),
		Yaw:      spec.Yaw,
		Pitch:    spec.Pitch,
		MinPitch: spec.MinPitch,
		MaxPitch: spec.MaxPitch,
		Distance: spec.Distance,
		Height:   spec.Height,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
