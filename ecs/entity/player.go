package entity

import (
	"fmt"

	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/locomotion"
	"github.com/milk9111/servant/prefabs"
)

// NewPlayer builds the controllable character from its spec. Footstep
// players may be empty, in which case the character walks silently.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, footsteps []component.ClipPlayer) (ecs.Entity, error) {
	facing := spec.Spawn.Facing()
	ctrl, err := locomotion.NewController(spec.Locomotion, locomotion.Spawn{Facing: facing})
	if err != nil {
		return 0, fmt.Errorf("player: controller: %w", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Spawn.Position.Vec3(),
		Rotation: ctrl.State().Facing,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.CursorComponent.Kind(), &component.Cursor{}); err != nil {
		return 0, fmt.Errorf("player: add cursor: %w", err)
	}
	if err := ecs.Add(w, player, component.LocomotionComponent.Kind(), &component.Locomotion{Controller: ctrl}); err != nil {
		return 0, fmt.Errorf("player: add locomotion: %w", err)
	}
	if err := ecs.Add(w, player, component.MoverComponent.Kind(), &component.Mover{
		Radius:     spec.Body.Radius,
		Mass:       spec.Body.Mass,
		StepHeight: spec.Body.StepHeight,
		Grounded:   true,
	}); err != nil {
		return 0, fmt.Errorf("player: add mover: %w", err)
	}
	if err := ecs.Add(w, player, component.AnimationComponent.Kind(), &component.Animation{}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}

	volume := spec.Footsteps.Volume
	if volume == 0 {
		volume = 1
	}
	if err := ecs.Add(w, player, component.FootstepsComponent.Kind(), &component.Footsteps{
		Players: footsteps,
		Volume:  volume,
	}); err != nil {
		return 0, fmt.Errorf("player: add footsteps: %w", err)
	}

	return player, nil
}
