package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/prefabs"
)

// NewCompanion builds the floating companion that follows owner. It starts
// above the owner until the first tracked tick places it.
func NewCompanion(w *ecs.World, spec prefabs.CompanionSpec, owner ecs.Entity) (ecs.Entity, error) {
	if !w.IsAlive(owner) {
		return 0, fmt.Errorf("companion: owner %s: %w", owner, component.ErrEntityNotAlive)
	}

	start := mgl64.Vec3{0, spec.HoverHeight, 0}
	if t, ok := ecs.Get(w, owner, component.TransformComponent.Kind()); ok {
		start = t.Position.Add(start)
	}

	companion := ecs.CreateEntity(w)
	if err := ecs.Add(w, companion, component.CompanionTagComponent.Kind(), &component.CompanionTag{}); err != nil {
		return 0, fmt.Errorf("companion: add companion tag: %w", err)
	}
	if err := ecs.Add(w, companion, component.TransformComponent.Kind(), &component.Transform{
		Position: start,
		Rotation: mgl64.QuatIdent(),
	}); err != nil {
		return 0, fmt.Errorf("companion: add transform: %w", err)
	}
	if err := ecs.Add(w, companion, component.CompanionComponent.Kind(), &component.Companion{
		Owner:       uint64(owner),
		Radius:      spec.Radius,
		BobSpeed:    spec.BobSpeed,
		BobHeight:   spec.BobHeight,
		HoverHeight: spec.HoverHeight,
	}); err != nil {
		return 0, fmt.Errorf("companion: add companion component: %w", err)
	}
	return companion, nil
}
