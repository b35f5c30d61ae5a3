package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
)

// CompanionSystem floats each companion at its owner's tracked point,
// bobbing on a sine wave above it.
type CompanionSystem struct{}

func NewCompanionSystem() *CompanionSystem { return &CompanionSystem{} }

func (s *CompanionSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CompanionComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Companion, t *component.Transform) {
		loco, ok := ecs.Get(w, ecs.Entity(c.Owner), component.LocomotionComponent.Kind())
		if !ok || !loco.Last.CompanionTracked {
			return
		}

		c.BobPhase = math.Mod(c.BobPhase+c.BobSpeed*dt.Seconds(), 2*math.Pi)
		lift := c.HoverHeight + math.Sin(c.BobPhase)*c.BobHeight
		t.Position = loco.Last.CompanionPosition.Add(mgl64.Vec3{0, lift, 0})
	})
}
