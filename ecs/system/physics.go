package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/prefabs"
	"github.com/rs/zerolog/log"
)

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeWall
	collisionTypePlatform
)

// PhysicsSystem moves characters. The ground plane is a Chipmunk space where
// cp X is world X and cp Y is world Z: walls are solid segments and
// platforms are sensor footprints. Height is integrated here and snapped to
// the highest surface under the body, which decides Mover.Grounded.
type PhysicsSystem struct {
	space *cp.Space
	world prefabs.WorldSpec

	platforms  map[*cp.Shape]float64
	characters map[*cp.Shape]ecs.Entity
	// contacts holds the platform tops each character overlapped this step.
	contacts map[ecs.Entity][]float64

	handlersReady bool
}

func NewPhysicsSystem(world prefabs.WorldSpec) *PhysicsSystem {
	ps := &PhysicsSystem{
		space:      cp.NewSpace(),
		world:      world,
		platforms:  make(map[*cp.Shape]float64),
		characters: make(map[*cp.Shape]ecs.Entity),
		contacts:   make(map[ecs.Entity][]float64),
	}
	ps.space.Iterations = 20

	static := ps.space.StaticBody
	for _, wall := range world.Walls {
		radius := wall.Radius
		if radius <= 0 {
			radius = 0.1
		}
		shape := cp.NewSegment(static, cp.Vector{X: wall.From.X, Y: wall.From.Z}, cp.Vector{X: wall.To.X, Y: wall.To.Z}, radius)
		shape.SetFriction(0)
		shape.SetElasticity(0)
		shape.SetCollisionType(collisionTypeWall)
		ps.space.AddShape(shape)
	}
	for _, p := range world.Platforms {
		shape := cp.NewBox2(static, cp.BB{L: p.Min.X, B: p.Min.Z, R: p.Max.X, T: p.Max.Z}, 0)
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypePlatform)
		ps.space.AddShape(shape)
		ps.platforms[shape] = world.Floor + p.Height
	}

	log.Debug().Int("walls", len(world.Walls)).Int("platforms", len(world.Platforms)).Msg("physics: space built")
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	return ps.space
}

func (ps *PhysicsSystem) World() prefabs.WorldSpec {
	return ps.world
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt time.Duration) {
	if ps == nil || w == nil {
		return
	}
	step := dt.Seconds()

	ps.ensureHandlers()
	ps.syncEntities(w)
	clear(ps.contacts)

	ecs.ForEach(w, component.MoverComponent.Kind(), func(_ ecs.Entity, mover *component.Mover) {
		if mover.Body != nil {
			mover.Body.SetVelocity(mover.Velocity.X(), mover.Velocity.Z())
		}
	})

	if step > 0 {
		ps.space.Step(step)
	}

	ecs.ForEach2(w, component.MoverComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mover *component.Mover, t *component.Transform) {
		if mover.Body == nil {
			return
		}
		pos := mover.Body.Position()
		prevY := t.Position.Y()
		y := prevY + mover.Velocity.Y()*step

		support := ps.world.Floor
		for _, top := range ps.contacts[e] {
			if top > support && top <= prevY+mover.StepHeight {
				support = top
			}
		}

		mover.Grounded = y <= support
		if mover.Grounded {
			y = support
		}
		mover.GroundHeight = support
		t.Position = mgl64.Vec3{pos.X, y, pos.Y}
	})
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeCharacter, collisionTypePlatform)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		e, okA := sys.characters[shapeA]
		platform := shapeB
		if !okA {
			var okB bool
			e, okB = sys.characters[shapeB]
			if !okB {
				return true
			}
			platform = shapeA
		}
		if top, ok := sys.platforms[platform]; ok {
			sys.contacts[e] = append(sys.contacts[e], top)
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for shape, e := range ps.characters {
		if w.IsAlive(e) && ecs.Has(w, e, component.MoverComponent.Kind()) {
			continue
		}
		body := shape.Body()
		ps.space.RemoveShape(shape)
		ps.space.RemoveBody(body)
		delete(ps.characters, shape)
	}

	ecs.ForEach2(w, component.MoverComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mover *component.Mover, t *component.Transform) {
		if mover.Body != nil {
			return
		}
		radius := mover.Radius
		if radius <= 0 {
			radius = 0.5
		}
		mass := mover.Mass
		if mass <= 0 {
			mass = 1
		}

		// infinite moment keeps the body from spinning against walls
		body := cp.NewBody(mass, math.Inf(1))
		body.SetPosition(cp.Vector{X: t.Position.X(), Y: t.Position.Z()})
		shape := cp.NewCircle(body, radius, cp.Vector{})
		shape.SetFriction(0)
		shape.SetElasticity(0)
		shape.SetCollisionType(collisionTypeCharacter)

		ps.space.AddBody(body)
		ps.space.AddShape(shape)
		ps.characters[shape] = e

		mover.Body = body
		mover.Shape = shape
		mover.Radius = radius
		mover.Mass = mass
	})
}
