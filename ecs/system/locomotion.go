package system

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/locomotion"
	"github.com/rs/zerolog/log"
)

// TickObserver sees every controller tick, e.g. to record it.
type TickObserver func(e ecs.Entity, in locomotion.TickInput, out locomotion.TickOutput)

// LocomotionSystem gathers each character's tick input from its input,
// camera, transform and mover, ticks every controller, and hands the result
// to the mover and transform.
type LocomotionSystem struct {
	// Parallel bounds concurrent controller ticks; 0 is unbounded.
	Parallel int
	Observe  TickObserver

	ents   []ecs.Entity
	ctrls  []*locomotion.Controller
	inputs []locomotion.TickInput
}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (s *LocomotionSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}

	s.ents = s.ents[:0]
	s.ctrls = s.ctrls[:0]
	s.inputs = s.inputs[:0]

	cameras := camerasByTarget(w)
	for _, e := range w.Query(component.LocomotionComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		loco, _ := ecs.Get(w, e, component.LocomotionComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if loco.Controller == nil {
			continue
		}

		in := locomotion.TickInput{
			BodyForward:  t.Forward(),
			BodyPosition: t.Position,
			DeltaTime:    dt.Seconds(),
		}
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			in.MoveAxis = input.MoveAxis
			in.TurnAxis = input.TurnAxis
			in.SprintHeld = input.Sprint
			in.JumpPressed = input.JumpPressed
		}
		if mover, ok := ecs.Get(w, e, component.MoverComponent.Kind()); ok {
			in.Grounded = mover.Grounded
		}
		if cam, ok := cameras[e]; ok {
			in.CameraForward = cam.Forward
			in.CameraPosition = cam.Position
		} else {
			// without a camera the character steers by its own heading
			in.CameraForward = in.BodyForward
			in.CameraPosition = t.Position.Sub(in.BodyForward)
		}

		s.ents = append(s.ents, e)
		s.ctrls = append(s.ctrls, loco.Controller)
		s.inputs = append(s.inputs, in)
	}
	if len(s.ents) == 0 {
		return
	}

	outs, err := locomotion.TickAll(context.Background(), s.ctrls, s.inputs, s.Parallel)
	if err != nil {
		log.Error().Err(err).Msg("locomotion: tick")
		return
	}

	events := w.Events()
	for i, e := range s.ents {
		out := outs[i]
		loco, _ := ecs.Get(w, e, component.LocomotionComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		prev := loco.Last

		t.Rotation = out.Facing
		if mover, ok := ecs.Get(w, e, component.MoverComponent.Kind()); ok {
			mover.Velocity = out.Velocity
		} else {
			t.Position = t.Position.Add(out.Displacement)
		}
		loco.Last = out

		if out.Jumped {
			events.Push(ecs.Event{Type: ecs.EventJumped, Entity: e, Data: out.Vertical})
		}
		if prev.Phase == locomotion.PhaseAirborne && out.Phase == locomotion.PhaseGrounded {
			events.Push(ecs.Event{Type: ecs.EventLanded, Entity: e, Data: prev.Vertical})
		}
		if out.Moving && !prev.Moving {
			events.Push(ecs.Event{Type: ecs.EventStarted, Entity: e})
		}
		if !out.Moving && prev.Moving {
			events.Push(ecs.Event{Type: ecs.EventStopped, Entity: e})
		}

		if s.Observe != nil {
			s.Observe(e, s.inputs[i], out)
		}
	}
}

// Reconfigure swaps the tuning of every controller, keeping their state.
// Controllers are left untouched when cfg is invalid.
func (s *LocomotionSystem) Reconfigure(w *ecs.World, cfg locomotion.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var firstErr error
	ecs.ForEach(w, component.LocomotionComponent.Kind(), func(e ecs.Entity, loco *component.Locomotion) {
		if loco.Controller == nil {
			return
		}
		next, err := loco.Controller.WithConfig(cfg)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		loco.Controller = next
	})
	return firstErr
}

type cameraView struct {
	Forward  mgl64.Vec3
	Position mgl64.Vec3
}

func camerasByTarget(w *ecs.World) map[ecs.Entity]cameraView {
	out := make(map[ecs.Entity]cameraView)
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		out[ecs.Entity(cam.Target)] = cameraView{Forward: cam.Forward, Position: cam.Position}
	})
	return out
}
