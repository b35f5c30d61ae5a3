package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/locomotion"
	"github.com/rs/zerolog/log"
)

const (
	ClipIdle = "idle"
	ClipWalk = "walk"
	ClipRun  = "run"
	ClipJump = "jump"
)

// AnimationSystem picks each character's clip from its last locomotion tick.
// Selection runs a tengo script when one is loaded and falls back to a
// built-in rule otherwise.
type AnimationSystem struct {
	compiled *tengo.Compiled
	// failed suppresses repeated logging of the same script error
	failed bool
}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// LoadScript compiles src as the clip selector. On error the previous script
// stays in place.
func (a *AnimationSystem) LoadScript(src []byte) error {
	script := tengo.NewScript(src)
	_ = script.Add("moving", false)
	_ = script.Add("speed", 0.0)
	_ = script.Add("grounded", true)
	_ = script.Add("jumped", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("animation: compile: %w", err)
	}
	a.compiled = compiled
	a.failed = false
	return nil
}

func (a *AnimationSystem) Update(w *ecs.World, _ time.Duration) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.LocomotionComponent.Kind(), func(e ecs.Entity, anim *component.Animation, loco *component.Locomotion) {
		out := loco.Last
		grounded := out.Phase == locomotion.PhaseGrounded

		clip, walking, err := a.selectClip(out.Moving, out.NormalizedSpeed, grounded, out.Jumped)
		if err != nil {
			if !a.failed {
				log.Error().Err(err).Stringer("entity", e).Msg("animation: script failed, using built-in rule")
				a.failed = true
			}
			clip, walking = defaultClip(out.Moving, out.NormalizedSpeed, grounded, out.Jumped)
		}

		anim.Walking = walking
		anim.Speed = out.NormalizedSpeed
		if clip == anim.Current {
			anim.Frames++
			return
		}
		anim.Previous = anim.Current
		anim.Current = clip
		anim.Frames = 0
	})
}

func (a *AnimationSystem) selectClip(moving bool, speed float64, grounded, jumped bool) (string, bool, error) {
	if a.compiled == nil {
		clip, walking := defaultClip(moving, speed, grounded, jumped)
		return clip, walking, nil
	}

	vars := map[string]any{"moving": moving, "speed": speed, "grounded": grounded, "jumped": jumped}
	for name, value := range vars {
		if err := a.compiled.Set(name, value); err != nil {
			return "", false, err
		}
	}
	if err := a.compiled.Run(); err != nil {
		return "", false, err
	}
	if !a.compiled.IsDefined("clip") {
		return "", false, fmt.Errorf("animation: script does not define clip")
	}

	clip := strings.TrimSpace(a.compiled.Get("clip").String())
	if clip == "" {
		return "", false, fmt.Errorf("animation: script chose an empty clip")
	}
	walking := moving && grounded
	if a.compiled.IsDefined("walking") {
		walking = a.compiled.Get("walking").Bool()
	}
	return clip, walking, nil
}

func defaultClip(moving bool, speed float64, grounded, jumped bool) (string, bool) {
	switch {
	case jumped || !grounded:
		return ClipJump, false
	case !moving:
		return ClipIdle, false
	case speed > 0.6:
		return ClipRun, true
	default:
		return ClipWalk, true
	}
}
