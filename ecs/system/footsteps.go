package system

import (
	"math/rand"
	"time"

	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/locomotion"
	"github.com/rs/zerolog/log"
)

// FootstepSystem keeps a random step clip playing while a character walks on
// the ground, picks a new clip each time one finishes, and pauses when the
// character stops or leaves the ground.
type FootstepSystem struct {
	rng    *rand.Rand
	volume float64
}

// NewFootstepSystem scales every clip by volume.
func NewFootstepSystem(volume float64, seed int64) *FootstepSystem {
	return &FootstepSystem{rng: rand.New(rand.NewSource(seed)), volume: volume}
}

func (f *FootstepSystem) Update(w *ecs.World, _ time.Duration) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.FootstepsComponent.Kind(), component.LocomotionComponent.Kind(), func(e ecs.Entity, steps *component.Footsteps, loco *component.Locomotion) {
		if len(steps.Players) == 0 {
			return
		}
		walking := loco.Last.Moving && loco.Last.Phase == locomotion.PhaseGrounded

		if !walking {
			if steps.Active {
				if p := steps.CurrentPlayer(); p != nil {
					p.Pause()
				}
				steps.Active = false
			}
			return
		}

		if p := steps.CurrentPlayer(); steps.Active && p != nil && p.IsPlaying() {
			return
		}

		steps.Current = f.pick(len(steps.Players), steps.Current, steps.Active)
		p := steps.Players[steps.Current]
		if p == nil {
			return
		}
		if err := p.Rewind(); err != nil {
			log.Warn().Err(err).Stringer("entity", e).Msg("footsteps: rewind")
		}
		p.SetVolume(f.volume * steps.Volume)
		p.Play()
		steps.Active = true
	})
}

// pick chooses a random clip, avoiding an immediate repeat when there is a
// choice.
func (f *FootstepSystem) pick(n, last int, hadLast bool) int {
	if n <= 1 {
		return 0
	}
	if !hadLast {
		return f.rng.Intn(n)
	}
	i := f.rng.Intn(n - 1)
	if i >= last {
		i++
	}
	return i
}
