package system

import (
	"testing"

	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/locomotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalker(t *testing.T, clips int) (*ecs.World, *component.Locomotion, *component.Footsteps, []*fakeClip) {
	t.Helper()
	w := ecs.NewWorld()
	e := w.CreateEntity()
	loco := &component.Locomotion{}
	fakes := make([]*fakeClip, clips)
	players := make([]component.ClipPlayer, clips)
	for i := range fakes {
		fakes[i] = &fakeClip{}
		players[i] = fakes[i]
	}
	steps := &component.Footsteps{Players: players, Volume: 0.5}
	require.NoError(t, ecs.Add(w, e, component.LocomotionComponent.Kind(), loco))
	require.NoError(t, ecs.Add(w, e, component.FootstepsComponent.Kind(), steps))
	return w, loco, steps, fakes
}

func playingCount(clips []*fakeClip) int {
	n := 0
	for _, c := range clips {
		if c.playing {
			n++
		}
	}
	return n
}

func TestFootstepsPlayWhileWalking(t *testing.T) {
	w, loco, steps, clips := newWalker(t, 4)
	sys := NewFootstepSystem(0.8, 1)

	sys.Update(w, frame)
	assert.Zero(t, playingCount(clips), "silent while idle")

	loco.Last = locomotion.TickOutput{Moving: true, Phase: locomotion.PhaseGrounded}
	sys.Update(w, frame)
	require.True(t, steps.Active)
	current := clips[steps.Current]
	assert.True(t, current.playing)
	assert.Equal(t, 1, current.rewinds)
	assert.InDelta(t, 0.4, current.volume, 1e-12)

	// still playing: no restart
	sys.Update(w, frame)
	assert.Equal(t, 1, current.plays)

	// clip finished: a different one starts
	prev := steps.Current
	current.playing = false
	sys.Update(w, frame)
	assert.NotEqual(t, prev, steps.Current)
	assert.Equal(t, 1, playingCount(clips))
}

func TestFootstepsStopWhenAirborneOrIdle(t *testing.T) {
	for _, out := range []locomotion.TickOutput{
		{Moving: true, Phase: locomotion.PhaseAirborne},
		{Moving: false, Phase: locomotion.PhaseGrounded},
	} {
		w, loco, steps, clips := newWalker(t, 3)
		sys := NewFootstepSystem(1, 7)

		loco.Last = locomotion.TickOutput{Moving: true}
		sys.Update(w, frame)
		require.Equal(t, 1, playingCount(clips))

		loco.Last = out
		sys.Update(w, frame)
		assert.Zero(t, playingCount(clips))
		assert.False(t, steps.Active)
	}
}

func TestFootstepsSingleClipLoops(t *testing.T) {
	w, loco, steps, clips := newWalker(t, 1)
	sys := NewFootstepSystem(1, 3)
	loco.Last = locomotion.TickOutput{Moving: true}

	for i := 0; i < 3; i++ {
		sys.Update(w, frame)
		clips[0].playing = false
	}
	assert.Equal(t, 0, steps.Current)
	assert.Equal(t, 3, clips[0].plays)
}

func TestFootstepsNoPlayers(t *testing.T) {
	w, loco, steps, _ := newWalker(t, 0)
	loco.Last = locomotion.TickOutput{Moving: true}
	NewFootstepSystem(1, 1).Update(w, frame)
	assert.False(t, steps.Active)
}
