package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/locomotion"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

type fakeInput struct {
	down     map[ebiten.Key]bool
	just     map[ebiten.Key]bool
	cx, cy   float64
	pad      GamepadState
	hasPad   bool
	justKeys []ebiten.Key
}

func newFakeInput() *fakeInput {
	return &fakeInput{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k ebiten.Key) bool {
	return f.down[k]
}

func (f *fakeInput) IsKeyJustPressed(k ebiten.Key) bool {
	return f.just[k]
}

func (f *fakeInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.justKeys...)
}

func (f *fakeInput) CursorPosition() (float64, float64) {
	return f.cx, f.cy
}

func (f *fakeInput) Gamepad() (GamepadState, bool) {
	return f.pad, f.hasPad
}

type fakeClip struct {
	playing bool
	plays   int
	rewinds int
	volume  float64
}

func (c *fakeClip) Play() {
	c.playing = true
	c.plays++
}

func (c *fakeClip) Pause() {
	c.playing = false
}

func (c *fakeClip) IsPlaying() bool {
	return c.playing
}

func (c *fakeClip) Rewind() error {
	c.rewinds++
	return nil
}

func (c *fakeClip) SetVolume(v float64) {
	c.volume = v
}

// newCharacter adds a character with a default controller at pos facing +Z.
func newCharacter(t *testing.T, w *ecs.World, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	ctrl, err := locomotion.NewController(locomotion.DefaultConfig(), locomotion.Spawn{Facing: mgl64.QuatIdent()})
	require.NoError(t, err)

	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Rotation: mgl64.QuatIdent()}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, e, component.LocomotionComponent.Kind(), &component.Locomotion{Controller: ctrl}))
	return e
}

func addMover(t *testing.T, w *ecs.World, e ecs.Entity) *component.Mover {
	t.Helper()
	m := &component.Mover{Radius: 0.5, Mass: 1, StepHeight: 0.3, Grounded: true}
	require.NoError(t, ecs.Add(w, e, component.MoverComponent.Kind(), m))
	return m
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok)
	return v
}
