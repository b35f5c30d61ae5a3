package system

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/keybind"
	"github.com/rs/zerolog/log"
)

const (
	stickDeadzone = 0.2
	// stickLookSpeed converts a fully deflected right stick into pixels of
	// mouse travel per second.
	stickLookSpeed = 600.0
)

// InputSource is the raw device state the input system samples each frame.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	CursorPosition() (float64, float64)
	Gamepad() (GamepadState, bool)
}

// GamepadState is the first connected standard gamepad.
type GamepadState struct {
	LeftX, LeftY   float64
	RightX, RightY float64
	Sprint         bool
	JumpPressed    bool
}

type InputSystem struct {
	source   InputSource
	bindings keybind.Bindings
	rebinder *keybind.Rebinder

	lastX, lastY float64
	primed       bool
	keys         []ebiten.Key
	rebindNext   int
}

func NewInputSystem(source InputSource, bindings keybind.Bindings) *InputSystem {
	if source == nil {
		source = EbitenInput{}
	}
	if bindings == nil {
		bindings = keybind.Default()
	}
	return &InputSystem{
		source:   source,
		bindings: bindings,
		rebinder: keybind.NewRebinder(bindings),
	}
}

// Rebinder exposes the pending-rebind state machine fed by this system.
func (i *InputSystem) Rebinder() *keybind.Rebinder {
	return i.rebinder
}

func (i *InputSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}

	if pending, waiting := i.rebinder.Pending(); waiting {
		if i.source.IsKeyJustPressed(keybind.CancelKey) {
			i.rebinder.Cancel()
			log.Info().Str("action", string(pending)).Msg("input: rebind cancelled")
		} else {
			i.keys = rebindCandidates(i.source.AppendJustPressedKeys(i.keys[:0]))
			if action, key, ok := i.rebinder.Feed(i.keys); ok {
				log.Info().Str("action", string(action)).Stringer("key", key).Msg("input: rebound")
			}
		}
		// keys pressed to rebind do not also drive the character
		i.clear(w)
		return
	}

	if i.source.IsKeyJustPressed(keybind.RebindKey) {
		action := keybind.Actions[i.rebindNext%len(keybind.Actions)]
		i.rebindNext++
		if err := i.rebinder.Start(action); err != nil {
			log.Error().Err(err).Msg("input: start rebind")
		} else {
			log.Info().
				Str("action", string(action)).
				Stringer("current", i.bindings[action]).
				Msgf("input: press a key for %s (%s cancels)", action, keybind.CancelKey)
		}
		i.clear(w)
		return
	}

	down := i.source.IsKeyPressed
	moveAxis := axis(i.bindings.Pressed(keybind.ActionForward, down), i.bindings.Pressed(keybind.ActionBack, down))
	turnAxis := axis(i.bindings.Pressed(keybind.ActionRight, down), i.bindings.Pressed(keybind.ActionLeft, down))
	sprint := i.bindings.Pressed(keybind.ActionSprint, down)
	jumpPressed := i.bindings.Pressed(keybind.ActionJump, i.source.IsKeyJustPressed)
	release := i.bindings.Pressed(keybind.ActionReleaseCursor, down)

	cx, cy := i.source.CursorPosition()
	lookX, lookY := 0.0, 0.0
	if i.primed {
		lookX, lookY = cx-i.lastX, cy-i.lastY
	}
	i.lastX, i.lastY, i.primed = cx, cy, true

	if pad, ok := i.source.Gamepad(); ok {
		if math.Hypot(pad.LeftX, pad.LeftY) > stickDeadzone {
			// stick up is negative
			moveAxis = -pad.LeftY
			turnAxis = pad.LeftX
		}
		if math.Hypot(pad.RightX, pad.RightY) > stickDeadzone {
			lookX += pad.RightX * stickLookSpeed * dt.Seconds()
			lookY += pad.RightY * stickLookSpeed * dt.Seconds()
		}
		sprint = sprint || pad.Sprint
		jumpPressed = jumpPressed || pad.JumpPressed
	}

	if release {
		// a free cursor does not steer the camera
		lookX, lookY = 0, 0
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveAxis = moveAxis
		input.TurnAxis = turnAxis
		input.Sprint = sprint
		input.JumpPressed = jumpPressed
		input.LookX = lookX
		input.LookY = lookY
		input.ReleaseCursor = release
	})
}

func (i *InputSystem) clear(w *ecs.World) {
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = component.Input{}
	})
}

// rebindCandidates drops the keys reserved for driving the rebinder itself.
func rebindCandidates(keys []ebiten.Key) []ebiten.Key {
	out := keys[:0]
	for _, k := range keys {
		if k != keybind.RebindKey && k != keybind.CancelKey {
			out = append(out, k)
		}
	}
	return out
}

func axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v += 1
	}
	if negative {
		v -= 1
	}
	return v
}

// EbitenInput reads the live ebiten device state.
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (EbitenInput) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (EbitenInput) Gamepad() (GamepadState, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return GamepadState{}, false
	}
	id := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return GamepadState{}, false
	}
	return GamepadState{
		LeftX:       ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		LeftY:       ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		RightX:      ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
		RightY:      ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
		Sprint:      ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftStick),
		JumpPressed: inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom),
	}, true
}
