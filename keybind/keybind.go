package keybind

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrUnknownAction = errors.New("keybind: unknown action")
	ErrUnknownKey    = errors.New("keybind: unknown key")
)

// Action is a logical input the game reacts to.
type Action string

const (
	ActionForward       Action = "forward"
	ActionBack          Action = "back"
	ActionLeft          Action = "left"
	ActionRight         Action = "right"
	ActionSprint        Action = "sprint"
	ActionJump          Action = "jump"
	ActionReleaseCursor Action = "release_cursor"
)

const (
	// RebindKey starts a rebind for the next action in Actions order.
	RebindKey = ebiten.KeyF1
	// CancelKey aborts a pending rebind.
	CancelKey = ebiten.KeyEscape
)

// Actions lists every bindable action in display order.
var Actions = []Action{
	ActionForward,
	ActionBack,
	ActionLeft,
	ActionRight,
	ActionSprint,
	ActionJump,
	ActionReleaseCursor,
}

func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// Bindings maps each action to one key.
type Bindings map[Action]ebiten.Key

func Default() Bindings {
	return Bindings{
		ActionForward:       ebiten.KeyW,
		ActionBack:          ebiten.KeyS,
		ActionLeft:          ebiten.KeyA,
		ActionRight:         ebiten.KeyD,
		ActionSprint:        ebiten.KeyShiftLeft,
		ActionJump:          ebiten.KeySpace,
		ActionReleaseCursor: ebiten.KeyAltLeft,
	}
}

// Parse overlays named keys on the defaults. Keys use ebiten's names
// ("W", "ShiftLeft", "Space"), case-insensitively.
func Parse(raw map[string]string) (Bindings, error) {
	out := Default()
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action := Action(strings.ToLower(strings.TrimSpace(name)))
		if !action.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(strings.TrimSpace(raw[name]))); err != nil {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownKey, raw[name], action)
		}
		out[action] = key
	}
	return out, nil
}

// Names returns the bindings as action -> key name, the inverse of Parse.
func (b Bindings) Names() map[string]string {
	out := make(map[string]string, len(b))
	for action, key := range b {
		out[string(action)] = key.String()
	}
	return out
}

func (b Bindings) Key(action Action) (ebiten.Key, bool) {
	key, ok := b[action]
	return key, ok
}

// Pressed reports whether the action's key is down according to isDown.
// Unbound actions are never pressed.
func (b Bindings) Pressed(action Action, isDown func(ebiten.Key) bool) bool {
	key, ok := b[action]
	if !ok || isDown == nil {
		return false
	}
	return isDown(key)
}

// ActionFor returns the action bound to key, if any.
func (b Bindings) ActionFor(key ebiten.Key) (Action, bool) {
	for _, action := range Actions {
		if bound, ok := b[action]; ok && bound == key {
			return action, true
		}
	}
	return "", false
}

func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	for action, key := range b {
		out[action] = key
	}
	return out
}
