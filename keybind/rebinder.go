package keybind

import "github.com/hajimehoshi/ebiten/v2"

// Rebinder waits for the next key press and binds it to a pending action.
// If the key already belongs to another action, the two actions swap keys.
type Rebinder struct {
	bindings Bindings
	pending  Action
	waiting  bool
}

func NewRebinder(b Bindings) *Rebinder {
	if b == nil {
		b = Default()
	}
	return &Rebinder{bindings: b}
}

// Start begins waiting for a key for action.
func (r *Rebinder) Start(action Action) error {
	if !action.Valid() {
		return ErrUnknownAction
	}
	r.pending = action
	r.waiting = true
	return nil
}

// Feed consumes this frame's newly pressed keys. It returns true when a key
// was bound, after which the rebinder is idle again.
func (r *Rebinder) Feed(keys []ebiten.Key) (Action, ebiten.Key, bool) {
	if r == nil || !r.waiting || len(keys) == 0 {
		return "", 0, false
	}
	key := keys[0]
	action := r.pending

	if other, ok := r.bindings.ActionFor(key); ok && other != action {
		if old, had := r.bindings[action]; had {
			r.bindings[other] = old
		} else {
			delete(r.bindings, other)
		}
	}
	r.bindings[action] = key
	r.Cancel()
	return action, key, true
}

func (r *Rebinder) Cancel() {
	r.pending = ""
	r.waiting = false
}

// Pending returns the action awaiting a key.
func (r *Rebinder) Pending() (Action, bool) {
	return r.pending, r.waiting
}

func (r *Rebinder) Bindings() Bindings {
	return r.bindings
}
