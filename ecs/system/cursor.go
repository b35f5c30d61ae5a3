package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/rs/zerolog/log"
)

// CursorSystem captures the pointer for camera look and frees it while the
// release-cursor action is held.
type CursorSystem struct {
	apply func(captured bool)
}

func NewCursorSystem(apply func(captured bool)) *CursorSystem {
	if apply == nil {
		apply = func(captured bool) {
			if captured {
				ebiten.SetCursorMode(ebiten.CursorModeCaptured)
				return
			}
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}
	return &CursorSystem{apply: apply}
}

func (c *CursorSystem) Update(w *ecs.World, _ time.Duration) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.CursorComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, cursor *component.Cursor, input *component.Input) {
		want := !input.ReleaseCursor
		if cursor.Captured == want {
			return
		}
		cursor.Captured = want
		c.apply(want)
		log.Debug().Bool("captured", want).Msg("cursor: mode changed")
	})
}
