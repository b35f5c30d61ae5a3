package system

import (
	"testing"

	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	input := &component.Input{}
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), input))
	require.NoError(t, ecs.Add(w, e, component.CursorComponent.Kind(), &component.Cursor{}))

	var calls []bool
	sys := NewCursorSystem(func(captured bool) { calls = append(calls, captured) })

	sys.Update(w, frame)
	sys.Update(w, frame)
	assert.Equal(t, []bool{true}, calls, "captured once on start")

	input.ReleaseCursor = true
	sys.Update(w, frame)
	input.ReleaseCursor = false
	sys.Update(w, frame)
	assert.Equal(t, []bool{true, false, true}, calls)
}
