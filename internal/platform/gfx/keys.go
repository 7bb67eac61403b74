package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/meteor-dodge/internal/core"
)

// keyActions maps window keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyQ:          core.ActionQuit,
}

// ActionForKey returns the action bound to a key-down event.
// With ctrl held, C quits.
func ActionForKey(k ebiten.Key, ctrl bool) core.Action {
	if ctrl && k == ebiten.KeyC {
		return core.ActionQuit
	}
	return keyActions[k]
}

// AppendActions pushes the actions of the given key-down events in order.
func AppendActions(frame *core.InputFrame, keys []ebiten.Key, ctrl bool) {
	for _, k := range keys {
		frame.Push(ActionForKey(k, ctrl))
	}
}
