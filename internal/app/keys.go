//go:build ebiten

package app

import (
	"chance-encounter/internal/encounter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	key    ebiten.Key
	action encounter.Action
}{
	{ebiten.KeyM, encounter.ActionToggleMode},
	{ebiten.KeyR, encounter.ActionReset},
	{ebiten.KeyO, encounter.ActionToggleObstacles},
	{ebiten.KeyP, encounter.ActionMonteCarlo},
	{ebiten.KeySpace, encounter.ActionStep},
	{ebiten.KeyEnter, encounter.ActionToggleAutoRun},
	{ebiten.KeyArrowUp, encounter.ActionMoveUp},
	{ebiten.KeyW, encounter.ActionMoveUp},
	{ebiten.KeyArrowDown, encounter.ActionMoveDown},
	{ebiten.KeyS, encounter.ActionMoveDown},
	{ebiten.KeyArrowLeft, encounter.ActionMoveLeft},
	{ebiten.KeyA, encounter.ActionMoveLeft},
	{ebiten.KeyArrowRight, encounter.ActionMoveRight},
	{ebiten.KeyD, encounter.ActionMoveRight},
}

// pressedActions returns the actions whose keys went down this tick, in
// binding order.
func pressedActions() []encounter.Action {
	var actions []encounter.Action
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	return actions
}
