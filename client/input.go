package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"slay/world"
)

// ReadInput polls the keyboard and mouse for one frame. Q or Escape ends the game with
// ebiten.Termination.
func ReadInput(camera Camera, now float64) (world.Input, error) {
	keys := inpututil.AppendPressedKeys(nil)
	intents, quit := intentsFor(keys, ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	if quit {
		return world.Input{}, ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	cursor := camera.ScreenToWorld(cp.Vector{X: float64(x), Y: float64(y)})
	return world.NewInput(now, cursor, intents...), nil
}

func intentsFor(keys []ebiten.Key, fire bool) (intents []world.Intent, quit bool) {
	for _, key := range keys {
		switch key {
		case ebiten.KeyW:
			intents = append(intents, world.IntentThrust)
		case ebiten.KeyS:
			intents = append(intents, world.IntentBrake)
		case ebiten.KeyQ, ebiten.KeyEscape:
			return nil, true
		}
	}
	if fire {
		intents = append(intents, world.IntentFire)
	}
	return intents, false
}
