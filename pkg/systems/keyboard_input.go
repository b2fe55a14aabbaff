package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource is the pressed-state of keys, polled once per tick.
type InputSource interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

// KeyboardInput reads the ebiten keyboard state.
type KeyboardInput struct{}

// Pressed implements InputSource.
func (KeyboardInput) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// JustPressed implements InputSource.
func (KeyboardInput) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
