package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeInput is an InputSource driven by the test.
type fakeInput struct {
	pressed     map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed:     make(map[ebiten.Key]bool),
		justPressed: make(map[ebiten.Key]bool),
	}
}

func (f *fakeInput) Pressed(key ebiten.Key) bool     { return f.pressed[key] }
func (f *fakeInput) JustPressed(key ebiten.Key) bool { return f.justPressed[key] }
