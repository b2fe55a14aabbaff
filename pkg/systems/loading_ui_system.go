package systems

import (
	"image/color"

	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/entities"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Loading bar layout, relative to the screen size.
const (
	loadingBarWidthRatio = 0.48 // 80% of a 60% wide panel
	loadingBarHeight     = 20
	loadingBarBorder     = 2
)

var (
	loadingBackground = color.RGBA{20, 20, 28, 255}
	loadingBarColor   = color.RGBA{255, 255, 255, 255}
)

// LoadingUISystem keeps the loading bar in sync with LoadingUpdate events and draws it.
type LoadingUISystem struct {
	entityManager *ecs.EntityManager
	updates       *events.Queue[assets.LoadingUpdate]
	bar           ecs.EntityID
}

// NewLoadingUISystem creates the system and its bar entity.
func NewLoadingUISystem(em *ecs.EntityManager, updates *events.Queue[assets.LoadingUpdate], total int) *LoadingUISystem {
	return &LoadingUISystem{
		entityManager: em,
		updates:       updates,
		bar:           entities.NewLoadingBarEntity(em, total),
	}
}

// Update applies every pending progress event in order.
func (s *LoadingUISystem) Update(deltaTime float64) {
	for _, u := range s.updates.Drain() {
		bar, ok := ecs.GetComponent[*components.LoadingBarComponent](s.entityManager, s.bar)
		if !ok {
			continue
		}
		bar.Loaded = u.Loaded
		bar.Total = u.Total
		bar.WidthPercent = u.Percent()
	}
}

// Hide removes the bar.
func (s *LoadingUISystem) Hide() {
	if s.bar == 0 {
		return
	}
	s.entityManager.DestroyEntity(s.bar)
	s.bar = 0
}

// Bar returns the loading bar entity (0 once hidden).
func (s *LoadingUISystem) Bar() ecs.EntityID {
	return s.bar
}

// Draw renders the loading screen while the bar exists.
func (s *LoadingUISystem) Draw(screen *ebiten.Image) {
	bar, ok := ecs.GetComponent[*components.LoadingBarComponent](s.entityManager, s.bar)
	if !ok {
		return
	}

	size := screen.Bounds().Size()
	w, h := float32(size.X), float32(size.Y)
	screen.Fill(loadingBackground)

	barW := w * loadingBarWidthRatio
	x := (w - barW) / 2
	y := h/2 - loadingBarHeight/2

	vector.StrokeRect(screen, x, y, barW, loadingBarHeight, loadingBarBorder, loadingBarColor, false)
	fill := barW * float32(bar.WidthPercent/100)
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, loadingBarHeight, loadingBarColor, false)
	}

	ebitenutil.DebugPrintAt(screen, "Horde Survivors", int(x), int(y)-48)
	ebitenutil.DebugPrintAt(screen, "loading...", int(x), int(y)-28)
}
