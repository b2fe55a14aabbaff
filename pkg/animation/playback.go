package animation

import (
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/decker502/horde-survivors/pkg/utils"
)

// Play starts clip immediately, without blending.
func Play(p *components.AnimationPlayerComponent, clip types.Handle, looping bool) {
	p.Clip = clip
	p.Looping = looping
	p.Elapsed = 0
	p.Transition = nil
	p.Commands++
}

// PlayWithTransition cross-fades from the current clip into clip over duration seconds.
// Requesting the clip that is already playing keeps its position and any running fade,
// so callers may repeat the request every tick. With nothing playing yet it behaves like Play.
func PlayWithTransition(p *components.AnimationPlayerComponent, clip types.Handle, duration float64, looping bool) {
	if p.Clip == clip {
		p.Looping = looping
		p.Commands++
		return
	}
	if p.Clip == "" || duration <= 0 {
		Play(p, clip, looping)
		return
	}

	p.Transition = &components.AnimationTransition{
		From:        p.Clip,
		FromElapsed: p.Elapsed,
		Duration:    duration,
	}
	p.Elapsed = 0
	p.Clip = clip
	p.Looping = looping
	p.Commands++
}

// Weight returns the blend weight of the current clip, 1 when no fade is running.
// The fade follows an ease-in-out curve.
func Weight(p *components.AnimationPlayerComponent) float64 {
	if p.Transition == nil || p.Transition.Duration <= 0 {
		return 1
	}
	return utils.EaseInOutCubic(utils.Clamp01(p.Transition.Elapsed / p.Transition.Duration))
}

// Playback advances every animation player.
type Playback struct {
	entityManager *ecs.EntityManager
}

// NewPlayback creates the playback system.
func NewPlayback(em *ecs.EntityManager) *Playback {
	return &Playback{entityManager: em}
}

// Update advances clip time and finishes cross-fades.
func (s *Playback) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationPlayerComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.AnimationPlayerComponent](s.entityManager, id)
		if p.Clip == "" {
			continue
		}
		p.Elapsed += deltaTime

		if t := p.Transition; t != nil {
			t.Elapsed += deltaTime
			t.FromElapsed += deltaTime
			if t.Elapsed >= t.Duration {
				p.Transition = nil
			}
		}
	}
}
