package types

import "fmt"

// AnimationType is the closed set of character animations.
// The zero value is Idle.
type AnimationType int

const (
	AnimationIdle AnimationType = iota
	AnimationWalk
	AnimationRun
	AnimationTakeHit
	AnimationDie
)

// AllAnimationTypes lists every AnimationType in declaration order.
var AllAnimationTypes = []AnimationType{
	AnimationIdle,
	AnimationWalk,
	AnimationRun,
	AnimationTakeHit,
	AnimationDie,
}

var animationTypeNames = map[AnimationType]string{
	AnimationIdle:    "idle",
	AnimationWalk:    "walk",
	AnimationRun:     "run",
	AnimationTakeHit: "take_hit",
	AnimationDie:     "die",
}

// String returns the lowercase config name of the animation ("idle", "take_hit", ...).
func (t AnimationType) String() string {
	if name, ok := animationTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AnimationType(%d)", int(t))
}

// ParseAnimationType maps a config name back to its AnimationType.
func ParseAnimationType(name string) (AnimationType, error) {
	for t, n := range animationTypeNames {
		if n == name {
			return t, nil
		}
	}
	return AnimationIdle, fmt.Errorf("unknown animation type %q", name)
}
