package components

import "github.com/decker502/horde-survivors/pkg/types"

// AnimationPlayerComponent is the playback state of a skeletal animation.
// It is created by scene instantiation on a descendant of a root entity, never by game logic.
//
// Pure data: the animation package owns the commands (Play, PlayWithTransition) and
// advances Elapsed every tick.
type AnimationPlayerComponent struct {
	// Clip is the clip currently playing; empty until the first play command.
	Clip    types.Handle
	Looping bool
	Elapsed float64 // seconds into Clip

	// Transition is non-nil while cross-fading from a previous clip into Clip.
	Transition *AnimationTransition

	// Commands counts play commands received (debugging aid).
	Commands int
}

// AnimationTransition is an in-progress cross-fade.
type AnimationTransition struct {
	From        types.Handle
	FromElapsed float64 // playback position of From, keeps advancing during the fade
	Duration    float64 // seconds
	Elapsed     float64 // seconds into the fade
}
