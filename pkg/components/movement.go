package components

import "github.com/go-gl/mathgl/mgl32"

// VelocityComponent is the linear velocity in world units per second.
type VelocityComponent struct {
	Value mgl32.Vec3
}

// AccelerationComponent is the linear acceleration in world units per second squared.
type AccelerationComponent struct {
	Value mgl32.Vec3
}
