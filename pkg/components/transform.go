package components

import "github.com/go-gl/mathgl/mgl32"

// TransformComponent is the local transform of an entity relative to its parent
// (or to the world for root entities).
type TransformComponent struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// IdentityTransform returns a transform with no translation, no rotation and unit scale.
func IdentityTransform() TransformComponent {
	return TransformComponent{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// TransformFromTranslation returns an identity transform moved to t.
func TransformFromTranslation(t mgl32.Vec3) TransformComponent {
	tr := IdentityTransform()
	tr.Translation = t
	return tr
}

// Matrix returns the 4x4 local matrix (translation * rotation * scale).
func (t TransformComponent) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
