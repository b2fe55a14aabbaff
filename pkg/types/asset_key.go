// Package types defines the shared identifier types used across packages.
package types

// AssetKey is the symbolic name of a mesh (+ animation set) bundle.
// It is attached to a root entity at spawn time and never changes afterwards.
type AssetKey string

const (
	AssetKeyPlayer       AssetKey = "player"
	AssetKeyEnemy        AssetKey = "enemy"
	AssetKeyProjectile   AssetKey = "projectile"
	AssetKeyDestructible AssetKey = "destructible"
)

// String implements fmt.Stringer.
func (k AssetKey) String() string {
	return string(k)
}
