// internal/component/projectile.go
package component

import "go-survivors/internal/defs"

// Projectile - запись в пуле снарядов.
type Projectile struct {
	Index     int
	Kind      defs.ProjectileKind
	Active    bool
	Position  Position
	Velocity  Velocity
	Damage    float64
	Scale     float64
	Radius    float64
	Remaining float64 // оставшееся время жизни, сек
}
