// internal/system/utils.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/utils"
)

// Target - то, к чему тянутся враги и сферы опыта (игрок).
type Target interface {
	Pos() (float64, float64)
	Level() int
}

// OrbDropper - куда падает опыт с побеждённых врагов.
type OrbDropper interface {
	SpawnOrb(x, y float64) bool
}

// circleOverlapsEnemy - пересечение круга с хитбоксом врага (как с кругом).
func circleOverlapsEnemy(x, y, radius float64, e *component.Enemy) bool {
	r := radius + e.HalfSize
	return utils.DistanceSq(x, y, e.Position.X, e.Position.Y) < r*r
}
