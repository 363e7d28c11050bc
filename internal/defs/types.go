// internal/defs/types.go
package defs

import "image/color"

// ProjectileKind - имя пула снарядов.
type ProjectileKind string

const (
	ProjectilePlayer ProjectileKind = "player_projectile"
)

// Visuals defines how an entity is drawn.
type Visuals struct {
	Color        color.RGBA `json:"color" yaml:"color"`
	RadiusFactor float64    `json:"radius_factor" yaml:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width" yaml:"stroke_width"`
}
