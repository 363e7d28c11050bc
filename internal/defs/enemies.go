// internal/defs/enemies.go
package defs

import "image/color"

// EnemyTier - класс силы врага.
type EnemyTier int

const (
	Tier1 EnemyTier = iota + 1
	Tier2
	Tier3
)

// EnemyDefinition holds all the static data for a specific enemy tier.
type EnemyDefinition struct {
	Tier     EnemyTier `json:"tier" yaml:"tier"`
	Name     string    `json:"name" yaml:"name"`
	Health   float64   `json:"health" yaml:"health"`
	Speed    float64   `json:"speed" yaml:"speed"`
	Scale    float64   `json:"scale" yaml:"scale"`
	DropRate float64   `json:"drop_rate" yaml:"drop_rate"` // шанс выпадения сферы опыта
	Visuals  Visuals   `json:"visuals" yaml:"visuals"`
}

// DefaultEnemies возвращает стандартные тиры: чем выше тир, тем медленнее и крупнее враг.
func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{Tier: Tier1, Name: "Drone", Health: 3, Speed: 120, Scale: 0.6, DropRate: 1.0, Visuals: Visuals{Color: color.RGBA{R: 230, G: 200, B: 40, A: 255}, RadiusFactor: 0.5}},
		{Tier: Tier2, Name: "Worker", Health: 5, Speed: 100, Scale: 1.2, DropRate: 1.0, Visuals: Visuals{Color: color.RGBA{R: 230, G: 130, B: 30, A: 255}, RadiusFactor: 0.5}},
		{Tier: Tier3, Name: "Soldier", Health: 7, Speed: 90, Scale: 1.4, DropRate: 1.0, Visuals: Visuals{Color: color.RGBA{R: 200, G: 50, B: 40, A: 255}, RadiusFactor: 0.5}},
	}
}
