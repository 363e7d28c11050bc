// internal/system/movement.go
package system

import (
	"math"

	"go-survivors/internal/entity"
)

// MovementSystem применяет скорости игрока и врагов, держит их в границах мира
// и расталкивает пересекающихся врагов.
type MovementSystem struct {
	world      *entity.World
	player     *entity.Player
	enemies    *EnemySystem
	separation float64
}

func NewMovementSystem(world *entity.World, player *entity.Player, enemies *EnemySystem) *MovementSystem {
	return &MovementSystem{
		world:      world,
		player:     player,
		enemies:    enemies,
		separation: enemies.cfg.SeparationDistance,
	}
}

func (s *MovementSystem) Update(deltaTime float64) {
	p := s.player
	p.Position.Integrate(p.Velocity, deltaTime)
	hw, hh := p.HalfSize()
	p.Position.X, p.Position.Y = s.world.Clamp(p.Position.X, p.Position.Y, hw, hh)

	pool := s.enemies.pool
	for i := range pool {
		e := &pool[i]
		if !e.Active {
			continue
		}
		e.Position.Integrate(e.Velocity, deltaTime)
		e.Position.X, e.Position.Y = s.world.Clamp(e.Position.X, e.Position.Y, e.HalfSize, e.HalfSize)
	}
	s.separateEnemies()
}

// separateEnemies расталкивает пересекающихся врагов поровну.
// Пары дальше separation отсекаются по квадрату расстояния без корня.
func (s *MovementSystem) separateEnemies() {
	pool := s.enemies.pool
	thresholdSq := s.separation * s.separation
	for i := range pool {
		a := &pool[i]
		if !a.Active {
			continue
		}
		for j := i + 1; j < len(pool); j++ {
			b := &pool[j]
			if !b.Active {
				continue
			}
			dx := b.Position.X - a.Position.X
			dy := b.Position.Y - a.Position.Y
			distSq := dx*dx + dy*dy
			if distSq >= thresholdSq {
				continue
			}
			minDist := a.HalfSize + b.HalfSize
			if distSq >= minDist*minDist {
				continue
			}
			dist := math.Sqrt(distSq)
			nx, ny := 1.0, 0.0
			if dist > 0 {
				nx, ny = dx/dist, dy/dist
			}
			push := (minDist - dist) / 2
			a.Position.X -= nx * push
			a.Position.Y -= ny * push
			b.Position.X += nx * push
			b.Position.Y += ny * push
		}
	}
}
