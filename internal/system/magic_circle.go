// internal/system/magic_circle.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/timer"
	"go-survivors/internal/utils"
)

// MagicCircleSystem - вращающийся круг вокруг игрока, который
// каждые TickInterval бьёт всех видимых врагов в радиусе.
type MagicCircleSystem struct {
	cfg       *config.MagicCircleBalance
	enemies   *EnemySystem
	target    Target
	scheduler *timer.Scheduler
	timer     *timer.Timer
	active    bool
	level     int
	angle     float64
}

func NewMagicCircleSystem(balance *config.Balance, enemies *EnemySystem, target Target, scheduler *timer.Scheduler) *MagicCircleSystem {
	return &MagicCircleSystem{
		cfg:       &balance.MagicCircle,
		enemies:   enemies,
		target:    target,
		scheduler: scheduler,
	}
}

// Activate включает круг. Повторный вызов ничего не делает.
func (s *MagicCircleSystem) Activate() {
	if s.active {
		return
	}
	s.active = true
	s.angle = 0
	s.timer = s.scheduler.Every(s.cfg.TickInterval, func() { s.Pulse() })
}

// Deactivate выключает круг.
func (s *MagicCircleSystem) Deactivate() {
	if !s.active {
		return
	}
	s.active = false
	s.timer.Cancel()
	s.timer = nil
}

// Reset выключает круг и сбрасывает уровень.
func (s *MagicCircleSystem) Reset() {
	s.Deactivate()
	s.level = 0
	s.angle = 0
}

// IncreaseLevel увеличивает радиус и урон, не выше MaxLevel.
func (s *MagicCircleSystem) IncreaseLevel() {
	if s.level < s.cfg.MaxLevel {
		s.level++
	}
}

// Update вращает круг.
func (s *MagicCircleSystem) Update(deltaTime float64) {
	if !s.active {
		return
	}
	s.angle = utils.NormalizeAngle(s.angle + s.cfg.RotationSpeed*deltaTime)
}

// Pulse наносит урон всем видимым врагам в радиусе. Возвращает число побеждённых.
func (s *MagicCircleSystem) Pulse() int {
	if !s.active {
		return 0
	}
	px, py := s.target.Pos()
	return s.enemies.DamageInRadius(px, py, s.Radius(), s.Damage())
}

func (s *MagicCircleSystem) Radius() float64 {
	return s.cfg.BaseRadius + s.cfg.RadiusPerLevel*float64(s.level)
}

func (s *MagicCircleSystem) Damage() float64 {
	return s.cfg.BaseDamage + s.cfg.DamagePerLevel*float64(s.level)
}

func (s *MagicCircleSystem) IsActive() bool { return s.active }
func (s *MagicCircleSystem) Level() int     { return s.level }
func (s *MagicCircleSystem) Angle() float64 { return s.angle }

// Elements - позиции вращающихся элементов на окружности.
func (s *MagicCircleSystem) Elements() []component.Position {
	n := s.cfg.Elements
	if n <= 0 {
		return nil
	}
	px, py := s.target.Pos()
	r := s.Radius()
	out := make([]component.Position, n)
	for i := range out {
		a := s.angle + 2*math.Pi*float64(i)/float64(n)
		out[i] = component.Position{X: px + math.Cos(a)*r, Y: py + math.Sin(a)*r}
	}
	return out
}
