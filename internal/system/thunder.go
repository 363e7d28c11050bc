// internal/system/thunder.go
package system

import (
	"cmp"
	"slices"

	"go-survivors/internal/config"
	"go-survivors/internal/timer"
	"go-survivors/internal/utils"
)

// ThunderSystem раз в Interval бьёт молнией по level+1 ближайшим видимым врагам.
// Каждый удар задевает всех видимых врагов в радиусе.
type ThunderSystem struct {
	cfg       *config.ThunderBalance
	enemies   *EnemySystem
	target    Target
	effects   *VisualEffectSystem
	scheduler *timer.Scheduler
	timer     *timer.Timer
	active    bool
	level     int
	buf       []int
}

func NewThunderSystem(balance *config.Balance, enemies *EnemySystem, target Target, effects *VisualEffectSystem, scheduler *timer.Scheduler) *ThunderSystem {
	return &ThunderSystem{
		cfg:       &balance.Thunder,
		enemies:   enemies,
		target:    target,
		effects:   effects,
		scheduler: scheduler,
	}
}

// Activate включает молнию. Повторный вызов ничего не делает.
func (s *ThunderSystem) Activate() {
	if s.active {
		return
	}
	s.active = true
	s.timer = s.scheduler.Every(s.cfg.Interval, func() { s.Strike() })
}

// Deactivate выключает молнию и убирает её эффекты.
func (s *ThunderSystem) Deactivate() {
	if !s.active {
		return
	}
	s.active = false
	s.timer.Cancel()
	s.timer = nil
	s.effects.Clear()
}

// Reset выключает молнию и сбрасывает уровень.
func (s *ThunderSystem) Reset() {
	s.Deactivate()
	s.level = 0
}

// IncreaseLevel добавляет цель удара, не выше MaxLevel.
func (s *ThunderSystem) IncreaseLevel() {
	if s.level < s.cfg.MaxLevel {
		s.level++
	}
}

func (s *ThunderSystem) IsActive() bool { return s.active }
func (s *ThunderSystem) Level() int     { return s.level }

// StrikeCount - сколько врагов бьёт один залп.
func (s *ThunderSystem) StrikeCount() int { return s.level + 1 }

// Strike выполняет один залп и возвращает индексы врагов, в которых попали молнии.
func (s *ThunderSystem) Strike() []int {
	s.buf = s.enemies.AppendVisible(s.buf[:0])
	if len(s.buf) == 0 {
		return nil
	}
	px, py := s.target.Pos()
	slices.SortStableFunc(s.buf, func(a, b int) int {
		ea, eb := s.enemies.Enemy(a), s.enemies.Enemy(b)
		return cmp.Compare(
			utils.DistanceSq(px, py, ea.Position.X, ea.Position.Y),
			utils.DistanceSq(px, py, eb.Position.X, eb.Position.Y),
		)
	})
	n := min(s.StrikeCount(), len(s.buf))
	targets := slices.Clone(s.buf[:n])

	// позиции фиксируются до урона: сплэш может убить следующую цель
	type point struct{ x, y float64 }
	points := make([]point, n)
	for i, idx := range targets {
		e := s.enemies.Enemy(idx)
		points[i] = point{e.Position.X, e.Position.Y}
	}
	for _, p := range points {
		s.effects.AddLightning(p.x, p.y, s.cfg.StrikeDuration)
		s.effects.AddExplosion(p.x, p.y, s.cfg.Radius, s.cfg.ExplosionDuration)
		s.enemies.DamageInRadius(p.x, p.y, s.cfg.Radius, s.cfg.Damage)
	}
	return targets
}

// Cooldown - время до следующего залпа.
func (s *ThunderSystem) Cooldown() float64 {
	return s.timer.Remaining()
}
