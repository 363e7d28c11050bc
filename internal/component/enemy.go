package component

import (
	"go-survivors/internal/defs"
	"go-survivors/internal/timer"
)

// Enemy - запись в пуле врагов. Index - постоянная позиция в пуле.
type Enemy struct {
	Index      int
	Active     bool
	Tier       defs.EnemyTier
	Position   Position
	Velocity   Velocity
	Health     Health
	Speed      float64
	Scale      float64
	HalfSize   float64 // половина стороны хитбокса
	Renderable Renderable

	Tinted      bool
	KnockedBack bool
	tintTimer   *timer.Timer
	knockTimer  *timer.Timer
}

// SetTint включает подсветку урона и заменяет таймер её снятия.
func (e *Enemy) SetTint(t *timer.Timer) {
	e.tintTimer.Cancel()
	e.Tinted = true
	e.tintTimer = t
}

// ClearTint снимает подсветку урона.
func (e *Enemy) ClearTint() {
	e.tintTimer.Cancel()
	e.tintTimer = nil
	e.Tinted = false
}

// SetKnockback включает отбрасывание и заменяет таймер его окончания.
func (e *Enemy) SetKnockback(t *timer.Timer) {
	e.knockTimer.Cancel()
	e.KnockedBack = true
	e.knockTimer = t
}

// ClearKnockback завершает отбрасывание.
func (e *Enemy) ClearKnockback() {
	e.knockTimer.Cancel()
	e.knockTimer = nil
	e.KnockedBack = false
}

// Release возвращает запись в пул: таймеры отменяются, состояние сбрасывается.
func (e *Enemy) Release() {
	e.ClearTint()
	e.ClearKnockback()
	e.Active = false
	e.Velocity = Velocity{}
}
