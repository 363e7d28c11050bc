// internal/component/visual.go
package component

// TrailCircle - след месмера. Каждый круг бьёт каждого врага не больше одного раза.
type TrailCircle struct {
	ID     uint64
	X, Y   float64
	Radius float64
	Age    float64
	Life   float64
}

// LightningStrike - визуальный эффект удара молнии.
type LightningStrike struct {
	Points   []Position // ломаная сверху вниз до цели
	Timer    float64    // Сколько времени эффект уже активен
	Duration float64    // Общая продолжительность эффекта
}

// Explosion - расширяющееся кольцо взрыва.
type Explosion struct {
	X, Y      float64
	MaxRadius float64
	Timer     float64
	Duration  float64
}

// Progress - доля прошедшего времени эффекта в [0, 1].
func (e Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Timer / e.Duration
	if p > 1 {
		return 1
	}
	return p
}
