// internal/system/visual_effect.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/utils"
)

const (
	lightningHeight   = 320.0 // откуда падает молния над целью
	lightningSegments = 7
	lightningJitter   = 18.0
)

// VisualEffectSystem управляет короткоживущими эффектами: молнии и взрывы.
type VisualEffectSystem struct {
	rng        *utils.PRNGService
	strikes    []component.LightningStrike
	explosions []component.Explosion
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{rng: rng}
}

// AddLightning добавляет ломаную молнию сверху до точки (x, y).
// Форма генерируется один раз, чтобы молния не дрожала между кадрами.
func (s *VisualEffectSystem) AddLightning(x, y, duration float64) {
	points := make([]component.Position, 0, lightningSegments+1)
	for i := 0; i <= lightningSegments; i++ {
		t := float64(i) / lightningSegments
		px := x
		if i > 0 && i < lightningSegments {
			px += (s.rng.Float64()*2 - 1) * lightningJitter
		}
		points = append(points, component.Position{X: px, Y: y - lightningHeight*(1-t)})
	}
	s.strikes = append(s.strikes, component.LightningStrike{Points: points, Duration: duration})
}

// AddExplosion добавляет расширяющееся кольцо.
func (s *VisualEffectSystem) AddExplosion(x, y, radius, duration float64) {
	s.explosions = append(s.explosions, component.Explosion{X: x, Y: y, MaxRadius: radius, Duration: duration})
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	strikes := s.strikes[:0]
	for _, st := range s.strikes {
		st.Timer += deltaTime
		if st.Timer < st.Duration {
			strikes = append(strikes, st)
		}
	}
	s.strikes = strikes

	explosions := s.explosions[:0]
	for _, ex := range s.explosions {
		ex.Timer += deltaTime
		if ex.Timer < ex.Duration {
			explosions = append(explosions, ex)
		}
	}
	s.explosions = explosions
}

func (s *VisualEffectSystem) Strikes() []component.LightningStrike { return s.strikes }
func (s *VisualEffectSystem) Explosions() []component.Explosion    { return s.explosions }

// Clear удаляет все эффекты.
func (s *VisualEffectSystem) Clear() {
	s.strikes = s.strikes[:0]
	s.explosions = s.explosions[:0]
}
