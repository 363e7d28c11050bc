// internal/system/experience.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

// ExperienceSystem управляет сферами опыта: появление, притяжение к игроку, сбор.
type ExperienceSystem struct {
	cfg           *config.ExperienceBalance
	collectRadius float64
	orbs          []component.ExperienceOrb
	free          []int
	total         float64
	target        Target
	dispatcher    *event.Dispatcher
}

func NewExperienceSystem(balance *config.Balance, target Target, dispatcher *event.Dispatcher) *ExperienceSystem {
	s := &ExperienceSystem{
		cfg:           &balance.Experience,
		collectRadius: balance.Experience.PickupRadius + balance.Player.HitboxWidth/2,
		orbs:          make([]component.ExperienceOrb, balance.Experience.MaxOrbs),
		free:          make([]int, 0, balance.Experience.MaxOrbs),
		target:        target,
		dispatcher:    dispatcher,
	}
	s.ClearAll()
	return s
}

// SpawnOrb кладёт сферу в точку. false, если пул сфер заполнен.
func (s *ExperienceSystem) SpawnOrb(x, y float64) bool {
	if len(s.free) == 0 {
		return false
	}
	idx := s.free[len(s.free)-1]
	s.free = s.free[:len(s.free)-1]
	s.orbs[idx] = component.ExperienceOrb{
		Index:     idx,
		Active:    true,
		Position:  component.Position{X: x, Y: y},
		Value:     s.cfg.OrbValue,
		Remaining: s.cfg.OrbLifespan,
	}
	return true
}

// Update старит сферы, притягивает ближние и собирает те, что коснулись игрока.
func (s *ExperienceSystem) Update(deltaTime float64) {
	px, py := s.target.Pos()
	collectSq := s.collectRadius * s.collectRadius
	magnetSq := s.cfg.MagnetRadius * s.cfg.MagnetRadius

	for i := range s.orbs {
		orb := &s.orbs[i]
		if !orb.Active {
			continue
		}
		orb.Remaining -= deltaTime
		if orb.Remaining <= 0 {
			s.release(orb)
			continue
		}

		distSq := utils.DistanceSq(orb.Position.X, orb.Position.Y, px, py)
		if distSq <= collectSq {
			s.collect(orb)
			continue
		}
		orb.Attracted = distSq <= magnetSq
		if orb.Attracted {
			dist := math.Sqrt(distSq)
			step := math.Min(s.cfg.MagnetSpeed*deltaTime, dist)
			orb.Position.X += (px - orb.Position.X) / dist * step
			orb.Position.Y += (py - orb.Position.Y) / dist * step
		}
	}
}

func (s *ExperienceSystem) collect(orb *component.ExperienceOrb) {
	value := orb.Value
	s.release(orb)
	s.total += value
	s.dispatcher.Dispatch(event.Event{
		Type: event.ExperienceCollected,
		Data: event.ExperienceData{Value: value, Total: s.total},
	})
}

func (s *ExperienceSystem) release(orb *component.ExperienceOrb) {
	orb.Active = false
	orb.Attracted = false
	s.free = append(s.free, orb.Index)
}

// ForEachActive обходит активные сферы.
func (s *ExperienceSystem) ForEachActive(fn func(orb *component.ExperienceOrb)) {
	for i := range s.orbs {
		if s.orbs[i].Active {
			fn(&s.orbs[i])
		}
	}
}

func (s *ExperienceSystem) ActiveCount() int { return len(s.orbs) - len(s.free) }

// Total - весь собранный за забег опыт.
func (s *ExperienceSystem) Total() float64 { return s.total }

// ClearAll убирает все сферы с поля.
func (s *ExperienceSystem) ClearAll() {
	s.free = s.free[:0]
	for i := len(s.orbs) - 1; i >= 0; i-- {
		s.orbs[i] = component.ExperienceOrb{Index: i}
		s.free = append(s.free, i)
	}
}

// Reset очищает поле и обнуляет счётчик опыта.
func (s *ExperienceSystem) Reset() {
	s.ClearAll()
	s.total = 0
}
