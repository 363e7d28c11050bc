// internal/system/upgrade.go
package system

import (
	"log"
	"maps"

	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
)

// UpgradeContext - всё, на что может влиять улучшение.
type UpgradeContext struct {
	Player      *entity.Player
	Projectiles *ProjectileSystem
	Thunder     *ThunderSystem
	MagicCircle *MagicCircleSystem
}

// Effect применяет улучшение к контексту.
type Effect interface {
	Apply(ctx *UpgradeContext)
}

// EffectFunc позволяет использовать функцию как Effect.
type EffectFunc func(ctx *UpgradeContext)

func (f EffectFunc) Apply(ctx *UpgradeContext) { f(ctx) }

// Upgrade - определение из каталога вместе с эффектом.
type Upgrade struct {
	defs.UpgradeDefinition
	Effect Effect
}

var thunderLevelUp = EffectFunc(func(ctx *UpgradeContext) { ctx.Thunder.IncreaseLevel() })
var circleLevelUp = EffectFunc(func(ctx *UpgradeContext) { ctx.MagicCircle.IncreaseLevel() })

// DefaultEffects - эффекты для каталога defs.UpgradeLibrary.
func DefaultEffects() map[string]Effect {
	return map[string]Effect{
		defs.UpgradeDamage:          EffectFunc(func(ctx *UpgradeContext) { ctx.Player.IncreaseDamage(0.25) }),
		defs.UpgradeAttackSpeed:     EffectFunc(func(ctx *UpgradeContext) { ctx.Player.IncreaseAttackSpeed(0.15) }),
		defs.UpgradeProjectileCount: EffectFunc(func(ctx *UpgradeContext) { ctx.Player.IncreaseProjectileCount(1) }),
		defs.UpgradeProjectileSize:  EffectFunc(func(ctx *UpgradeContext) { ctx.Player.IncreaseProjectileSize(0.2) }),
		defs.UpgradeMaxHealth:       EffectFunc(func(ctx *UpgradeContext) { ctx.Player.IncreaseMaxHealth(20) }),
		defs.UpgradeMovementSpeed:   EffectFunc(func(ctx *UpgradeContext) { ctx.Player.IncreaseMovementSpeed(0.1) }),
		defs.UpgradeThunderMagic:    EffectFunc(func(ctx *UpgradeContext) { ctx.Thunder.Activate() }),
		defs.UpgradeDoubleThunder:   thunderLevelUp,
		defs.UpgradeTripleThunder:   thunderLevelUp,
		defs.UpgradeThunderStorm:    thunderLevelUp,
		defs.UpgradeMagicCircle:     EffectFunc(func(ctx *UpgradeContext) { ctx.MagicCircle.Activate() }),
		defs.UpgradeEmpoweredCircle: circleLevelUp,
		defs.UpgradeGreaterCircle:   circleLevelUp,
		defs.UpgradeArcaneCircle:    circleLevelUp,
	}
}

// UpgradeSystem хранит каталог улучшений, уровни купленных и выбирает предложения.
type UpgradeSystem struct {
	ctx      *UpgradeContext
	rng      *utils.PRNGService
	catalog  []Upgrade
	index    map[string]int
	acquired map[string]int
}

// NewUpgradeSystem собирает каталог из определений и эффектов.
// Определения без эффекта пропускаются с предупреждением.
func NewUpgradeSystem(ctx *UpgradeContext, rng *utils.PRNGService, library []defs.UpgradeDefinition, effects map[string]Effect) *UpgradeSystem {
	s := &UpgradeSystem{
		ctx:      ctx,
		rng:      rng,
		index:    make(map[string]int, len(library)),
		acquired: make(map[string]int),
	}
	for _, def := range library {
		effect, ok := effects[def.ID]
		if !ok {
			log.Printf("UpgradeSystem: no effect for upgrade %q, skipping", def.ID)
			continue
		}
		if _, dup := s.index[def.ID]; dup {
			log.Printf("UpgradeSystem: duplicate upgrade %q, skipping", def.ID)
			continue
		}
		s.index[def.ID] = len(s.catalog)
		s.catalog = append(s.catalog, Upgrade{UpgradeDefinition: def, Effect: effect})
	}
	return s
}

// GetRandomUpgrades возвращает до count разных доступных улучшений в случайном порядке.
func (s *UpgradeSystem) GetRandomUpgrades(count int) []Upgrade {
	if count <= 0 {
		return nil
	}
	eligible := make([]Upgrade, 0, len(s.catalog))
	for _, u := range s.catalog {
		if s.isEligible(u) {
			eligible = append(eligible, u)
		}
	}
	s.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	if len(eligible) > count {
		eligible = eligible[:count]
	}
	return eligible
}

func (s *UpgradeSystem) isEligible(u Upgrade) bool {
	if s.acquired[u.ID] >= u.MaxLevel {
		return false
	}
	if u.Requires == nil {
		return true
	}
	active, level, ok := s.abilityState(u.Requires.Ability)
	return ok && active && level == u.Requires.Level
}

func (s *UpgradeSystem) abilityState(ability defs.AbilityID) (active bool, level int, ok bool) {
	switch ability {
	case defs.AbilityThunder:
		if s.ctx.Thunder == nil {
			return false, 0, false
		}
		return s.ctx.Thunder.IsActive(), s.ctx.Thunder.Level(), true
	case defs.AbilityMagicCircle:
		if s.ctx.MagicCircle == nil {
			return false, 0, false
		}
		return s.ctx.MagicCircle.IsActive(), s.ctx.MagicCircle.Level(), true
	}
	return false, 0, false
}

// ApplyUpgrade применяет улучшение и повышает его уровень на один.
// Неизвестный id или максимальный уровень - предупреждение и false.
func (s *UpgradeSystem) ApplyUpgrade(id string) bool {
	i, ok := s.index[id]
	if !ok {
		log.Printf("UpgradeSystem: unknown upgrade id %q", id)
		return false
	}
	u := s.catalog[i]
	if s.acquired[id] >= u.MaxLevel {
		log.Printf("UpgradeSystem: upgrade %q already at max level %d", id, u.MaxLevel)
		return false
	}
	u.Effect.Apply(s.ctx)
	s.acquired[id]++
	return true
}

// Level - текущий уровень улучшения, 0 если не куплено.
func (s *UpgradeSystem) Level(id string) int {
	return s.acquired[id]
}

// Upgrade ищет улучшение в каталоге.
func (s *UpgradeSystem) Upgrade(id string) (Upgrade, bool) {
	i, ok := s.index[id]
	if !ok {
		return Upgrade{}, false
	}
	return s.catalog[i], true
}

// Acquired - копия карты id -> уровень.
func (s *UpgradeSystem) Acquired() map[string]int {
	return maps.Clone(s.acquired)
}

func (s *UpgradeSystem) Catalog() []Upgrade {
	return s.catalog
}

// Reset забывает все купленные улучшения.
func (s *UpgradeSystem) Reset() {
	clear(s.acquired)
}
