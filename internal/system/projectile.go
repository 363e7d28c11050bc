// internal/system/projectile.go
package system

import (
	"image/color"
	"log"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/utils"
)

// ProjectilePoolConfig - параметры пула, задаются при создании.
type ProjectilePoolConfig struct {
	Kind     defs.ProjectileKind
	Capacity int
	Speed    float64
	Lifespan float64
	Scale    float64
	Radius   float64 // радиус при масштабе 1
	Damage   float64
	Color    color.RGBA
}

type projectilePool struct {
	cfg   ProjectilePoolConfig
	items []component.Projectile
	free  []int // стек свободных индексов
}

// ProjectileSystem управляет пулами снарядов: выстрел, полёт, истечение, возврат в пул.
type ProjectileSystem struct {
	pools map[defs.ProjectileKind]*projectilePool
	kinds []defs.ProjectileKind
}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{pools: make(map[defs.ProjectileKind]*projectilePool)}
}

// CreatePool заранее выделяет пул снарядов одного типа.
func (s *ProjectileSystem) CreatePool(cfg ProjectilePoolConfig) bool {
	if _, exists := s.pools[cfg.Kind]; exists {
		log.Printf("ProjectileSystem: pool %q already exists", cfg.Kind)
		return false
	}
	if cfg.Capacity <= 0 {
		log.Printf("ProjectileSystem: pool %q has no capacity", cfg.Kind)
		return false
	}
	pool := &projectilePool{
		cfg:   cfg,
		items: make([]component.Projectile, cfg.Capacity),
		free:  make([]int, 0, cfg.Capacity),
	}
	for i := cfg.Capacity - 1; i >= 0; i-- {
		pool.items[i] = component.Projectile{Index: i, Kind: cfg.Kind}
		pool.free = append(pool.free, i)
	}
	s.pools[cfg.Kind] = pool
	s.kinds = append(s.kinds, cfg.Kind)
	return true
}

// FireProjectile активирует снаряд из пула со скоростью normalized(dir) * speed.
// Возвращает nil, если пул исчерпан.
func (s *ProjectileSystem) FireProjectile(kind defs.ProjectileKind, x, y, dirX, dirY float64) *component.Projectile {
	pool, ok := s.pools[kind]
	if !ok {
		log.Printf("ProjectileSystem: unknown pool %q", kind)
		return nil
	}
	if len(pool.free) == 0 {
		return nil
	}
	idx := pool.free[len(pool.free)-1]
	pool.free = pool.free[:len(pool.free)-1]

	nx, ny := utils.NormalizeVector(dirX, dirY)
	p := &pool.items[idx]
	*p = component.Projectile{
		Index:     idx,
		Kind:      kind,
		Active:    true,
		Position:  component.Position{X: x, Y: y},
		Velocity:  component.Velocity{X: nx * pool.cfg.Speed, Y: ny * pool.cfg.Speed},
		Damage:    pool.cfg.Damage,
		Scale:     pool.cfg.Scale,
		Radius:    pool.cfg.Radius * pool.cfg.Scale,
		Remaining: pool.cfg.Lifespan,
	}
	return p
}

// Update двигает снаряды и возвращает в пул те, у кого истекло время жизни.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, kind := range s.kinds {
		pool := s.pools[kind]
		for i := range pool.items {
			p := &pool.items[i]
			if !p.Active {
				continue
			}
			p.Remaining -= deltaTime
			if p.Remaining <= 0 {
				s.release(pool, p)
				continue
			}
			p.Position.Integrate(p.Velocity, deltaTime)
		}
	}
}

// DeactivateProjectile возвращает снаряд в пул, например после попадания.
func (s *ProjectileSystem) DeactivateProjectile(p *component.Projectile) {
	if p == nil || !p.Active {
		return
	}
	pool, ok := s.pools[p.Kind]
	if !ok {
		return
	}
	s.release(pool, p)
}

func (s *ProjectileSystem) release(pool *projectilePool, p *component.Projectile) {
	p.Active = false
	p.Velocity = component.Velocity{}
	pool.free = append(pool.free, p.Index)
}

// ForEachActive обходит активные снаряды всех пулов.
// Колбэк может деактивировать текущий снаряд.
func (s *ProjectileSystem) ForEachActive(fn func(p *component.Projectile)) {
	for _, kind := range s.kinds {
		pool := s.pools[kind]
		for i := range pool.items {
			if pool.items[i].Active {
				fn(&pool.items[i])
			}
		}
	}
}

// ActiveCount - активные снаряды во всех пулах.
func (s *ProjectileSystem) ActiveCount() int {
	n := 0
	for _, pool := range s.pools {
		n += len(pool.items) - len(pool.free)
	}
	return n
}

// Capacity - размер пула, 0 для неизвестного типа.
func (s *ProjectileSystem) Capacity(kind defs.ProjectileKind) int {
	if pool, ok := s.pools[kind]; ok {
		return len(pool.items)
	}
	return 0
}

// PoolColor - цвет снарядов пула для отрисовки.
func (s *ProjectileSystem) PoolColor(kind defs.ProjectileKind) color.RGBA {
	if pool, ok := s.pools[kind]; ok {
		return pool.cfg.Color
	}
	return color.RGBA{255, 255, 255, 255}
}

// ClearAll возвращает все снаряды в пулы.
func (s *ProjectileSystem) ClearAll() {
	for _, pool := range s.pools {
		pool.free = pool.free[:0]
		for i := len(pool.items) - 1; i >= 0; i-- {
			pool.items[i].Active = false
			pool.items[i].Velocity = component.Velocity{}
			pool.free = append(pool.free, i)
		}
	}
}
