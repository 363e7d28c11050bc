// internal/system/enemy.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/timer"
	"go-survivors/internal/utils"
)

// EnemySystem управляет пулом врагов: появление по таймеру, преследование игрока,
// урон, отбрасывание и выпадение опыта.
type EnemySystem struct {
	cfg        *config.EnemyBalance
	pool       []component.Enemy
	active     int
	visible    []int
	trailHits  [][]uint64 // id кругов следа, уже задевших врага
	scheduler  *timer.Scheduler
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	world      *entity.World
	camera     *entity.Camera
	target     Target
	drops      OrbDropper
	spawnTimer *timer.Timer
	defeated   int
}

func NewEnemySystem(balance *config.Balance, world *entity.World, camera *entity.Camera, target Target, drops OrbDropper,
	scheduler *timer.Scheduler, dispatcher *event.Dispatcher, rng *utils.PRNGService) *EnemySystem {
	capacity := balance.Enemy.MaxCount
	s := &EnemySystem{
		cfg:        &balance.Enemy,
		pool:       make([]component.Enemy, capacity),
		visible:    make([]int, 0, capacity),
		trailHits:  make([][]uint64, capacity),
		scheduler:  scheduler,
		dispatcher: dispatcher,
		rng:        rng,
		world:      world,
		camera:     camera,
		target:     target,
		drops:      drops,
	}
	for i := range s.pool {
		s.pool[i].Index = i
	}
	return s
}

// SpawnInterval - интервал появления для уровня игрока:
// каждый уровень сокращает его на 15%, но не ниже 30% базового.
func SpawnInterval(cfg *config.EnemyBalance, level int) float64 {
	factor := 1 - float64(level-1)*cfg.SpawnReductionPerLevel
	factor = math.Max(cfg.MinSpawnFactor, math.Min(1, factor))
	return cfg.SpawnInterval * factor
}

// Start запускает таймер появления.
func (s *EnemySystem) Start() {
	s.UpdateSpawnRate()
}

// Stop останавливает таймер появления.
func (s *EnemySystem) Stop() {
	s.spawnTimer.Cancel()
	s.spawnTimer = nil
}

// UpdateSpawnRate перезапускает таймер появления под текущий уровень игрока.
func (s *EnemySystem) UpdateSpawnRate() {
	s.spawnTimer.Cancel()
	s.spawnTimer = s.scheduler.Every(s.CurrentSpawnInterval(), func() { s.SpawnEnemy() })
}

func (s *EnemySystem) CurrentSpawnInterval() float64 {
	return SpawnInterval(s.cfg, s.target.Level())
}

// ChooseTier выбирает тир по таблице появления для уровня игрока.
func (s *EnemySystem) ChooseTier(level int) defs.EnemyTier {
	table, ok := defs.TableForLevel(s.cfg.SpawnTables, level)
	if !ok {
		return defs.Tier1
	}
	return s.rng.ChooseWeighted(table.Entries)
}

// SpawnEnemy выпускает врага на случайном краю экрана.
// При заполненном пуле ничего не делает и возвращает nil.
func (s *EnemySystem) SpawnEnemy() *component.Enemy {
	if s.active >= len(s.pool) {
		return nil
	}
	x, y := utils.RandomEdgePosition(s.rng, s.camera.Width, s.camera.Height, s.cfg.SpawnPadding)
	x, y = s.camera.ScreenToWorld(x, y)
	return s.SpawnEnemyAt(s.ChooseTier(s.target.Level()), x, y)
}

// SpawnEnemyAt активирует свободную запись пула в точке (x, y).
func (s *EnemySystem) SpawnEnemyAt(tier defs.EnemyTier, x, y float64) *component.Enemy {
	if s.active >= len(s.pool) {
		return nil
	}
	var e *component.Enemy
	for i := range s.pool {
		if !s.pool[i].Active {
			e = &s.pool[i]
			break
		}
	}
	if e == nil {
		return nil
	}

	def := s.cfg.Tier(tier)
	half := s.cfg.BaseSize * def.Scale * def.Visuals.RadiusFactor
	x, y = s.world.Clamp(x, y, half, half)
	*e = component.Enemy{
		Index:    e.Index,
		Active:   true,
		Tier:     def.Tier,
		Position: component.Position{X: x, Y: y},
		Health:   component.NewHealth(def.Health),
		Speed:    def.Speed,
		Scale:    def.Scale,
		HalfSize: half,
		Renderable: component.Renderable{
			Color:  def.Visuals.Color,
			Radius: float32(half),
			Alpha:  1,
		},
	}
	s.seek(e, def.Speed)
	s.trailHits[e.Index] = s.trailHits[e.Index][:0]
	s.active++
	return e
}

// Update пересчитывает видимых врагов и их скорости.
// Видимые точно преследуют игрока, невидимые изредка обновляют направление.
func (s *EnemySystem) Update(deltaTime float64) {
	s.visible = s.visible[:0]
	for i := range s.pool {
		e := &s.pool[i]
		if !e.Active {
			continue
		}
		onScreen := s.camera.Contains(e.Position.X, e.Position.Y, s.cfg.VisibilityMargin)
		if onScreen {
			s.visible = append(s.visible, i)
		}
		if e.KnockedBack {
			continue
		}
		if onScreen {
			s.seek(e, e.Speed)
		} else if s.rng.Chance(s.cfg.OffscreenRefreshChance) {
			s.seek(e, e.Speed*s.cfg.OffscreenSpeedFactor)
		}
	}
}

func (s *EnemySystem) seek(e *component.Enemy, speed float64) {
	px, py := s.target.Pos()
	nx, ny := utils.NormalizeVector(px-e.Position.X, py-e.Position.Y)
	e.Velocity = component.Velocity{X: nx * speed, Y: ny * speed}
}

// DamageEnemy наносит урон и возвращает true, если враг побеждён.
// knockback > 0 отбрасывает врага против его скорости.
func (s *EnemySystem) DamageEnemy(e *component.Enemy, amount, knockback float64) bool {
	if e == nil || !e.Active {
		return false
	}
	if e.Health.Damage(amount) {
		s.defeat(e)
		return true
	}

	e.SetTint(s.scheduler.After(s.cfg.TintDuration, e.ClearTint))
	if knockback > 0 {
		s.knockback(e, knockback)
	}
	return false
}

func (s *EnemySystem) knockback(e *component.Enemy, force float64) {
	nx, ny := utils.NormalizeVector(e.Velocity.X, e.Velocity.Y)
	if nx == 0 && ny == 0 {
		px, py := s.target.Pos()
		nx, ny = utils.NormalizeVector(px-e.Position.X, py-e.Position.Y)
	}
	e.Velocity = component.Velocity{X: -nx * force, Y: -ny * force}
	e.SetKnockback(s.scheduler.After(s.cfg.KnockbackDuration, func() {
		e.ClearKnockback()
		e.Velocity = component.Velocity{}
	}))
}

func (s *EnemySystem) defeat(e *component.Enemy) {
	x, y := e.Position.X, e.Position.Y
	tier := e.Tier
	if s.drops != nil && s.rng.Chance(s.cfg.Tier(tier).DropRate) {
		s.drops.SpawnOrb(x, y)
	}
	s.deactivate(e)
	s.defeated++
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyDefeated,
		Data: event.EnemyDefeatedData{Index: e.Index, Tier: int(tier), X: x, Y: y},
	})
}

func (s *EnemySystem) deactivate(e *component.Enemy) {
	if !e.Active {
		return
	}
	e.Release()
	s.active--
	s.trailHits[e.Index] = s.trailHits[e.Index][:0]
	for i, idx := range s.visible {
		if idx == e.Index {
			s.visible = append(s.visible[:i], s.visible[i+1:]...)
			break
		}
	}
}

// DamageInRadius бьёт всех видимых врагов в круге. Возвращает число побеждённых.
func (s *EnemySystem) DamageInRadius(x, y, radius, amount float64) int {
	killed := 0
	rSq := radius * radius
	for _, idx := range s.AppendVisible(nil) {
		e := &s.pool[idx]
		if !e.Active {
			continue
		}
		if utils.DistanceSq(x, y, e.Position.X, e.Position.Y) <= rSq {
			if s.DamageEnemy(e, amount, 0) {
				killed++
			}
		}
	}
	return killed
}

// ApplyTrail бьёт врагов кругами следа: каждый круг задевает врага не больше одного раза.
func (s *EnemySystem) ApplyTrail(circles []component.TrailCircle, damage float64) {
	if len(circles) == 0 {
		for i := range s.trailHits {
			s.trailHits[i] = s.trailHits[i][:0]
		}
		return
	}
	oldest := circles[0].ID
	for i := range s.pool {
		e := &s.pool[i]
		if !e.Active {
			continue
		}
		s.pruneTrailHits(i, oldest)
		for _, c := range circles {
			if !circleOverlapsEnemy(c.X, c.Y, c.Radius, e) || s.wasHitBy(i, c.ID) {
				continue
			}
			s.trailHits[i] = append(s.trailHits[i], c.ID)
			if s.DamageEnemy(e, damage, 0) {
				break
			}
		}
	}
}

func (s *EnemySystem) wasHitBy(idx int, circleID uint64) bool {
	for _, id := range s.trailHits[idx] {
		if id == circleID {
			return true
		}
	}
	return false
}

// pruneTrailHits забывает круги старше oldest: они уже исчезли.
func (s *EnemySystem) pruneTrailHits(idx int, oldest uint64) {
	kept := s.trailHits[idx][:0]
	for _, id := range s.trailHits[idx] {
		if id >= oldest {
			kept = append(kept, id)
		}
	}
	s.trailHits[idx] = kept
}

// FindOverlapping возвращает первого активного врага, задетого кругом, или nil.
func (s *EnemySystem) FindOverlapping(x, y, radius float64) *component.Enemy {
	for i := range s.pool {
		e := &s.pool[i]
		if e.Active && circleOverlapsEnemy(x, y, radius, e) {
			return e
		}
	}
	return nil
}

// OverlapsRect проверяет, касается ли хоть один активный враг прямоугольника
// с центром (x, y) и полуразмерами hw, hh.
func (s *EnemySystem) OverlapsRect(x, y, hw, hh float64) bool {
	for i := range s.pool {
		e := &s.pool[i]
		if e.Active && utils.RectsOverlap(x, y, hw, hh, e.Position.X, e.Position.Y, e.HalfSize, e.HalfSize) {
			return true
		}
	}
	return false
}

// AppendVisible дописывает индексы видимых врагов в dst.
func (s *EnemySystem) AppendVisible(dst []int) []int {
	return append(dst, s.visible...)
}

// Enemy возвращает запись пула по индексу, nil вне диапазона.
func (s *EnemySystem) Enemy(idx int) *component.Enemy {
	if idx < 0 || idx >= len(s.pool) {
		return nil
	}
	return &s.pool[idx]
}

// ForEachActive обходит активных врагов.
func (s *EnemySystem) ForEachActive(fn func(e *component.Enemy)) {
	for i := range s.pool {
		if s.pool[i].Active {
			fn(&s.pool[i])
		}
	}
}

func (s *EnemySystem) ActiveCount() int   { return s.active }
func (s *EnemySystem) InactiveCount() int { return len(s.pool) - s.active }
func (s *EnemySystem) Capacity() int      { return len(s.pool) }
func (s *EnemySystem) VisibleCount() int  { return len(s.visible) }
func (s *EnemySystem) DefeatedCount() int { return s.defeated }

// ClearAll возвращает всех врагов в пул вместе с их таймерами.
func (s *EnemySystem) ClearAll() {
	for i := range s.pool {
		s.deactivate(&s.pool[i])
	}
	s.visible = s.visible[:0]
	s.defeated = 0
}
