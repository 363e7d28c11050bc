// internal/entity/player.go
package entity

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/interfaces"
	"go-survivors/internal/timer"
	"go-survivors/internal/utils"
)

// Skin - облик игрока, определяет пассивную способность.
type Skin int

const (
	SkinDefault Skin = iota
	SkinWizard
	SkinMesmer
)

var ErrUnknownSkin = errors.New("unknown skin")

func (s Skin) String() string {
	switch s {
	case SkinWizard:
		return "wizard"
	case SkinMesmer:
		return "mesmer"
	default:
		return "default"
	}
}

// ParseSkin разбирает имя скина из флага командной строки.
func ParseSkin(name string) (Skin, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "survivor":
		return SkinDefault, nil
	case "wizard":
		return SkinWizard, nil
	case "mesmer":
		return SkinMesmer, nil
	}
	return SkinDefault, fmt.Errorf("%w: %q", ErrUnknownSkin, name)
}

// passive - состояние пассивки конкретного скина.
type passive interface {
	start(p *Player)
	stop()
}

type noPassive struct{}

func (noPassive) start(*Player) {}
func (noPassive) stop()         {}

// regenPassive восстанавливает здоровье раз в interval секунд.
type regenPassive struct {
	interval float64
	timer    *timer.Timer
}

func (r *regenPassive) start(p *Player) {
	r.stop()
	r.timer = p.scheduler.Every(r.interval, p.regenerate)
}

func (r *regenPassive) stop() {
	r.timer.Cancel()
	r.timer = nil
}

// mesmerPassive - регенерация плюс след из кругов во время движения.
type mesmerPassive struct {
	regen      regenPassive
	interval   float64
	trailTimer *timer.Timer
}

func (m *mesmerPassive) start(p *Player) {
	m.stop()
	m.regen.start(p)
	m.trailTimer = p.scheduler.Every(m.interval, p.emitTrail)
}

func (m *mesmerPassive) stop() {
	m.regen.stop()
	m.trailTimer.Cancel()
	m.trailTimer = nil
}

func newPassive(skin Skin, cfg config.SkinBalance) passive {
	switch skin {
	case SkinWizard:
		return &regenPassive{interval: cfg.WizardRegenInterval}
	case SkinMesmer:
		return &mesmerPassive{regen: regenPassive{interval: cfg.MesmerRegenInterval}, interval: cfg.TrailInterval}
	default:
		return noPassive{}
	}
}

// Player - персонаж игрока: движение, здоровье, атака, опыт и уровни.
type Player struct {
	Position    component.Position
	Velocity    component.Velocity
	Health      component.Health
	State       component.PlayerStateComponent
	Multipliers component.Multipliers

	cfg        *config.Balance
	scheduler  *timer.Scheduler
	dispatcher *event.Dispatcher
	launcher   interfaces.Launcher
	skin       Skin
	passive    passive

	spawnX, spawnY float64
	aimX, aimY     float64

	invulnerable      bool
	invulnerableTimer *timer.Timer
	overlapping       bool
	contactTimer      *timer.Timer
	attackTimer       *timer.Timer
	defeatTimer       *timer.Timer
	levelingUp        bool
	defeated          bool

	trail       []component.TrailCircle
	nextTrailID uint64
}

// NewPlayer создаёт игрока в точке (x, y) и подписывает его на опыт.
func NewPlayer(cfg *config.Balance, skin Skin, x, y float64, scheduler *timer.Scheduler, dispatcher *event.Dispatcher) *Player {
	p := &Player{
		cfg:        cfg,
		scheduler:  scheduler,
		dispatcher: dispatcher,
		skin:       skin,
		passive:    newPassive(skin, cfg.Skins),
		spawnX:     x,
		spawnY:     y,
	}
	p.resetState()
	dispatcher.Subscribe(event.ExperienceCollected, p)
	p.passive.start(p)
	return p
}

func (p *Player) resetState() {
	p.Position = component.Position{X: p.spawnX, Y: p.spawnY}
	p.Velocity = component.Velocity{}
	p.Health = component.NewHealth(p.cfg.Player.MaxHealth)
	p.State = component.PlayerStateComponent{
		Level:                 1,
		Experience:            0,
		ExperienceToNextLevel: p.cfg.Experience.InitialThreshold,
	}
	p.Multipliers = component.DefaultMultipliers()
	p.aimX, p.aimY = p.spawnX+1, p.spawnY
	p.invulnerable = false
	p.overlapping = false
	p.levelingUp = false
	p.defeated = false
	p.trail = p.trail[:0]
}

// Update читает ввод и выставляет скорость. Движение применяет MovementSystem.
func (p *Player) Update(deltaTime float64, in interfaces.InputSource) {
	p.ageTrail(deltaTime)

	if p.levelingUp || p.defeated {
		p.Velocity = component.Velocity{}
		return
	}

	dx, dy := in.Direction()
	nx, ny := utils.NormalizeVector(dx, dy)
	speed := p.cfg.Player.Speed * p.Multipliers.MovementSpeed
	p.Velocity = component.Velocity{X: nx * speed, Y: ny * speed}
	p.aimX, p.aimY = in.AimPosition()
}

// SetupAttacks запускает автоматическую стрельбу через launcher.
func (p *Player) SetupAttacks(launcher interfaces.Launcher) {
	p.launcher = launcher
	p.restartAttackTimer()
}

func (p *Player) restartAttackTimer() {
	p.attackTimer.Cancel()
	p.attackTimer = nil
	if p.launcher == nil || p.defeated {
		return
	}
	p.attackTimer = p.scheduler.Every(p.AttackInterval(), p.fireProjectile)
}

// AttackInterval - период стрельбы с учётом улучшений.
func (p *Player) AttackInterval() float64 {
	return p.cfg.Player.AttackInterval / p.Multipliers.AttackSpeed
}

// ProjectileDamage - урон одного снаряда.
func (p *Player) ProjectileDamage() float64 {
	return p.cfg.Player.ProjectileDamage * p.Multipliers.Damage
}

// SpreadOffsets - смещения углов веером 30° для n снарядов.
func SpreadOffsets(n int) []float64 {
	if n <= 1 {
		return []float64{0}
	}
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = (math.Pi / 6) * (float64(i)/float64(n-1) - 0.5)
	}
	return offsets
}

func (p *Player) fireProjectile() {
	if p.levelingUp || p.defeated || p.launcher == nil {
		return
	}
	base := math.Atan2(p.aimY-p.Position.Y, p.aimX-p.Position.X)
	for _, offset := range SpreadOffsets(p.Multipliers.ProjectileCount) {
		angle := base + offset
		proj := p.launcher.FireProjectile(defs.ProjectilePlayer, p.Position.X, p.Position.Y, math.Cos(angle), math.Sin(angle))
		if proj == nil {
			// пул исчерпан, остальные снаряды этого залпа тоже не выйдут
			return
		}
		proj.Damage = p.ProjectileDamage()
		proj.Scale *= p.Multipliers.ProjectileSize
		proj.Radius *= p.Multipliers.ProjectileSize
	}
}

// TakeDamage наносит урон игроку. Возвращает false, если урон не прошёл.
func (p *Player) TakeDamage(amount float64) bool {
	if p.invulnerable || p.defeated {
		return false
	}
	p.Health.Damage(amount)
	p.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: amount, Health: p.Health.Value}})

	p.invulnerable = true
	p.invulnerableTimer.Cancel()
	p.invulnerableTimer = p.scheduler.After(p.cfg.Player.InvulnerableDuration, func() {
		p.invulnerable = false
	})

	if p.Health.Value <= 0 {
		p.defeat()
	}
	return true
}

func (p *Player) defeat() {
	p.defeated = true
	p.Velocity = component.Velocity{}
	p.attackTimer.Cancel()
	p.contactTimer.Cancel()
	p.passive.stop()
	p.defeatTimer = p.scheduler.After(p.cfg.Player.DefeatDelay, func() {
		p.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	})
}

// SetOverlapping включает или выключает контактный урон от врагов:
// сразу один удар, затем каждые ContactInterval секунд.
func (p *Player) SetOverlapping(overlapping bool) {
	if p.overlapping == overlapping {
		return
	}
	p.overlapping = overlapping
	if !overlapping {
		p.contactTimer.Cancel()
		p.contactTimer = nil
		return
	}
	p.TakeDamage(p.cfg.Player.ContactDamage)
	if p.defeated {
		return
	}
	p.contactTimer = p.scheduler.Every(p.cfg.Player.ContactInterval, func() {
		p.TakeDamage(p.cfg.Player.ContactDamage)
	})
}

// OnEvent начисляет опыт подобранной сферы.
func (p *Player) OnEvent(e event.Event) {
	if e.Type != event.ExperienceCollected {
		return
	}
	if data, ok := e.Data.(event.ExperienceData); ok {
		p.AddExperience(data.Value)
	}
}

// AddExperience добавляет опыт. Опыт только накапливается.
func (p *Player) AddExperience(amount float64) {
	if amount <= 0 {
		return
	}
	p.State.Experience += amount
	p.checkLevelUp()
}

func (p *Player) checkLevelUp() {
	for !p.levelingUp && !p.defeated && p.State.Experience >= float64(p.State.ExperienceToNextLevel) {
		p.State.Level++
		p.State.ExperienceToNextLevel = int(math.Floor(float64(p.State.ExperienceToNextLevel) * p.cfg.Experience.ThresholdGrowth))
		p.levelingUp = true
		p.Velocity = component.Velocity{}
		p.dispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: p.State.Level}})
	}
}

// OnUpgradeSelected снимает ожидание выбора и проверяет следующий порог.
func (p *Player) OnUpgradeSelected() {
	p.levelingUp = false
	p.checkLevelUp()
}

func (p *Player) IncreaseDamage(amount float64) {
	p.Multipliers.Damage += amount
}

// IncreaseAttackSpeed ускоряет стрельбу и перезапускает таймер атаки.
func (p *Player) IncreaseAttackSpeed(amount float64) {
	p.Multipliers.AttackSpeed += amount
	p.restartAttackTimer()
}

func (p *Player) IncreaseProjectileCount(amount int) {
	p.Multipliers.ProjectileCount += amount
}

func (p *Player) IncreaseProjectileSize(amount float64) {
	p.Multipliers.ProjectileSize += amount
}

// IncreaseMaxHealth поднимает максимум и лечит на ту же величину.
func (p *Player) IncreaseMaxHealth(amount float64) {
	p.Health.Max += amount
	p.Health.Heal(amount)
}

func (p *Player) IncreaseMovementSpeed(amount float64) {
	p.Multipliers.MovementSpeed += amount
}

func (p *Player) regenerate() {
	if p.defeated {
		return
	}
	p.Health.Heal(p.cfg.Skins.RegenAmount)
}

func (p *Player) emitTrail() {
	if p.defeated || p.Velocity.IsZero() {
		return
	}
	p.nextTrailID++
	p.trail = append(p.trail, component.TrailCircle{
		ID:     p.nextTrailID,
		X:      p.Position.X,
		Y:      p.Position.Y,
		Radius: p.cfg.Skins.TrailRadius,
		Life:   p.cfg.Skins.TrailLifetime,
	})
}

func (p *Player) ageTrail(deltaTime float64) {
	kept := p.trail[:0]
	for _, c := range p.trail {
		c.Age += deltaTime
		if c.Age < c.Life {
			kept = append(kept, c)
		}
	}
	p.trail = kept
}

// TrailCircles - активные круги следа. Срез только для чтения.
func (p *Player) TrailCircles() []component.TrailCircle {
	return p.trail
}

// Reset возвращает игрока в исходное состояние для новой попытки.
func (p *Player) Reset() {
	p.cancelTimers()
	p.resetState()
	p.passive.start(p)
	p.restartAttackTimer()
}

func (p *Player) cancelTimers() {
	for _, t := range []*timer.Timer{p.attackTimer, p.invulnerableTimer, p.contactTimer, p.defeatTimer} {
		t.Cancel()
	}
	p.attackTimer, p.invulnerableTimer, p.contactTimer, p.defeatTimer = nil, nil, nil, nil
	p.passive.stop()
}

// Destroy отписывает игрока и снимает все таймеры.
func (p *Player) Destroy() {
	p.cancelTimers()
	p.dispatcher.UnsubscribeAll(p)
}

// Alpha - прозрачность спрайта: мигание при неуязвимости, затухание при поражении.
func (p *Player) Alpha() float32 {
	if p.defeated {
		if p.cfg.Player.DefeatDelay <= 0 {
			return 0
		}
		return float32(p.defeatTimer.Remaining() / p.cfg.Player.DefeatDelay)
	}
	if p.invulnerable && int(p.scheduler.Now()/config.FlashPeriod)%2 == 0 {
		return 0.3
	}
	return 1
}

// Pos - центр игрока.
func (p *Player) Pos() (float64, float64) { return p.Position.X, p.Position.Y }

// HalfSize - половины сторон хитбокса.
func (p *Player) HalfSize() (float64, float64) {
	return p.cfg.Player.HitboxWidth / 2, p.cfg.Player.HitboxHeight / 2
}

func (p *Player) Aim() (float64, float64)    { return p.aimX, p.aimY }
func (p *Player) Skin() Skin                 { return p.skin }
func (p *Player) Level() int                 { return p.State.Level }
func (p *Player) Experience() float64        { return p.State.Experience }
func (p *Player) ExperienceToNextLevel() int { return p.State.ExperienceToNextLevel }
func (p *Player) IsLevelingUp() bool         { return p.levelingUp }
func (p *Player) IsInvulnerable() bool       { return p.invulnerable }
func (p *Player) IsDefeated() bool           { return p.defeated }
func (p *Player) IsOverlapping() bool        { return p.overlapping }
