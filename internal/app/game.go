// internal/app/game.go
package app

import (
	"log"
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/interfaces"
	"go-survivors/internal/system"
	"go-survivors/internal/timer"
	"go-survivors/internal/utils"

	"github.com/google/uuid"
)

// Options - параметры новой сцены.
type Options struct {
	Balance *config.Balance
	Skin    entity.Skin
	Seed    int64
	Input   interfaces.InputSource
	// GamesRemaining показывается в HUD. nil - лимита нет.
	GamesRemaining func() int
}

// Stats - итоги забега.
type Stats struct {
	RunID           uuid.UUID
	SurvivalTime    float64
	EnemiesDefeated int
	Level           int
	Experience      float64
}

// Snapshot - данные для HUD, только для чтения.
type Snapshot struct {
	Phase                 component.Phase
	Health                float64
	MaxHealth             float64
	Level                 int
	Experience            float64
	ExperienceToNextLevel int
	EnemyCount            int
	Upgrades              map[string]int
	SurvivalTime          float64
	EnemiesDefeated       int
	RunID                 string
	GamesRemaining        int // -1 без лимита
	ThunderLevel          int
	ThunderActive         bool
	CircleLevel           int
	CircleActive          bool
}

// Game - главная сцена: владеет всеми системами, ведёт кадр,
// паузу на выбор улучшения, конец игры и перезапуск.
type Game struct {
	Balance     *config.Balance
	World       *entity.World
	Camera      *entity.Camera
	Scheduler   *timer.Scheduler
	Dispatcher  *event.Dispatcher
	Rng         *utils.PRNGService
	Player      *entity.Player
	Enemies     *system.EnemySystem
	Projectiles *system.ProjectileSystem
	Experience  *system.ExperienceSystem
	Movement    *system.MovementSystem
	Thunder     *system.ThunderSystem
	MagicCircle *system.MagicCircleSystem
	Effects     *system.VisualEffectSystem
	Upgrades    *system.UpgradeSystem
	RunID       uuid.UUID

	input          interfaces.InputSource
	gamesRemaining func() int
	listener       *GameEventListener

	phase           component.Phase
	awaitingUpgrade bool
	offers          []system.Upgrade
	survivalTime    float64
	acquired        map[string]int
	snapshot        Snapshot
}

// idleInput - ввод по умолчанию: стоим на месте, целимся вправо.
type idleInput struct{ player *entity.Player }

func (idleInput) Direction() (float64, float64) { return 0, 0 }
func (in idleInput) AimPosition() (float64, float64) {
	x, y := in.player.Pos()
	return x + 1, y
}

// NewGame собирает сцену. Симуляция стартует по Start.
func NewGame(opts Options) *Game {
	balance := opts.Balance
	if balance == nil {
		b := config.DefaultBalance()
		balance = &b
	}

	world := entity.NewWorld()
	scheduler := timer.NewScheduler()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		Balance:        balance,
		World:          world,
		Camera:         entity.NewCamera(world, config.ScreenWidth, config.ScreenHeight),
		Scheduler:      scheduler,
		Dispatcher:     dispatcher,
		Rng:            rng,
		Projectiles:    system.NewProjectileSystem(),
		Effects:        system.NewVisualEffectSystem(rng),
		RunID:          uuid.New(),
		gamesRemaining: opts.GamesRemaining,
		phase:          component.PhaseSetup,
	}

	cx, cy := world.Center()
	g.Player = entity.NewPlayer(balance, opts.Skin, cx, cy, scheduler, dispatcher)
	g.Camera.CenterOn(cx, cy)

	g.input = opts.Input
	if g.input == nil {
		g.input = idleInput{player: g.Player}
	}

	g.Projectiles.CreatePool(system.ProjectilePoolConfig{
		Kind:     defs.ProjectilePlayer,
		Capacity: balance.Projectile.MaxCount,
		Speed:    balance.Projectile.Speed,
		Lifespan: balance.Projectile.Lifespan,
		Scale:    balance.Projectile.Scale,
		Radius:   balance.Projectile.Radius,
		Damage:   balance.Player.ProjectileDamage,
		Color:    config.ProjectileColor,
	})
	g.Experience = system.NewExperienceSystem(balance, g.Player, dispatcher)
	g.Enemies = system.NewEnemySystem(balance, world, g.Camera, g.Player, g.Experience, scheduler, dispatcher, rng)
	g.Movement = system.NewMovementSystem(world, g.Player, g.Enemies)
	g.Thunder = system.NewThunderSystem(balance, g.Enemies, g.Player, g.Effects, scheduler)
	g.MagicCircle = system.NewMagicCircleSystem(balance, g.Enemies, g.Player, scheduler)
	g.Upgrades = system.NewUpgradeSystem(&system.UpgradeContext{
		Player:      g.Player,
		Projectiles: g.Projectiles,
		Thunder:     g.Thunder,
		MagicCircle: g.MagicCircle,
	}, rng, defs.UpgradeLibrary, system.DefaultEffects())

	g.listener = &GameEventListener{game: g}
	dispatcher.Subscribe(event.LevelUp, g.listener)
	dispatcher.Subscribe(event.GameOver, g.listener)

	g.acquired = g.Upgrades.Acquired()
	g.refreshSnapshot()
	return g
}

// GameEventListener переводит события сцены в смену фаз.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelUp:
		l.game.onLevelUp()
	case event.GameOver:
		l.game.onGameOver()
	}
}

// Start запускает первый забег: стрельбу и появление врагов.
func (g *Game) Start() {
	if g.phase != component.PhaseSetup {
		return
	}
	g.Player.SetupAttacks(g.Projectiles)
	g.Enemies.Start()
	g.phase = component.PhaseRunning
	log.Printf("Run %s started with skin %s", g.RunID, g.Player.Skin())
}

// Update продвигает сцену на один кадр. Вне Running ничего не делает.
func (g *Game) Update(deltaTime float64) {
	if g.phase != component.PhaseRunning {
		return
	}
	dt := math.Min(deltaTime, config.MaxDeltaTime)
	if dt <= 0 {
		return
	}
	g.survivalTime += dt

	// таймеры: стрельба, спавн, способности, неуязвимость, отбрасывание
	g.Scheduler.Advance(dt)
	if g.phase != component.PhaseRunning {
		g.refreshSnapshot()
		return
	}

	g.Player.Update(dt, g.input)
	g.Enemies.Update(dt)
	g.Movement.Update(dt)
	g.Camera.Follow(g.Player.Position.X, g.Player.Position.Y, dt)

	g.Projectiles.Update(dt)
	g.MagicCircle.Update(dt)
	g.Effects.Update(dt)

	// движение уже применено, теперь столкновения
	g.resolveProjectileHits()
	g.Enemies.ApplyTrail(g.Player.TrailCircles(), g.Balance.Skins.TrailDamage)
	g.resolvePlayerContact()

	// сбор опыта последним: повышение уровня ставит сцену на паузу
	g.Experience.Update(dt)

	g.refreshSnapshot()
}

func (g *Game) resolveProjectileHits() {
	knockback := g.Balance.Enemy.KnockbackForce
	g.Projectiles.ForEachActive(func(p *component.Projectile) {
		e := g.Enemies.FindOverlapping(p.Position.X, p.Position.Y, p.Radius)
		if e == nil {
			return
		}
		g.Projectiles.DeactivateProjectile(p)
		g.Enemies.DamageEnemy(e, p.Damage, knockback)
	})
}

func (g *Game) resolvePlayerContact() {
	hw, hh := g.Player.HalfSize()
	g.Player.SetOverlapping(g.Enemies.OverlapsRect(g.Player.Position.X, g.Player.Position.Y, hw, hh))
}

func (g *Game) onLevelUp() {
	g.Enemies.UpdateSpawnRate()
	g.Scheduler.Pause()
	g.phase = component.PhasePaused
	g.awaitingUpgrade = true
	g.offers = g.Upgrades.GetRandomUpgrades(config.UpgradeOfferCount)
}

func (g *Game) onGameOver() {
	g.Scheduler.Pause()
	g.Enemies.Stop()
	g.phase = component.PhaseGameOver
	g.awaitingUpgrade = false
	g.offers = nil
	s := g.Stats()
	log.Printf("Run %s over: survived %.1fs, level %d, %d enemies defeated", s.RunID, s.SurvivalTime, s.Level, s.EnemiesDefeated)
}

// Offers - улучшения, предложенные на текущем повышении уровня.
func (g *Game) Offers() []system.Upgrade {
	return g.offers
}

// AwaitingUpgrade - сцена ждёт выбора улучшения.
func (g *Game) AwaitingUpgrade() bool {
	return g.awaitingUpgrade
}

// SelectUpgrade применяет одно из предложенных улучшений и продолжает забег.
// Если порог следующего уровня уже пройден, сцена сразу снова встаёт на выбор.
func (g *Game) SelectUpgrade(id string) bool {
	if !g.awaitingUpgrade {
		return false
	}
	offered := false
	for _, u := range g.offers {
		if u.ID == id {
			offered = true
			break
		}
	}
	if !offered {
		log.Printf("Game: upgrade %q was not offered", id)
		return false
	}
	if !g.Upgrades.ApplyUpgrade(id) {
		return false
	}
	g.acquired = g.Upgrades.Acquired()
	g.resumeAfterLevelUp()
	return true
}

// SkipUpgrade продолжает забег без улучшения, когда предлагать нечего.
func (g *Game) SkipUpgrade() bool {
	if !g.awaitingUpgrade || len(g.offers) > 0 {
		return false
	}
	g.resumeAfterLevelUp()
	return true
}

func (g *Game) resumeAfterLevelUp() {
	g.awaitingUpgrade = false
	g.offers = nil
	g.phase = component.PhaseRunning
	g.Scheduler.Resume()
	g.Player.OnUpgradeSelected()
	g.refreshSnapshot()
}

// TogglePause ставит забег на ручную паузу или снимает её.
// Пауза выбора улучшения и конец игры так не снимаются.
func (g *Game) TogglePause() bool {
	switch {
	case g.phase == component.PhaseRunning:
		g.phase = component.PhasePaused
		g.Scheduler.Pause()
	case g.phase == component.PhasePaused && !g.awaitingUpgrade:
		g.phase = component.PhaseRunning
		g.Scheduler.Resume()
	}
	g.refreshSnapshot()
	return g.phase == component.PhasePaused
}

// RestartGame очищает пулы, сбрасывает игрока, способности и улучшения
// и начинает новый забег с новым RunID.
func (g *Game) RestartGame() {
	g.Scheduler.Pause()

	g.Enemies.Stop()
	g.Enemies.ClearAll()
	g.Projectiles.ClearAll()
	g.Experience.Reset()
	g.Thunder.Reset()
	g.MagicCircle.Reset()
	g.Effects.Clear()
	g.Upgrades.Reset()
	g.acquired = g.Upgrades.Acquired()

	g.Player.Reset()
	if g.phase == component.PhaseSetup {
		g.Player.SetupAttacks(g.Projectiles)
	}
	g.Camera.CenterOn(g.Player.Pos())

	g.awaitingUpgrade = false
	g.offers = nil
	g.survivalTime = 0
	g.RunID = uuid.New()

	g.Scheduler.Resume()
	g.Enemies.Start()
	g.phase = component.PhaseRunning
	g.refreshSnapshot()
	log.Printf("Run %s started (restart)", g.RunID)
}

// Stats - итоги текущего забега.
func (g *Game) Stats() Stats {
	return Stats{
		RunID:           g.RunID,
		SurvivalTime:    g.survivalTime,
		EnemiesDefeated: g.Enemies.DefeatedCount(),
		Level:           g.Player.Level(),
		Experience:      g.Player.Experience(),
	}
}

func (g *Game) refreshSnapshot() {
	remaining := -1
	if g.gamesRemaining != nil {
		remaining = g.gamesRemaining()
	}
	g.snapshot = Snapshot{
		Phase:                 g.phase,
		Health:                g.Player.Health.Value,
		MaxHealth:             g.Player.Health.Max,
		Level:                 g.Player.Level(),
		Experience:            g.Player.Experience(),
		ExperienceToNextLevel: g.Player.ExperienceToNextLevel(),
		EnemyCount:            g.Enemies.ActiveCount(),
		Upgrades:              g.acquired,
		SurvivalTime:          g.survivalTime,
		EnemiesDefeated:       g.Enemies.DefeatedCount(),
		RunID:                 g.RunID.String(),
		GamesRemaining:        remaining,
		ThunderLevel:          g.Thunder.Level(),
		ThunderActive:         g.Thunder.IsActive(),
		CircleLevel:           g.MagicCircle.Level(),
		CircleActive:          g.MagicCircle.IsActive(),
	}
}

// Snapshot - последние данные для HUD.
func (g *Game) Snapshot() Snapshot {
	return g.snapshot
}

func (g *Game) Phase() component.Phase { return g.phase }

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool { return g.phase == component.PhasePaused }

func (g *Game) IsGameOver() bool { return g.phase == component.PhaseGameOver }

// Close снимает все подписки и таймеры сцены.
func (g *Game) Close() {
	g.Enemies.ClearAll()
	g.Thunder.Reset()
	g.MagicCircle.Reset()
	g.Player.Destroy()
	g.Dispatcher.UnsubscribeAll(g.listener)
	g.Scheduler.Clear()
}
