package entity

import (
	"math"
	"testing"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/interfaces/mocks"
	"go-survivors/internal/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	player     *Player
	scheduler  *timer.Scheduler
	dispatcher *event.Dispatcher
	log        *eventLog
	balance    *config.Balance
}

func newFixture(t *testing.T, skin Skin) *fixture {
	t.Helper()
	balance := config.DefaultBalance()
	s := timer.NewScheduler()
	d := event.NewDispatcher()
	log := &eventLog{}
	d.Subscribe(event.LevelUp, log)
	d.Subscribe(event.GameOver, log)
	d.Subscribe(event.PlayerDamaged, log)
	p := NewPlayer(&balance, skin, 1024, 768, s, d)
	t.Cleanup(p.Destroy)
	return &fixture{player: p, scheduler: s, dispatcher: d, log: log, balance: &balance}
}

func TestPlayerDiagonalMovementIsNormalized(t *testing.T) {
	f := newFixture(t, SkinDefault)
	ctrl := gomock.NewController(t)
	in := mocks.NewMockInputSource(ctrl)
	in.EXPECT().Direction().Return(1.0, -1.0)
	in.EXPECT().AimPosition().Return(2000.0, 768.0)

	f.player.Update(1.0/60, in)

	assert.InDelta(t, 200.0, f.player.Velocity.Speed(), 1e-9)
	assert.InDelta(t, 200/math.Sqrt2, f.player.Velocity.X, 1e-9)
	assert.InDelta(t, -200/math.Sqrt2, f.player.Velocity.Y, 1e-9)
	ax, ay := f.player.Aim()
	assert.Equal(t, 2000.0, ax)
	assert.Equal(t, 768.0, ay)
}

func TestPlayerIgnoresInputWhileLevelingUp(t *testing.T) {
	f := newFixture(t, SkinDefault)
	ctrl := gomock.NewController(t)
	in := mocks.NewMockInputSource(ctrl) // любые вызовы ввода провалят тест

	f.player.Velocity = component.Velocity{X: 100}
	f.player.AddExperience(25)
	require.True(t, f.player.IsLevelingUp())

	f.player.Update(1.0/60, in)
	assert.True(t, f.player.Velocity.IsZero())
}

func TestExperienceThresholdGrowth(t *testing.T) {
	f := newFixture(t, SkinDefault)
	want := []int{45, 81, 145, 261}
	for i, threshold := range want {
		f.player.AddExperience(float64(f.player.ExperienceToNextLevel()) - f.player.Experience())
		require.True(t, f.player.IsLevelingUp())
		assert.Equal(t, i+2, f.player.Level())
		assert.Equal(t, threshold, f.player.ExperienceToNextLevel())
		f.player.OnUpgradeSelected()
	}
}

func TestLargeExperienceGrantLevelsUpInSequence(t *testing.T) {
	f := newFixture(t, SkinDefault)

	f.player.AddExperience(100)
	assert.Equal(t, 1, f.log.count(event.LevelUp))
	assert.Equal(t, 2, f.player.Level())
	assert.Equal(t, 45, f.player.ExperienceToNextLevel())

	// Пока выбор не сделан, новые пороги не проверяются.
	f.player.AddExperience(10)
	assert.Equal(t, 1, f.log.count(event.LevelUp))

	f.player.OnUpgradeSelected()
	assert.Equal(t, 3, f.player.Level())
	assert.Equal(t, 81, f.player.ExperienceToNextLevel())

	f.player.OnUpgradeSelected()
	assert.Equal(t, 4, f.player.Level())
	assert.Equal(t, 145, f.player.ExperienceToNextLevel())

	f.player.OnUpgradeSelected()
	assert.Equal(t, 4, f.player.Level())
	assert.False(t, f.player.IsLevelingUp())
	assert.Equal(t, 3, f.log.count(event.LevelUp))

	var levels []int
	for _, e := range f.log.events {
		if e.Type == event.LevelUp {
			levels = append(levels, e.Data.(event.LevelUpData).Level)
		}
	}
	assert.Equal(t, []int{2, 3, 4}, levels)
	assert.Equal(t, 110.0, f.player.Experience(), "experience is never consumed")
}

func TestExperienceCollectedEventAddsOrbValue(t *testing.T) {
	f := newFixture(t, SkinDefault)
	f.player.AddExperience(10)

	f.dispatcher.Dispatch(event.Event{Type: event.ExperienceCollected, Data: event.ExperienceData{Value: 1, Total: 1}})
	assert.Equal(t, 11.0, f.player.Experience(), "running total of the orb system does not overwrite experience")

	f.dispatcher.Dispatch(event.Event{Type: event.ExperienceCollected, Data: event.ExperienceData{Value: 14, Total: 15}})
	assert.Equal(t, 2, f.player.Level())
	assert.Equal(t, 25.0, f.player.Experience())

	f.dispatcher.Dispatch(event.Event{Type: event.ExperienceCollected, Data: event.ExperienceData{Value: 0, Total: 15}})
	assert.Equal(t, 25.0, f.player.Experience())
}

func TestTakeDamageRespectsInvulnerability(t *testing.T) {
	f := newFixture(t, SkinDefault)

	assert.True(t, f.player.TakeDamage(10))
	assert.Equal(t, 90.0, f.player.Health.Value)
	assert.True(t, f.player.IsInvulnerable())

	assert.False(t, f.player.TakeDamage(10))
	assert.Equal(t, 90.0, f.player.Health.Value)

	f.scheduler.Advance(1.0)
	assert.False(t, f.player.IsInvulnerable())
	assert.True(t, f.player.TakeDamage(10))
	assert.Equal(t, 80.0, f.player.Health.Value)
}

func TestDefeatEmitsGameOverAfterDelay(t *testing.T) {
	f := newFixture(t, SkinDefault)

	f.player.TakeDamage(250)
	assert.Equal(t, 0.0, f.player.Health.Value)
	assert.True(t, f.player.IsDefeated())
	assert.Equal(t, 0, f.log.count(event.GameOver))

	f.scheduler.Advance(0.5)
	assert.Equal(t, 0, f.log.count(event.GameOver))
	f.scheduler.Advance(0.5)
	assert.Equal(t, 1, f.log.count(event.GameOver))

	f.scheduler.Advance(5)
	assert.Equal(t, 1, f.log.count(event.GameOver))
	assert.False(t, f.player.TakeDamage(1))
}

func TestOverlapDealsDamageOverTime(t *testing.T) {
	f := newFixture(t, SkinDefault)

	f.player.SetOverlapping(true)
	assert.Equal(t, 95.0, f.player.Health.Value)

	f.scheduler.Advance(0.5) // ещё неуязвим
	assert.Equal(t, 95.0, f.player.Health.Value)

	f.scheduler.Advance(0.5)
	assert.Equal(t, 90.0, f.player.Health.Value)

	f.player.SetOverlapping(false)
	f.scheduler.Advance(5)
	assert.Equal(t, 90.0, f.player.Health.Value)
	assert.False(t, f.player.IsOverlapping())
}

func TestFireFansProjectilesAcrossSpread(t *testing.T) {
	f := newFixture(t, SkinDefault)
	ctrl := gomock.NewController(t)
	launcher := mocks.NewMockLauncher(ctrl)

	f.player.IncreaseProjectileCount(2)
	f.player.IncreaseDamage(0.25)

	var angles []float64
	var shots []*component.Projectile
	launcher.EXPECT().
		FireProjectile(defs.ProjectilePlayer, 1024.0, 768.0, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ defs.ProjectileKind, _, _, dx, dy float64) *component.Projectile {
			angles = append(angles, math.Atan2(dy, dx))
			p := &component.Projectile{Active: true, Scale: 0.3, Radius: 7.2}
			shots = append(shots, p)
			return p
		}).Times(3)

	f.player.SetupAttacks(launcher)
	f.scheduler.Advance(0.5)

	require.Len(t, angles, 3)
	assert.InDelta(t, -math.Pi/12, angles[0], 1e-9)
	assert.InDelta(t, 0, angles[1], 1e-9)
	assert.InDelta(t, math.Pi/12, angles[2], 1e-9)
	for _, p := range shots {
		assert.Equal(t, 1.25, p.Damage)
	}
}

func TestFireStopsWhenPoolIsExhausted(t *testing.T) {
	f := newFixture(t, SkinDefault)
	ctrl := gomock.NewController(t)
	launcher := mocks.NewMockLauncher(ctrl)
	f.player.IncreaseProjectileCount(2)

	launcher.EXPECT().FireProjectile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	f.player.SetupAttacks(launcher)
	f.scheduler.Advance(0.5)
}

func TestNoFireWhileLevelingUp(t *testing.T) {
	f := newFixture(t, SkinDefault)
	ctrl := gomock.NewController(t)
	launcher := mocks.NewMockLauncher(ctrl)

	f.player.SetupAttacks(launcher)
	f.player.AddExperience(30)
	f.scheduler.Advance(2)
}

func TestIncreaseAttackSpeedRestartsTimer(t *testing.T) {
	f := newFixture(t, SkinDefault)
	ctrl := gomock.NewController(t)
	launcher := mocks.NewMockLauncher(ctrl)
	launcher.EXPECT().FireProjectile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&component.Projectile{}).Times(2)

	f.player.SetupAttacks(launcher)
	f.scheduler.Advance(0.3)
	f.player.IncreaseAttackSpeed(0.15)
	assert.InDelta(t, 0.5/1.15, f.player.AttackInterval(), 1e-9)

	// Таймер перезапущен: первый выстрел через 0.5/1.15 после улучшения.
	f.scheduler.Advance(0.43)
	f.scheduler.Advance(0.02)
	f.scheduler.Advance(0.43)
}

func TestUpgradeEffects(t *testing.T) {
	f := newFixture(t, SkinDefault)
	f.player.TakeDamage(30)

	f.player.IncreaseMaxHealth(20)
	assert.Equal(t, 120.0, f.player.Health.Max)
	assert.Equal(t, 90.0, f.player.Health.Value)

	f.player.IncreaseMovementSpeed(0.1)
	f.player.IncreaseProjectileSize(0.2)
	assert.InDelta(t, 1.1, f.player.Multipliers.MovementSpeed, 1e-9)
	assert.InDelta(t, 1.2, f.player.Multipliers.ProjectileSize, 1e-9)
}

func TestWizardRegeneratesEverySecond(t *testing.T) {
	f := newFixture(t, SkinWizard)
	f.player.TakeDamage(10)

	f.scheduler.Advance(1)
	assert.Equal(t, 91.0, f.player.Health.Value)
	f.scheduler.Advance(1)
	assert.Equal(t, 92.0, f.player.Health.Value)
}

func TestRegenNeverExceedsMaxHealth(t *testing.T) {
	f := newFixture(t, SkinWizard)
	f.scheduler.Advance(10)
	assert.Equal(t, 100.0, f.player.Health.Value)
}

func TestMesmerRegenAndTrail(t *testing.T) {
	f := newFixture(t, SkinMesmer)
	ctrl := gomock.NewController(t)
	in := mocks.NewMockInputSource(ctrl)
	in.EXPECT().Direction().Return(1.0, 0.0).AnyTimes()
	in.EXPECT().AimPosition().Return(0.0, 0.0).AnyTimes()

	f.player.TakeDamage(10)
	f.player.Update(1.0/60, in)
	f.scheduler.Advance(0.5)

	trail := f.player.TrailCircles()
	require.Len(t, trail, 1)
	assert.Equal(t, 15.0, trail[0].Radius)

	f.scheduler.Advance(1.5)
	assert.Equal(t, 91.0, f.player.Health.Value)
	assert.Len(t, f.player.TrailCircles(), 4)

	f.player.Update(3.0, in)
	assert.Empty(t, f.player.TrailCircles())
}

func TestMesmerLeavesNoTrailWhenStanding(t *testing.T) {
	f := newFixture(t, SkinMesmer)
	f.scheduler.Advance(2)
	assert.Empty(t, f.player.TrailCircles())
}

func TestResetRestoresInitialState(t *testing.T) {
	f := newFixture(t, SkinDefault)
	f.player.IncreaseDamage(0.25)
	f.player.IncreaseAttackSpeed(0.15)
	f.player.IncreaseProjectileCount(1)
	f.player.IncreaseMaxHealth(20)
	f.player.AddExperience(30)
	f.player.Position = component.Position{X: 10, Y: 10}
	f.player.SetOverlapping(true)

	f.player.Reset()

	assert.Equal(t, 1, f.player.Level())
	assert.Equal(t, 0.0, f.player.Experience())
	assert.Equal(t, 25, f.player.ExperienceToNextLevel())
	assert.Equal(t, 100.0, f.player.Health.Max)
	assert.Equal(t, 100.0, f.player.Health.Value)
	assert.Equal(t, component.DefaultMultipliers(), f.player.Multipliers)
	assert.Equal(t, component.Position{X: 1024, Y: 768}, f.player.Position)
	assert.False(t, f.player.IsLevelingUp())
	assert.False(t, f.player.IsInvulnerable())
	assert.False(t, f.player.IsOverlapping())

	f.scheduler.Advance(5)
	assert.Equal(t, 100.0, f.player.Health.Value, "contact timer must be cancelled")
}

func TestParseSkin(t *testing.T) {
	tests := []struct {
		in   string
		want Skin
		err  bool
	}{
		{"", SkinDefault, false},
		{"survivor", SkinDefault, false},
		{"Wizard", SkinWizard, false},
		{"mesmer", SkinMesmer, false},
		{"knight", SkinDefault, true},
	}
	for _, tt := range tests {
		got, err := ParseSkin(tt.in)
		if tt.err {
			assert.ErrorIs(t, err, ErrUnknownSkin)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestSpreadOffsets(t *testing.T) {
	assert.Equal(t, []float64{0}, SpreadOffsets(1))
	two := SpreadOffsets(2)
	assert.InDelta(t, -math.Pi/12, two[0], 1e-9)
	assert.InDelta(t, math.Pi/12, two[1], 1e-9)
}
