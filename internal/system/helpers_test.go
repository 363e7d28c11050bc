package system

import (
	"testing"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/timer"
	"go-survivors/internal/utils"
)

type fakeTarget struct {
	x, y  float64
	level int
}

func (f *fakeTarget) Pos() (float64, float64) { return f.x, f.y }
func (f *fakeTarget) Level() int              { return f.level }

type countingDropper struct {
	calls  int
	accept bool
}

func (d *countingDropper) SpawnOrb(x, y float64) bool {
	d.calls++
	return d.accept
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

// sysFixture - мир 2048x1536, камера в (0, 0) размером 1024x768, игрок-цель в (500, 400).
type sysFixture struct {
	balance    *config.Balance
	world      *entity.World
	camera     *entity.Camera
	scheduler  *timer.Scheduler
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	target     *fakeTarget
	drops      *countingDropper
	enemies    *EnemySystem
}

func newSysFixture(t *testing.T, mutate func(b *config.Balance)) *sysFixture {
	t.Helper()
	balance := config.DefaultBalance()
	if mutate != nil {
		mutate(&balance)
	}
	f := &sysFixture{
		balance:    &balance,
		world:      entity.NewWorld(),
		scheduler:  timer.NewScheduler(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(42),
		target:     &fakeTarget{x: 500, y: 400, level: 1},
		drops:      &countingDropper{accept: true},
	}
	f.camera = entity.NewCamera(f.world, config.ScreenWidth, config.ScreenHeight)
	f.enemies = NewEnemySystem(f.balance, f.world, f.camera, f.target, f.drops, f.scheduler, f.dispatcher, f.rng)
	return f
}
