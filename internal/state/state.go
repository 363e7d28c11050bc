// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State - экран игры: меню, забег, пауза, выбор улучшения, итоги.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны. Переход, запрошенный из Update,
// выполняется после того, как текущее состояние закончит свой кадр.
type StateMachine struct {
	current    State
	pending    State
	hasPending bool
	updating   bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState переключает на newState. nil оставляет машину без состояния.
func (sm *StateMachine) SetState(newState State) {
	if sm.updating {
		sm.pending, sm.hasPending = newState, true
		return
	}
	sm.switchTo(newState)
}

func (sm *StateMachine) switchTo(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние и применяет отложенный переход.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.updating = true
		sm.current.Update(deltaTime)
		sm.updating = false
	}
	if sm.hasPending {
		next := sm.pending
		sm.pending, sm.hasPending = nil, false
		sm.switchTo(next)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
