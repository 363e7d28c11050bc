// internal/state/pause_state.go
package state

import (
	"go-survivors/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState - ручная пауза поверх игры.
type PauseState struct {
	sm   *StateMachine
	game *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{sm: sm, game: game}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || s.game.pauseClicked()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.game.Close()
		s.sm.SetState(NewMenuState(s.sm, s.game.session))
		return
	}
	if unpause && !s.game.game.TogglePause() {
		s.game.hud.Pause.TogglePause()
		s.sm.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	ui.DrawMessage(screen, "PAUSED", "P / Esc to resume, Q to quit to menu")
}

func (s *PauseState) Exit() {}
