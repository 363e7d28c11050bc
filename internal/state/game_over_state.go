// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-survivors/internal/ui"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState - итоги забега. Space - новая попытка, Esc - меню.
type GameOverState struct {
	sm      *StateMachine
	game    *GameState
	refusal string
}

func NewGameOverState(sm *StateMachine, game *GameState) *GameOverState {
	return &GameOverState{sm: sm, game: game}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.game.Close()
		s.sm.SetState(NewMenuState(s.sm, s.game.session))
		return
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	if err := beginGame(s.game.session); err != nil {
		s.refusal = err.Error()
		return
	}
	s.game.game.RestartGame()
	s.sm.SetState(s.game)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	stats := s.game.game.Stats()
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Survived %s", utils.FormatClock(stats.SurvivalTime)),
		fmt.Sprintf("Level %d, %d enemies defeated", stats.Level, stats.EnemiesDefeated),
		"Space to play again, Esc for menu",
	}
	if s.refusal != "" {
		lines = append(lines, s.refusal)
	}
	ui.DrawMessage(screen, lines...)
}

func (s *GameOverState) Exit() {}
