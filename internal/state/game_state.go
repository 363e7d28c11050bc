// internal/state/game_state.go
package state

import (
	"go-survivors/internal/app"
	"go-survivors/internal/input"
	"go-survivors/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState - состояние игры. Пауза, выбор улучшения и конец игры
// живут в отдельных состояниях, которые рисуют сцену под собой.
type GameState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
	hud     *ui.HUD
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	keyboard := input.NewKeyboard()
	g := app.NewGame(app.Options{
		Balance:        session.Balance,
		Skin:           session.Skin,
		Seed:           session.Seed,
		Input:          keyboard,
		GamesRemaining: session.gamesRemaining(),
	})
	keyboard.Attach(g.Camera)

	return &GameState{
		sm:      sm,
		session: session,
		game:    g,
		hud:     ui.NewHUD(),
	}
}

// Game возвращает сцену.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.game.Start()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.pauseClicked() {
		if g.game.TogglePause() {
			g.hud.Pause.TogglePause()
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
	}

	g.game.Update(deltaTime)

	switch {
	case g.game.IsGameOver():
		g.sm.SetState(NewGameOverState(g.sm, g))
	case g.game.AwaitingUpgrade():
		g.sm.SetState(NewUpgradeState(g.sm, g))
	}
}

func (g *GameState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return g.hud.Pause.IsClicked(ebiten.CursorPosition())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.session.Renderer.Draw(screen, g.game)
	g.hud.Draw(screen, g.game.Snapshot())
}

func (g *GameState) Exit() {}

// Close освобождает сцену при выходе в меню.
func (g *GameState) Close() {
	g.game.Close()
}
