// internal/state/upgrade_state.go
package state

import (
	"go-survivors/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*UpgradeState)(nil)

// UpgradeState - выбор улучшения при повышении уровня: клик или клавиши 1-3.
type UpgradeState struct {
	sm    *StateMachine
	game  *GameState
	panel *ui.UpgradePanel
}

func NewUpgradeState(sm *StateMachine, game *GameState) *UpgradeState {
	return &UpgradeState{sm: sm, game: game, panel: ui.NewUpgradePanel()}
}

func (s *UpgradeState) Enter() {
	g := s.game.game
	s.panel.SetOffers(g.Offers(), g.Snapshot().Upgrades)
}

func (s *UpgradeState) Update(deltaTime float64) {
	id, ok := s.chosen()
	if !ok {
		return
	}

	g := s.game.game
	var resumed bool
	if id == "" {
		resumed = g.SkipUpgrade()
	} else {
		resumed = g.SelectUpgrade(id)
	}
	if !resumed {
		return
	}
	if g.AwaitingUpgrade() {
		// следующий уровень уже набран, сразу новый выбор
		s.panel.SetOffers(g.Offers(), g.Snapshot().Upgrades)
		return
	}
	s.sm.SetState(s.game)
}

func (s *UpgradeState) chosen() (string, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return s.panel.Clicked(ebiten.CursorPosition())
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			return s.panel.ID(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		// Enter работает только для кнопки "Continue"
		if id, ok := s.panel.ID(0); ok && id == "" {
			return id, true
		}
	}
	return "", false
}

func (s *UpgradeState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	mx, my := ebiten.CursorPosition()
	s.panel.Draw(screen, mx, my)
}

func (s *UpgradeState) Exit() {}
