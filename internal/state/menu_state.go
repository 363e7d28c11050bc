// internal/state/menu_state.go
package state

import (
	"errors"
	"fmt"
	"log"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/gate"
	"go-survivors/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var skins = []entity.Skin{entity.SkinDefault, entity.SkinWizard, entity.SkinMesmer}

// MenuState - выбор скина и старт игры с проверкой дневного лимита.
type MenuState struct {
	sm      *StateMachine
	session *Session
	start   *ui.Button
	refusal string
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	w, h := float32(config.UpgradeCardWidth), float32(config.UpgradeCardHeight/2)
	return &MenuState{
		sm:      sm,
		session: session,
		start:   ui.NewButton((config.ScreenWidth-w)/2, config.ScreenHeight/2+h, w, h, "Start"),
	}
}

func (m *MenuState) Enter() {
	m.refusal = ""
}

func (m *MenuState) Update(deltaTime float64) {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			m.session.Skin = skins[i]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		m.cycleSkin(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		m.cycleSkin(1)
	}

	clicked := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		clicked = m.start.Contains(ebiten.CursorPosition())
	}
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.tryStart()
	}
}

func (m *MenuState) cycleSkin(step int) {
	idx := int(m.session.Skin) + step
	n := len(skins)
	m.session.Skin = skins[(idx%n+n)%n]
}

func (m *MenuState) tryStart() {
	if err := StartGame(m.sm, m.session); err != nil {
		m.refusal = err.Error()
	}
}

// StartGame засчитывает игру и переключает машину на новый забег.
func StartGame(sm *StateMachine, session *Session) error {
	if err := beginGame(session); err != nil {
		return err
	}
	sm.SetState(NewGameState(sm, session))
	return nil
}

// beginGame засчитывает игру в дневном лимите.
// Ошибка сохранения не мешает играть, отказ возвращается только при исчерпанном лимите.
func beginGame(session *Session) error {
	if session.Gate == nil {
		return nil
	}
	err := session.Gate.Begin()
	if errors.Is(err, gate.ErrLimitReached) {
		left := session.Gate.TimeUntilReset()
		return fmt.Errorf("no games left today, next game in %dh %02dm", int(left.Hours()), int(left.Minutes())%60)
	}
	if err != nil {
		log.Printf("Gate: %v", err)
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	y := config.ScreenHeight / 4
	ui.DrawTextCentered(screen, "SURVIVORS", cx, y, config.TextLightColor)
	y += config.HUDMargin * 3

	for i, s := range skins {
		label := fmt.Sprintf("%d. %s", i+1, s)
		if s == m.session.Skin {
			label = "> " + label + " <"
		}
		ui.DrawTextCentered(screen, label, cx, y, config.TextLightColor)
		y += config.HUDMargin * 2
	}
	ui.DrawTextCentered(screen, "WASD/arrows to move, mouse to aim, P to pause", cx, y+config.HUDMargin, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	m.start.Draw(screen, mx, my)

	if m.session.Gate != nil {
		remaining := m.session.Gate.GamesRemainingToday()
		label := fmt.Sprintf("Games left today: %d/%d", remaining, m.session.Gate.Limit())
		if remaining == 0 {
			left := m.session.Gate.TimeUntilReset()
			label += fmt.Sprintf(", resets in %dh %02dm", int(left.Hours()), int(left.Minutes())%60)
		}
		ui.DrawTextCentered(screen, label, cx, int(m.start.Y+m.start.Height)+config.HUDMargin, config.TextLightColor)
	}
	if m.refusal != "" {
		ui.DrawTextCentered(screen, m.refusal, cx, int(m.start.Y+m.start.Height)+config.HUDMargin*3, config.HealthBarLowColor)
	}
}

func (m *MenuState) Exit() {}
