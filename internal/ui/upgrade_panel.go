// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"

	"go-survivors/internal/config"
	"go-survivors/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
)

// UpgradePanel - карточки выбора улучшения при повышении уровня.
// Без предложений показывает одну кнопку "Continue".
type UpgradePanel struct {
	cards []*Button
	ids   []string
}

func NewUpgradePanel() *UpgradePanel {
	return &UpgradePanel{}
}

// SetOffers раскладывает карточки по центру экрана.
// levels - уже набранные уровни улучшений.
func (p *UpgradePanel) SetOffers(offers []system.Upgrade, levels map[string]int) {
	p.cards = p.cards[:0]
	p.ids = p.ids[:0]

	if len(offers) == 0 {
		w, h := float32(config.UpgradeCardWidth), float32(config.UpgradeCardHeight/2)
		p.cards = append(p.cards, NewButton((config.ScreenWidth-w)/2, (config.ScreenHeight-h)/2, w, h, "Continue"))
		p.ids = append(p.ids, "")
		return
	}

	n := float32(len(offers))
	total := n*config.UpgradeCardWidth + (n-1)*config.UpgradeCardGap
	x := (config.ScreenWidth - total) / 2
	y := float32(config.ScreenHeight-config.UpgradeCardHeight) / 2
	for i, u := range offers {
		label := fmt.Sprintf("%d. %s", i+1, u.Name)
		card := NewButton(x, y, config.UpgradeCardWidth, config.UpgradeCardHeight, label)
		card.Subtext = fmt.Sprintf("%s (%d/%d)", u.Description, levels[u.ID]+1, u.MaxLevel)
		p.cards = append(p.cards, card)
		p.ids = append(p.ids, u.ID)
		x += config.UpgradeCardWidth + config.UpgradeCardGap
	}
}

// Clicked возвращает id карточки под курсором. Пустой id - кнопка "Continue".
func (p *UpgradePanel) Clicked(mx, my int) (string, bool) {
	for i, c := range p.cards {
		if c.Contains(mx, my) {
			return p.ids[i], true
		}
	}
	return "", false
}

// ID возвращает id карточки по номеру, начиная с нуля.
func (p *UpgradePanel) ID(index int) (string, bool) {
	if index < 0 || index >= len(p.ids) {
		return "", false
	}
	return p.ids[index], true
}

func (p *UpgradePanel) Draw(screen *ebiten.Image, mx, my int) {
	DrawOverlay(screen)
	title := "LEVEL UP! Choose an upgrade"
	if len(p.ids) == 1 && p.ids[0] == "" {
		title = "LEVEL UP! Every upgrade is maxed"
	}
	top := (config.ScreenHeight-config.UpgradeCardHeight)/2 - config.HUDMargin*3
	DrawTextCentered(screen, title, config.ScreenWidth/2, top, config.TextLightColor)
	for _, c := range p.cards {
		c.Draw(screen, mx, my)
	}
}
