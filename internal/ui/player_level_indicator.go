// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const borderWidth = 1

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает полосу опыта и номер уровня.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level int, currentXP float64, xpToNext int) {
	vector.StrokeRect(screen, i.X, i.Y, config.HUDBarWidth, config.HUDBarHeight, borderWidth, borderColor, true)

	fillRatio := 0.0
	if xpToNext > 0 {
		fillRatio = currentXP / float64(xpToNext)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(config.HUDBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, config.HUDBarHeight-borderWidth*2, config.XPBarColor, true)
	}

	label := fmt.Sprintf("LV %d  %d/%d", level, int(currentXP), xpToNext)
	DrawText(screen, label, int(i.X)+config.HUDBarWidth+config.HUDMargin/2, int(i.Y), config.TextLightColor)
}
