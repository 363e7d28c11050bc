// internal/ui/ability_indicator.go
package ui

import (
	"go-survivors/internal/config"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// AbilityIndicator показывает активные способности с уровнем римскими цифрами.
type AbilityIndicator struct {
	X, Y float32
}

func NewAbilityIndicator(x, y float32) *AbilityIndicator {
	return &AbilityIndicator{X: x, Y: y}
}

// Draw рисует строку на каждую активную способность. Уровни считаются с нуля, на экране с I.
func (i *AbilityIndicator) Draw(screen *ebiten.Image, thunderActive bool, thunderLevel int, circleActive bool, circleLevel int) {
	y := int(i.Y)
	if thunderActive {
		DrawText(screen, "Thunder "+utils.ToRoman(thunderLevel+1), int(i.X), y, config.LightningColor)
		y += fontFace.Height + config.TextOffsetY
	}
	if circleActive {
		DrawText(screen, "Magic Circle "+utils.ToRoman(circleLevel+1), int(i.X), y, config.MagicElementColor)
	}
}
