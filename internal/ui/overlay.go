// internal/ui/overlay.go
package ui

import (
	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawOverlay затемняет весь экран.
func DrawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
}

// DrawMessage рисует затемнение и строки по центру экрана.
func DrawMessage(screen *ebiten.Image, lines ...string) {
	DrawOverlay(screen)
	step := fontFace.Height + config.TextOffsetY*2
	y := config.ScreenHeight/2 - len(lines)*step/2
	for _, line := range lines {
		DrawTextCentered(screen, line, config.ScreenWidth/2, y, config.TextLightColor)
		y += step
	}
}
