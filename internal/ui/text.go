// internal/ui/text.go
package ui

import (
	"image/color"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var fontFace = basicfont.Face7x13

// TextWidth - ширина строки моноширинным шрифтом.
func TextWidth(s string) int {
	return len([]rune(s)) * config.TextCharWidth
}

// DrawText рисует строку, (x, y) - левый верхний угол.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, fontFace, x, y+fontFace.Ascent, clr)
}

// DrawTextCentered центрирует строку по x.
func DrawTextCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	DrawText(screen, s, cx-TextWidth(s)/2, y, clr)
}
