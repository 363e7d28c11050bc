// internal/ui/button.go
package ui

import (
	"image/color"

	"go-survivors/internal/config"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	Subtext             string
	TextColor           color.RGBA
	BgColor             color.RGBA
	HoverColor          color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(mx, my int) bool {
	x, y := float32(mx), float32(my)
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Draw отрисовывает кнопку. Подпись сверху, Subtext переносится по словам.
func (b *Button) Draw(screen *ebiten.Image, mx, my int) {
	bg := b.BgColor
	if b.Contains(mx, my) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, float32(config.StrokeWidth), config.ButtonStrokeColor, true)

	cx := int(b.X + b.Width/2)
	if b.Subtext == "" {
		DrawTextCentered(screen, b.Text, cx, int(b.Y+b.Height/2)-fontFace.Height/2, b.TextColor)
		return
	}
	y := int(b.Y) + config.HUDMargin
	DrawTextCentered(screen, b.Text, cx, y, b.TextColor)
	y += fontFace.Height * 2
	maxChars := int(b.Width)/config.TextCharWidth - 2
	for _, line := range utils.WrapText(b.Subtext, maxChars) {
		DrawTextCentered(screen, line, cx, y, b.TextColor)
		y += fontFace.Height + config.TextOffsetY
	}
}
