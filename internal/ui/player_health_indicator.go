// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const lowHealthRatio = 0.3

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует полосу здоровья и подпись "HP value/max" справа.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float64) {
	vector.DrawFilledRect(screen, i.X, i.Y, config.HUDBarWidth, config.HUDBarHeight, config.HealthBarBgColor, false)

	ratio := 0.0
	if maxHealth > 0 {
		ratio = health / maxHealth
	}
	if ratio > 1 {
		ratio = 1
	}
	fill := config.HealthBarColor
	if ratio < lowHealthRatio {
		fill = config.HealthBarLowColor
	}
	if w := float32(config.HUDBarWidth * ratio); w > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, w, config.HUDBarHeight, fill, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, config.HUDBarWidth, config.HUDBarHeight, borderWidth, borderColor, false)

	label := fmt.Sprintf("HP %d/%d", int(health), int(maxHealth))
	DrawText(screen, label, int(i.X)+config.HUDBarWidth+config.HUDMargin/2, int(i.Y), config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return config.HUDBarHeight
}
