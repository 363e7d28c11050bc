// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-survivors/internal/app"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUD собирает индикаторы поверх сцены. Все данные берутся из снимка игры.
type HUD struct {
	health    *PlayerHealthIndicator
	level     *PlayerLevelIndicator
	abilities *AbilityIndicator
	Pause     *PauseButton
}

func NewHUD() *HUD {
	m := float32(config.HUDMargin)
	rowStep := float32(config.HUDBarHeight + config.HUDMargin/2)
	return &HUD{
		health:    NewPlayerHealthIndicator(m, m),
		level:     NewPlayerLevelIndicator(m, m+rowStep),
		abilities: NewAbilityIndicator(m, m+rowStep*2+config.TextOffsetY),
		Pause:     NewPauseButton(config.ScreenWidth-m*2, m*2, 10, config.ButtonColor, config.HealthBarColor),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	h.health.Draw(screen, snap.Health, snap.MaxHealth)
	h.level.Draw(screen, snap.Level, snap.Experience, snap.ExperienceToNextLevel)
	h.abilities.Draw(screen, snap.ThunderActive, snap.ThunderLevel, snap.CircleActive, snap.CircleLevel)

	h.Pause.SetPaused(snap.Phase == component.PhasePaused)
	h.Pause.Draw(screen)

	right := config.ScreenWidth - config.HUDMargin*4
	lines := []string{
		utils.FormatClock(snap.SurvivalTime),
		fmt.Sprintf("Kills %d", snap.EnemiesDefeated),
		fmt.Sprintf("Enemies %d", snap.EnemyCount),
	}
	y := config.HUDMargin
	for _, line := range lines {
		DrawText(screen, line, right-TextWidth(line), y, config.TextLightColor)
		y += fontFace.Height + config.TextOffsetY
	}

	h.drawUpgrades(screen, snap.Upgrades)

	if snap.GamesRemaining >= 0 {
		label := fmt.Sprintf("Games left today: %d", snap.GamesRemaining)
		DrawText(screen, label, config.HUDMargin, config.ScreenHeight-config.HUDMargin-fontFace.Height, config.TextLightColor)
	}
}

// drawUpgrades - список набранных улучшений в правом нижнем углу, в порядке каталога.
func (h *HUD) drawUpgrades(screen *ebiten.Image, levels map[string]int) {
	var lines []string
	for _, u := range defs.UpgradeLibrary {
		if lvl := levels[u.ID]; lvl > 0 {
			lines = append(lines, fmt.Sprintf("%s %d/%d", u.Name, lvl, u.MaxLevel))
		}
	}
	step := fontFace.Height + config.TextOffsetY
	y := config.ScreenHeight - config.HUDMargin - len(lines)*step
	right := config.ScreenWidth - config.HUDMargin
	for _, line := range lines {
		DrawText(screen, line, right-TextWidth(line), y, config.TextLightColor)
		y += step
	}
}
