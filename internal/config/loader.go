// internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadBalance читает YAML-файл поверх DefaultBalance.
// Поля, которых нет в файле, остаются стандартными.
func LoadBalance(path string) (Balance, error) {
	balance := DefaultBalance()
	if path == "" {
		return balance, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return balance, fmt.Errorf("failed to read balance file: %w", err)
	}
	if err := yaml.Unmarshal(file, &balance); err != nil {
		return balance, fmt.Errorf("failed to unmarshal balance file %s: %w", path, err)
	}
	if err := balance.Validate(); err != nil {
		return balance, fmt.Errorf("invalid balance file %s: %w", path, err)
	}

	log.Printf("Loaded balance from %s (%d enemy tiers, %d spawn tables)", path, len(balance.Enemy.Tiers), len(balance.Enemy.SpawnTables))
	return balance, nil
}

// Validate проверяет значения, без которых симуляция не работает.
func (b Balance) Validate() error {
	var errs []error
	positive := map[string]float64{
		"player.speed":                b.Player.Speed,
		"player.max_health":           b.Player.MaxHealth,
		"player.attack_interval":      b.Player.AttackInterval,
		"player.contact_interval":     b.Player.ContactInterval,
		"experience.threshold":        float64(b.Experience.InitialThreshold),
		"experience.threshold_growth": b.Experience.ThresholdGrowth,
		"enemy.spawn_interval":        b.Enemy.SpawnInterval,
		"enemy.min_spawn_factor":      b.Enemy.MinSpawnFactor,
		"enemy.base_size":             b.Enemy.BaseSize,
		"projectile.lifespan":         b.Projectile.Lifespan,
		"thunder.interval":            b.Thunder.Interval,
		"magic_circle.tick_interval":  b.MagicCircle.TickInterval,
		"skins.trail_interval":        b.Skins.TrailInterval,
		"skins.wizard_regen_interval": b.Skins.WizardRegenInterval,
		"skins.mesmer_regen_interval": b.Skins.MesmerRegenInterval,
	}
	for name, v := range positive {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	if b.Enemy.MaxCount <= 0 || b.Projectile.MaxCount <= 0 || b.Experience.MaxOrbs <= 0 {
		errs = append(errs, errors.New("pool capacities must be positive"))
	}
	if len(b.Enemy.Tiers) == 0 {
		errs = append(errs, errors.New("at least one enemy tier is required"))
	}
	if len(b.Enemy.SpawnTables) == 0 {
		errs = append(errs, errors.New("at least one spawn table is required"))
	}
	return errors.Join(errs...)
}
