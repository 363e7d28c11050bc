// internal/component/player.go
package component

// PlayerStateComponent хранит прогресс игрока: уровень и опыт.
// Experience - весь собранный опыт, он никогда не уменьшается;
// растёт только порог ExperienceToNextLevel.
type PlayerStateComponent struct {
	Level                 int     // Текущий уровень игрока
	Experience            float64 // Весь опыт за забег
	ExperienceToNextLevel int     // Порог следующего уровня
}

// Multipliers - накопленные улучшения игрока. Все начинаются с 1.
type Multipliers struct {
	Damage          float64
	AttackSpeed     float64
	ProjectileSize  float64
	MovementSpeed   float64
	ProjectileCount int
}

// DefaultMultipliers - множители без улучшений.
func DefaultMultipliers() Multipliers {
	return Multipliers{
		Damage:          1,
		AttackSpeed:     1,
		ProjectileSize:  1,
		MovementSpeed:   1,
		ProjectileCount: 1,
	}
}
