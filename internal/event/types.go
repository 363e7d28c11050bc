// internal/event/types.go
package event

const (
	ExperienceCollected EventType = "ExperienceCollected" // Игрок подобрал сферу опыта
	LevelUp             EventType = "LevelUp"             // Новый уровень, нужен выбор улучшения
	GameOver            EventType = "GameOver"            // Игрок побеждён
	EnemyDefeated       EventType = "EnemyDefeated"       // Враг уничтожен
	PlayerDamaged       EventType = "PlayerDamaged"
)

// ExperienceData - данные ExperienceCollected.
type ExperienceData struct {
	Value float64
	Total float64 // весь собранный опыт за забег
}

// LevelUpData - данные LevelUp.
type LevelUpData struct {
	Level int
}

// EnemyDefeatedData - данные EnemyDefeated.
type EnemyDefeatedData struct {
	Index int
	Tier  int
	X, Y  float64
}

// PlayerDamagedData - данные PlayerDamaged.
type PlayerDamagedData struct {
	Amount float64
	Health float64
}
