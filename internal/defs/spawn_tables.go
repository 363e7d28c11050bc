// internal/defs/spawn_tables.go
package defs

// SpawnEntry представляет одну запись в таблице появления.
// Tier - тир врага, а Weight - его "вес" или относительный шанс появления.
type SpawnEntry struct {
	Tier   EnemyTier `json:"tier" yaml:"tier"`
	Weight int       `json:"weight" yaml:"weight"`
}

// SpawnTable определяет список возможных врагов начиная с уровня игрока MinLevel.
type SpawnTable struct {
	MinLevel int          `json:"min_level" yaml:"min_level"`
	Entries  []SpawnEntry `json:"entries" yaml:"entries"`
}

// DefaultSpawnTables: до 3 уровня только tier1, с 3 по 5 - 70/30, с 6 - 40/20/40.
func DefaultSpawnTables() []SpawnTable {
	return []SpawnTable{
		{MinLevel: 1, Entries: []SpawnEntry{{Tier: Tier1, Weight: 100}}},
		{MinLevel: 3, Entries: []SpawnEntry{{Tier: Tier1, Weight: 70}, {Tier: Tier2, Weight: 30}}},
		{MinLevel: 6, Entries: []SpawnEntry{{Tier: Tier1, Weight: 40}, {Tier: Tier2, Weight: 20}, {Tier: Tier3, Weight: 40}}},
	}
}

// TableForLevel возвращает таблицу с наибольшим MinLevel, не превышающим level.
// Таблицы должны быть отсортированы по MinLevel.
func TableForLevel(tables []SpawnTable, level int) (SpawnTable, bool) {
	found := false
	var result SpawnTable
	for _, t := range tables {
		if t.MinLevel <= level {
			result = t
			found = true
		}
	}
	return result, found
}
