// internal/config/balance.go
package config

import "go-survivors/internal/defs"

// PlayerBalance - параметры игрока. Время в секундах.
type PlayerBalance struct {
	Speed                float64 `yaml:"speed"`
	MaxHealth            float64 `yaml:"max_health"`
	AttackInterval       float64 `yaml:"attack_interval"`
	ProjectileDamage     float64 `yaml:"projectile_damage"`
	ContactDamage        float64 `yaml:"contact_damage"`
	ContactInterval      float64 `yaml:"contact_interval"`
	InvulnerableDuration float64 `yaml:"invulnerable_duration"`
	DefeatDelay          float64 `yaml:"defeat_delay"`
	HitboxWidth          float64 `yaml:"hitbox_width"`
	HitboxHeight         float64 `yaml:"hitbox_height"`
}

// ExperienceBalance - сферы опыта и пороги уровней.
type ExperienceBalance struct {
	OrbValue         float64 `yaml:"orb_value"`
	OrbLifespan      float64 `yaml:"orb_lifespan"`
	MaxOrbs          int     `yaml:"max_orbs"`
	PickupRadius     float64 `yaml:"pickup_radius"`
	MagnetRadius     float64 `yaml:"magnet_radius"`
	MagnetSpeed      float64 `yaml:"magnet_speed"`
	InitialThreshold int     `yaml:"initial_threshold"`
	ThresholdGrowth  float64 `yaml:"threshold_growth"`
}

// EnemyBalance - пул врагов, спавн, отбрасывание.
type EnemyBalance struct {
	MaxCount               int                    `yaml:"max_count"`
	SpawnInterval          float64                `yaml:"spawn_interval"`
	SpawnPadding           float64                `yaml:"spawn_padding"`
	SpawnReductionPerLevel float64                `yaml:"spawn_reduction_per_level"`
	MinSpawnFactor         float64                `yaml:"min_spawn_factor"`
	KnockbackForce         float64                `yaml:"knockback_force"`
	KnockbackDuration      float64                `yaml:"knockback_duration"`
	TintDuration           float64                `yaml:"tint_duration"`
	OffscreenRefreshChance float64                `yaml:"offscreen_refresh_chance"`
	OffscreenSpeedFactor   float64                `yaml:"offscreen_speed_factor"`
	VisibilityMargin       float64                `yaml:"visibility_margin"`
	SeparationDistance     float64                `yaml:"separation_distance"`
	BaseSize               float64                `yaml:"base_size"`
	Tiers                  []defs.EnemyDefinition `yaml:"tiers"`
	SpawnTables            []defs.SpawnTable      `yaml:"spawn_tables"`
}

// ProjectileBalance - пул снарядов игрока.
type ProjectileBalance struct {
	Speed    float64 `yaml:"speed"`
	Scale    float64 `yaml:"scale"`
	MaxCount int     `yaml:"max_count"`
	Lifespan float64 `yaml:"lifespan"`
	Radius   float64 `yaml:"radius"` // радиус при масштабе 1
}

// ThunderBalance - молния.
type ThunderBalance struct {
	Interval          float64 `yaml:"interval"`
	Damage            float64 `yaml:"damage"`
	Radius            float64 `yaml:"radius"`
	StrikeDuration    float64 `yaml:"strike_duration"`
	ExplosionDuration float64 `yaml:"explosion_duration"`
	MaxLevel          int     `yaml:"max_level"`
}

// MagicCircleBalance - магический круг.
type MagicCircleBalance struct {
	BaseRadius     float64 `yaml:"base_radius"`
	RadiusPerLevel float64 `yaml:"radius_per_level"`
	BaseDamage     float64 `yaml:"base_damage"`
	DamagePerLevel float64 `yaml:"damage_per_level"`
	TickInterval   float64 `yaml:"tick_interval"`
	RotationSpeed  float64 `yaml:"rotation_speed"` // рад/с
	Elements       int     `yaml:"elements"`
	MaxLevel       int     `yaml:"max_level"`
}

// SkinBalance - пассивки скинов.
type SkinBalance struct {
	WizardRegenInterval float64 `yaml:"wizard_regen_interval"`
	MesmerRegenInterval float64 `yaml:"mesmer_regen_interval"`
	RegenAmount         float64 `yaml:"regen_amount"`
	TrailInterval       float64 `yaml:"trail_interval"`
	TrailRadius         float64 `yaml:"trail_radius"`
	TrailLifetime       float64 `yaml:"trail_lifetime"`
	TrailDamage         float64 `yaml:"trail_damage"`
}

// GateBalance - дневной лимит игр.
type GateBalance struct {
	MaxGamesPerDay    int `yaml:"max_games_per_day"`
	DevMaxGamesPerDay int `yaml:"dev_max_games_per_day"`
}

// Balance собирает все игровые числа в одном месте.
type Balance struct {
	Player      PlayerBalance      `yaml:"player"`
	Experience  ExperienceBalance  `yaml:"experience"`
	Enemy       EnemyBalance       `yaml:"enemy"`
	Projectile  ProjectileBalance  `yaml:"projectile"`
	Thunder     ThunderBalance     `yaml:"thunder"`
	MagicCircle MagicCircleBalance `yaml:"magic_circle"`
	Skins       SkinBalance        `yaml:"skins"`
	Gate        GateBalance        `yaml:"gate"`
}

// DefaultBalance возвращает стандартный баланс игры.
func DefaultBalance() Balance {
	return Balance{
		Player: PlayerBalance{
			Speed:                200,
			MaxHealth:            100,
			AttackInterval:       0.5,
			ProjectileDamage:     1,
			ContactDamage:        5,
			ContactInterval:      0.5,
			InvulnerableDuration: 1.0,
			DefeatDelay:          1.0,
			HitboxWidth:          34,
			HitboxHeight:         34,
		},
		Experience: ExperienceBalance{
			OrbValue:         1,
			OrbLifespan:      10,
			MaxOrbs:          100,
			PickupRadius:     10,
			MagnetRadius:     150,
			MagnetSpeed:      300,
			InitialThreshold: 25,
			ThresholdGrowth:  1.8,
		},
		Enemy: EnemyBalance{
			MaxCount:               50,
			SpawnInterval:          1.0,
			SpawnPadding:           20,
			SpawnReductionPerLevel: 0.15,
			MinSpawnFactor:         0.3,
			KnockbackForce:         150,
			KnockbackDuration:      0.2,
			TintDuration:           0.2,
			OffscreenRefreshChance: 0.1,
			OffscreenSpeedFactor:   0.8,
			VisibilityMargin:       100,
			SeparationDistance:     64,
			BaseSize:               40,
			Tiers:                  defs.DefaultEnemies(),
			SpawnTables:            defs.DefaultSpawnTables(),
		},
		Projectile: ProjectileBalance{
			Speed:    400,
			Scale:    0.3,
			MaxCount: 100,
			Lifespan: 2.0,
			Radius:   24,
		},
		Thunder: ThunderBalance{
			Interval:          4.0,
			Damage:            3,
			Radius:            80,
			StrikeDuration:    0.5,
			ExplosionDuration: 0.3,
			MaxLevel:          3,
		},
		MagicCircle: MagicCircleBalance{
			BaseRadius:     60,
			RadiusPerLevel: 20,
			BaseDamage:     1,
			DamagePerLevel: 1,
			TickInterval:   0.5,
			RotationSpeed:  0.02 * FrameRate,
			Elements:       4,
			MaxLevel:       3,
		},
		Skins: SkinBalance{
			WizardRegenInterval: 1.0,
			MesmerRegenInterval: 2.0,
			RegenAmount:         1,
			TrailInterval:       0.5,
			TrailRadius:         15,
			TrailLifetime:       3.0,
			TrailDamage:         1,
		},
		Gate: GateBalance{
			MaxGamesPerDay:    3,
			DevMaxGamesPerDay: 999,
		},
	}
}

// Tier возвращает определение тира. Неизвестный тир даёт первый из списка.
func (b *EnemyBalance) Tier(tier defs.EnemyTier) defs.EnemyDefinition {
	for _, t := range b.Tiers {
		if t.Tier == tier {
			return t
		}
	}
	return b.Tiers[0]
}
