// internal/defs/upgrades.go
package defs

// AbilityID - способность, к которой привязана цепочка улучшений.
type AbilityID string

const (
	AbilityNone        AbilityID = ""
	AbilityThunder     AbilityID = "thunder"
	AbilityMagicCircle AbilityID = "magic_circle"
)

// Prerequisite - условие для улучшений из цепочки:
// способность должна быть активна и иметь ровно уровень Level.
type Prerequisite struct {
	Ability AbilityID `json:"ability"`
	Level   int       `json:"level"`
}

// UpgradeDefinition holds display metadata and limits for one upgrade.
type UpgradeDefinition struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	MaxLevel    int           `json:"max_level"`
	Requires    *Prerequisite `json:"requires,omitempty"`
}

const (
	UpgradeDamage          = "damage"
	UpgradeAttackSpeed     = "attack_speed"
	UpgradeProjectileCount = "projectile_count"
	UpgradeProjectileSize  = "projectile_size"
	UpgradeMaxHealth       = "max_health"
	UpgradeMovementSpeed   = "movement_speed"
	UpgradeThunderMagic    = "thunder_magic"
	UpgradeDoubleThunder   = "double_thunder"
	UpgradeTripleThunder   = "triple_thunder"
	UpgradeThunderStorm    = "thunder_storm"
	UpgradeMagicCircle     = "magic_circle"
	UpgradeEmpoweredCircle = "empowered_circle"
	UpgradeGreaterCircle   = "greater_circle"
	UpgradeArcaneCircle    = "arcane_circle"
)

// UpgradeLibrary - полный каталог улучшений в порядке показа.
var UpgradeLibrary = []UpgradeDefinition{
	{ID: UpgradeDamage, Name: "Sharp Stinger", Description: "Increase damage by 25%", Icon: "damage", MaxLevel: 5},
	{ID: UpgradeAttackSpeed, Name: "Quick Shot", Description: "Increase attack speed by 15%", Icon: "attack_speed", MaxLevel: 5},
	{ID: UpgradeProjectileCount, Name: "Multi Shot", Description: "Fire an additional projectile", Icon: "projectile_count", MaxLevel: 3},
	{ID: UpgradeProjectileSize, Name: "Big Shot", Description: "Increase projectile size by 20%", Icon: "projectile_size", MaxLevel: 3},
	{ID: UpgradeMaxHealth, Name: "Tough Shell", Description: "Increase max health by 20", Icon: "max_health", MaxLevel: 5},
	{ID: UpgradeMovementSpeed, Name: "Swift Wings", Description: "Increase movement speed by 10%", Icon: "movement_speed", MaxLevel: 3},
	{ID: UpgradeThunderMagic, Name: "Thunder Magic", Description: "Lightning strikes the closest enemy every 4 seconds", Icon: "thunder", MaxLevel: 1},
	{ID: UpgradeDoubleThunder, Name: "Double Thunder", Description: "Lightning strikes 2 enemies", Icon: "thunder", MaxLevel: 1,
		Requires: &Prerequisite{Ability: AbilityThunder, Level: 0}},
	{ID: UpgradeTripleThunder, Name: "Triple Thunder", Description: "Lightning strikes 3 enemies", Icon: "thunder", MaxLevel: 1,
		Requires: &Prerequisite{Ability: AbilityThunder, Level: 1}},
	{ID: UpgradeThunderStorm, Name: "Thunder Storm", Description: "Lightning strikes 4 enemies", Icon: "thunder", MaxLevel: 1,
		Requires: &Prerequisite{Ability: AbilityThunder, Level: 2}},
	{ID: UpgradeMagicCircle, Name: "Magic Circle", Description: "A rotating circle damages nearby enemies", Icon: "magic_circle", MaxLevel: 1},
	{ID: UpgradeEmpoweredCircle, Name: "Empowered Circle", Description: "Magic circle grows and hits harder", Icon: "magic_circle", MaxLevel: 1,
		Requires: &Prerequisite{Ability: AbilityMagicCircle, Level: 0}},
	{ID: UpgradeGreaterCircle, Name: "Greater Circle", Description: "Magic circle grows and hits harder", Icon: "magic_circle", MaxLevel: 1,
		Requires: &Prerequisite{Ability: AbilityMagicCircle, Level: 1}},
	{ID: UpgradeArcaneCircle, Name: "Arcane Circle", Description: "Magic circle reaches its full power", Icon: "magic_circle", MaxLevel: 1,
		Requires: &Prerequisite{Ability: AbilityMagicCircle, Level: 2}},
}
