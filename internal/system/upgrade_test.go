package system

import (
	"testing"

	"go-survivors/internal/defs"
	"go-survivors/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upgradeFixture struct {
	*sysFixture
	player   *entity.Player
	ctx      *UpgradeContext
	upgrades *UpgradeSystem
}

func newUpgradeFixture(t *testing.T) *upgradeFixture {
	t.Helper()
	f := newSysFixture(t, nil)
	player := entity.NewPlayer(f.balance, entity.SkinDefault, 500, 400, f.scheduler, f.dispatcher)
	t.Cleanup(player.Destroy)
	ctx := &UpgradeContext{
		Player:      player,
		Projectiles: NewProjectileSystem(),
		Thunder:     NewThunderSystem(f.balance, f.enemies, player, NewVisualEffectSystem(f.rng), f.scheduler),
		MagicCircle: NewMagicCircleSystem(f.balance, f.enemies, player, f.scheduler),
	}
	return &upgradeFixture{
		sysFixture: f,
		player:     player,
		ctx:        ctx,
		upgrades:   NewUpgradeSystem(ctx, f.rng, defs.UpgradeLibrary, DefaultEffects()),
	}
}

func offeredIDs(offers []Upgrade) []string {
	ids := make([]string, len(offers))
	for i, u := range offers {
		ids[i] = u.ID
	}
	return ids
}

func TestApplyUpgradeIncrementsLevelUpToMax(t *testing.T) {
	f := newUpgradeFixture(t)

	for i := 1; i <= 3; i++ {
		require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeMovementSpeed))
		assert.Equal(t, i, f.upgrades.Level(defs.UpgradeMovementSpeed))
	}
	assert.False(t, f.upgrades.ApplyUpgrade(defs.UpgradeMovementSpeed))
	assert.Equal(t, 3, f.upgrades.Level(defs.UpgradeMovementSpeed))
	assert.InDelta(t, 1.3, f.player.Multipliers.MovementSpeed, 1e-9, "maxed upgrade is not applied again")
}

func TestUpgradeEffects(t *testing.T) {
	f := newUpgradeFixture(t)

	require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeDamage))
	require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeAttackSpeed))
	require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeProjectileCount))
	require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeProjectileSize))
	require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeMaxHealth))

	m := f.player.Multipliers
	assert.InDelta(t, 1.25, m.Damage, 1e-9)
	assert.InDelta(t, 1.15, m.AttackSpeed, 1e-9)
	assert.Equal(t, 2, m.ProjectileCount)
	assert.InDelta(t, 1.2, m.ProjectileSize, 1e-9)
	assert.Equal(t, 120.0, f.player.Health.Max)
	assert.Equal(t, 120.0, f.player.Health.Value)
}

func TestAbilityUpgradesDriveSystems(t *testing.T) {
	f := newUpgradeFixture(t)

	require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeThunderMagic))
	assert.True(t, f.ctx.Thunder.IsActive())
	require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeDoubleThunder))
	assert.Equal(t, 1, f.ctx.Thunder.Level())

	require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeMagicCircle))
	assert.True(t, f.ctx.MagicCircle.IsActive())
	require.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeEmpoweredCircle))
	assert.Equal(t, 1, f.ctx.MagicCircle.Level())
}

func TestUpgradeChainsAreOfferedInSequence(t *testing.T) {
	f := newUpgradeFixture(t)
	all := len(defs.UpgradeLibrary)

	ids := offeredIDs(f.upgrades.GetRandomUpgrades(all))
	assert.Contains(t, ids, defs.UpgradeThunderMagic)
	assert.NotContains(t, ids, defs.UpgradeDoubleThunder)
	assert.NotContains(t, ids, defs.UpgradeEmpoweredCircle)

	f.upgrades.ApplyUpgrade(defs.UpgradeThunderMagic)
	ids = offeredIDs(f.upgrades.GetRandomUpgrades(all))
	assert.NotContains(t, ids, defs.UpgradeThunderMagic)
	assert.Contains(t, ids, defs.UpgradeDoubleThunder)
	assert.NotContains(t, ids, defs.UpgradeTripleThunder)

	f.upgrades.ApplyUpgrade(defs.UpgradeDoubleThunder)
	ids = offeredIDs(f.upgrades.GetRandomUpgrades(all))
	assert.NotContains(t, ids, defs.UpgradeDoubleThunder)
	assert.Contains(t, ids, defs.UpgradeTripleThunder)
	assert.NotContains(t, ids, defs.UpgradeThunderStorm)

	f.upgrades.ApplyUpgrade(defs.UpgradeTripleThunder)
	f.upgrades.ApplyUpgrade(defs.UpgradeThunderStorm)
	ids = offeredIDs(f.upgrades.GetRandomUpgrades(all))
	for _, id := range []string{defs.UpgradeThunderMagic, defs.UpgradeDoubleThunder, defs.UpgradeTripleThunder, defs.UpgradeThunderStorm} {
		assert.NotContains(t, ids, id)
	}
	assert.Equal(t, 3, f.ctx.Thunder.Level())
}

func TestChainUpgradeHiddenWhileAbilityInactive(t *testing.T) {
	f := newUpgradeFixture(t)
	f.upgrades.ApplyUpgrade(defs.UpgradeMagicCircle)
	f.ctx.MagicCircle.Deactivate()

	ids := offeredIDs(f.upgrades.GetRandomUpgrades(len(defs.UpgradeLibrary)))
	assert.NotContains(t, ids, defs.UpgradeEmpoweredCircle)
}

func TestGetRandomUpgradesHasNoDuplicates(t *testing.T) {
	f := newUpgradeFixture(t)

	for i := 0; i < 20; i++ {
		offers := f.upgrades.GetRandomUpgrades(3)
		require.Len(t, offers, 3)
		ids := offeredIDs(offers)
		assert.Len(t, map[string]bool{ids[0]: true, ids[1]: true, ids[2]: true}, 3)
	}
}

func TestGetRandomUpgradesReturnsFewerWhenExhausted(t *testing.T) {
	f := newSysFixture(t, nil)
	player := entity.NewPlayer(f.balance, entity.SkinDefault, 500, 400, f.scheduler, f.dispatcher)
	t.Cleanup(player.Destroy)
	ctx := &UpgradeContext{Player: player}
	library := []defs.UpgradeDefinition{
		{ID: defs.UpgradeDamage, Name: "Damage", MaxLevel: 1},
		{ID: defs.UpgradeMovementSpeed, Name: "Speed", MaxLevel: 2},
		{ID: "unbound", Name: "No effect", MaxLevel: 1},
	}
	upgrades := NewUpgradeSystem(ctx, f.rng, library, DefaultEffects())
	require.Len(t, upgrades.Catalog(), 2, "definitions without an effect are skipped")

	assert.Len(t, upgrades.GetRandomUpgrades(3), 2)

	upgrades.ApplyUpgrade(defs.UpgradeDamage)
	assert.Equal(t, []string{defs.UpgradeMovementSpeed}, offeredIDs(upgrades.GetRandomUpgrades(3)))

	upgrades.ApplyUpgrade(defs.UpgradeMovementSpeed)
	upgrades.ApplyUpgrade(defs.UpgradeMovementSpeed)
	assert.Empty(t, upgrades.GetRandomUpgrades(3))
	assert.Empty(t, upgrades.GetRandomUpgrades(0))
}

func TestApplyUnknownUpgrade(t *testing.T) {
	f := newUpgradeFixture(t)
	assert.False(t, f.upgrades.ApplyUpgrade("does_not_exist"))
	assert.Empty(t, f.upgrades.Acquired())
	_, ok := f.upgrades.Upgrade("does_not_exist")
	assert.False(t, ok)
}

func TestAcquiredIsACopyAndResetClears(t *testing.T) {
	f := newUpgradeFixture(t)
	f.upgrades.ApplyUpgrade(defs.UpgradeDamage)

	acquired := f.upgrades.Acquired()
	acquired[defs.UpgradeDamage] = 99
	assert.Equal(t, 1, f.upgrades.Level(defs.UpgradeDamage))

	f.upgrades.Reset()
	assert.Empty(t, f.upgrades.Acquired())
	assert.True(t, f.upgrades.ApplyUpgrade(defs.UpgradeDamage))
}
