package system

import (
	"testing"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProjectiles(t *testing.T, capacity int) *ProjectileSystem {
	t.Helper()
	s := NewProjectileSystem()
	require.True(t, s.CreatePool(ProjectilePoolConfig{
		Kind:     defs.ProjectilePlayer,
		Capacity: capacity,
		Speed:    400,
		Lifespan: 2,
		Scale:    0.3,
		Radius:   24,
		Damage:   1,
	}))
	return s
}

func TestFireProjectileNormalizesDirection(t *testing.T) {
	s := newTestProjectiles(t, 4)

	p := s.FireProjectile(defs.ProjectilePlayer, 10, 20, 3, 4)
	require.NotNil(t, p)
	assert.True(t, p.Active)
	assert.InDelta(t, 240, p.Velocity.X, 1e-9)
	assert.InDelta(t, 320, p.Velocity.Y, 1e-9)
	assert.InDelta(t, 7.2, p.Radius, 1e-9)
	assert.Equal(t, 2.0, p.Remaining)
	assert.Equal(t, 1, s.ActiveCount())
}

func TestFireProjectileReturnsNilWhenExhausted(t *testing.T) {
	s := newTestProjectiles(t, 2)

	require.NotNil(t, s.FireProjectile(defs.ProjectilePlayer, 0, 0, 1, 0))
	require.NotNil(t, s.FireProjectile(defs.ProjectilePlayer, 0, 0, 1, 0))
	assert.Nil(t, s.FireProjectile(defs.ProjectilePlayer, 0, 0, 1, 0))
	assert.Equal(t, 2, s.ActiveCount())
}

func TestFireUnknownKind(t *testing.T) {
	s := newTestProjectiles(t, 2)
	assert.Nil(t, s.FireProjectile("missing", 0, 0, 1, 0))
	assert.Zero(t, s.Capacity("missing"))
}

func TestCreatePoolRejectsDuplicatesAndEmptyPools(t *testing.T) {
	s := newTestProjectiles(t, 2)
	assert.False(t, s.CreatePool(ProjectilePoolConfig{Kind: defs.ProjectilePlayer, Capacity: 5}))
	assert.False(t, s.CreatePool(ProjectilePoolConfig{Kind: "empty", Capacity: 0}))
	assert.Equal(t, 2, s.Capacity(defs.ProjectilePlayer))
}

func TestProjectileMovesAndExpires(t *testing.T) {
	s := newTestProjectiles(t, 2)
	p := s.FireProjectile(defs.ProjectilePlayer, 0, 0, 1, 0)

	s.Update(1.0)
	assert.True(t, p.Active)
	assert.InDelta(t, 400, p.Position.X, 1e-9)

	s.Update(1.0)
	assert.False(t, p.Active)
	assert.Zero(t, s.ActiveCount())
}

func TestDeactivateProjectileFreesSlotOnce(t *testing.T) {
	s := newTestProjectiles(t, 1)
	p := s.FireProjectile(defs.ProjectilePlayer, 0, 0, 1, 0)

	s.DeactivateProjectile(p)
	s.DeactivateProjectile(p)
	s.DeactivateProjectile(nil)
	assert.Zero(t, s.ActiveCount())

	require.NotNil(t, s.FireProjectile(defs.ProjectilePlayer, 0, 0, 0, 1))
	assert.Nil(t, s.FireProjectile(defs.ProjectilePlayer, 0, 0, 0, 1))
}

func TestProjectileClearAll(t *testing.T) {
	s := newTestProjectiles(t, 3)
	for i := 0; i < 3; i++ {
		s.FireProjectile(defs.ProjectilePlayer, 0, 0, 1, 1)
	}
	s.ClearAll()

	assert.Zero(t, s.ActiveCount())
	visited := 0
	s.ForEachActive(func(p *component.Projectile) { visited++ })
	assert.Zero(t, visited)
	require.NotNil(t, s.FireProjectile(defs.ProjectilePlayer, 0, 0, 1, 0))
}
