// internal/interfaces/interfaces.go
package interfaces

//go:generate go tool mockgen -destination=./mocks/interfaces_mock.go -package=mocks . InputSource,Launcher

import (
	"go-survivors/internal/component"
	"go-survivors/internal/defs"
)

// InputSource - источник ввода игрока: направление и точка прицела.
type InputSource interface {
	// Direction возвращает нажатое направление, каждая ось в {-1, 0, 1}.
	Direction() (x, y float64)
	// AimPosition возвращает точку прицела в мировых координатах.
	AimPosition() (x, y float64)
}

// Launcher выпускает снаряды из пула. nil, если пул исчерпан.
type Launcher interface {
	FireProjectile(kind defs.ProjectileKind, x, y, dirX, dirY float64) *component.Projectile
}
