// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth     = 1024
	ScreenHeight    = 768
	WorldWidth      = 2048
	WorldHeight     = 1536
	BorderThickness = 50
	MaxDeltaTime    = 0.06

	CameraLerp = 0.1 // доля пути камеры за кадр при 60 FPS
	FrameRate  = 60.0

	HealthBarWidth  = 40.0
	HealthBarHeight = 5.0
	HealthBarOffset = 10.0

	HUDMargin     = 16
	HUDBarWidth   = 220
	HUDBarHeight  = 14
	TextCharWidth = 7
	TextOffsetY   = 4

	UpgradeCardWidth  = 260
	UpgradeCardHeight = 120
	UpgradeCardGap    = 24
	UpgradeOfferCount = 3

	FlashPeriod = 0.1 // период мигания при неуязвимости
)

var (
	BackgroundColor   = color.RGBA{34, 40, 30, 255}
	GridColor         = color.RGBA{44, 52, 40, 255}
	BorderColor       = color.RGBA{90, 70, 40, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	PlayerColor       = color.RGBA{250, 220, 60, 255}
	WizardColor       = color.RGBA{120, 120, 255, 255}
	MesmerColor       = color.RGBA{200, 90, 220, 255}
	ProjectileColor   = color.RGBA{255, 255, 160, 255}
	OrbColor          = color.RGBA{80, 220, 255, 255}
	TrailColor        = color.RGBA{200, 90, 220, 120}
	DamageTintColor   = color.RGBA{255, 0, 0, 255}
	HealthBarBgColor  = color.RGBA{0, 0, 0, 200}
	HealthBarColor    = color.RGBA{60, 220, 60, 255}
	HealthBarLowColor = color.RGBA{220, 60, 60, 255}
	XPBarColor        = color.RGBA{70, 100, 120, 220}
	LightningColor    = color.RGBA{180, 220, 255, 255}
	ExplosionColor    = color.RGBA{255, 240, 140, 160}
	MagicCircleColor  = color.RGBA{150, 110, 255, 140}
	MagicElementColor = color.RGBA{210, 180, 255, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	ButtonColor       = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor  = color.RGBA{100, 160, 210, 240}
	ButtonStrokeColor = color.RGBA{240, 240, 240, 255}
	StrokeWidth       = 2.0
)
