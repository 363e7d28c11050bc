// internal/entity/world.go
package entity

import (
	"math"

	"go-survivors/internal/config"
	"go-survivors/pkg/utils"
)

// World - прямоугольный мир с рамкой.
type World struct {
	Width, Height float64
	Border        float64
}

func NewWorld() *World {
	return &World{Width: config.WorldWidth, Height: config.WorldHeight, Border: config.BorderThickness}
}

// Center - точка появления игрока.
func (w *World) Center() (float64, float64) {
	return w.Width / 2, w.Height / 2
}

// Clamp удерживает прямоугольник с полуразмерами hw, hh внутри мира.
func (w *World) Clamp(x, y, hw, hh float64) (float64, float64) {
	return utils.Clamp(x, hw, w.Width-hw), utils.Clamp(y, hh, w.Height-hh)
}

// Camera - окно просмотра, следует за игроком в границах мира.
type Camera struct {
	X, Y          float64 // левый верхний угол в мире
	Width, Height float64
	world         *World
}

func NewCamera(world *World, width, height float64) *Camera {
	return &Camera{Width: width, Height: height, world: world}
}

// CenterOn ставит камеру центром на точку без сглаживания.
func (c *Camera) CenterOn(x, y float64) {
	c.X, c.Y = c.clamp(x-c.Width/2, y-c.Height/2)
}

// Follow плавно сдвигает камеру к точке: доля CameraLerp за кадр 1/60 с.
func (c *Camera) Follow(x, y, deltaTime float64) {
	t := 1 - math.Pow(1-config.CameraLerp, deltaTime*config.FrameRate)
	tx, ty := c.clamp(x-c.Width/2, y-c.Height/2)
	c.X += (tx - c.X) * t
	c.Y += (ty - c.Y) * t
}

func (c *Camera) clamp(x, y float64) (float64, float64) {
	maxX := math.Max(0, c.world.Width-c.Width)
	maxY := math.Max(0, c.world.Height-c.Height)
	return utils.Clamp(x, 0, maxX), utils.Clamp(y, 0, maxY)
}

// Contains проверяет, попадает ли точка в вид камеры, расширенный на margin.
func (c *Camera) Contains(x, y, margin float64) bool {
	return x >= c.X-margin && x <= c.X+c.Width+margin &&
		y >= c.Y-margin && y <= c.Y+c.Height+margin
}

func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + c.X, sy + c.Y
}

func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}
