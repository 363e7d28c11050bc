// internal/input/input.go
package input

import (
	"go-survivors/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard читает WASD/стрелки и курсор мыши.
// Курсор переводится в мировые координаты через камеру.
type Keyboard struct {
	camera *entity.Camera
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Attach задаёт камеру сцены. Без камеры прицел в экранных координатах.
func (k *Keyboard) Attach(camera *entity.Camera) {
	k.camera = camera
}

// Direction возвращает нажатое направление, каждая ось в {-1, 0, 1}.
func (k *Keyboard) Direction() (float64, float64) {
	x, y := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y++
	}
	return x, y
}

func (k *Keyboard) AimPosition() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	if k.camera == nil {
		return float64(mx), float64(my)
	}
	return k.camera.ScreenToWorld(float64(mx), float64(my))
}
