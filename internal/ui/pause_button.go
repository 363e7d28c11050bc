// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton - круглая кнопка паузы в углу HUD.
// После клика иконка коротко "пульсирует".
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA

	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		fillImg:    fillImg,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		path := vector.Path{}
		path.MoveTo(b.X-rectSize, b.Y-rectSize*1.2)
		path.LineTo(b.X-rectSize, b.Y+rectSize*1.2)
		path.LineTo(b.X+rectSize, b.Y)
		path.Close()
		b.fillPath(screen, &path, b.PlayColor)
		return
	}

	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, 1, color.White, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, b.X+spacing/2, b.Y-height/2, width, height, 1, color.White, true)
}

func (b *PauseButton) fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	b.fillVs, b.fillIs = path.AppendVerticesAndIndicesForFilling(b.fillVs[:0], b.fillIs[:0])
	for i := range b.fillVs {
		b.fillVs[i].ColorR = float32(clr.R) / 255
		b.fillVs[i].ColorG = float32(clr.G) / 255
		b.fillVs[i].ColorB = float32(clr.B) / 255
		b.fillVs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(b.fillVs, b.fillIs, b.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// IsClicked проверяет попадание в круг кнопки.
func (b *PauseButton) IsClicked(mx, my int) bool {
	dx, dy := float32(mx)-b.X, float32(my)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
