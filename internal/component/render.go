// internal/component/render.go
package component

import "image/color"

// Renderable - как рисовать запись пула: круг цвета Color.
// Alpha в [0, 1] умножается на прозрачность цвета.
type Renderable struct {
	Color  color.RGBA
	Radius float32
	Alpha  float32
}
