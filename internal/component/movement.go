// component/movement.go
package component

import "math"

// Position - компонент позиции (центр сущности в мировых координатах)
type Position struct {
	X, Y float64
}

// Velocity - компонент скорости, пикселей в секунду
type Velocity struct {
	X, Y float64
}

// IsZero сообщает, стоит ли сущность на месте.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Speed - модуль скорости.
func (v Velocity) Speed() float64 {
	return math.Hypot(v.X, v.Y)
}

// Integrate сдвигает позицию на скорость за deltaTime.
func (p *Position) Integrate(v Velocity, deltaTime float64) {
	p.X += v.X * deltaTime
	p.Y += v.Y * deltaTime
}
