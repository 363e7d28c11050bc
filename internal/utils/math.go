// internal/utils/math.go
package utils

import "math"

// NormalizeVector возвращает единичный вектор того же направления.
// Нулевой вектор остаётся нулевым.
func NormalizeVector(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// DistanceSq - квадрат расстояния, без корня.
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// RandomEdgePosition выбирает случайную точку на одной из четырёх сторон
// прямоугольника width x height, отступив padding внутрь.
func RandomEdgePosition(rng *PRNGService, width, height, padding float64) (float64, float64) {
	along := func(size float64) float64 {
		span := size - 2*padding
		if span <= 0 {
			return size / 2
		}
		return padding + rng.Float64()*span
	}
	switch rng.Intn(4) {
	case 0: // верх
		return along(width), padding
	case 1: // право
		return width - padding, along(height)
	case 2: // низ
		return along(width), height - padding
	default: // лево
		return padding, along(height)
	}
}

// RectsOverlap проверяет пересечение двух прямоугольников, заданных центром и половинами сторон.
func RectsOverlap(ax, ay, ahw, ahh, bx, by, bhw, bhh float64) bool {
	return math.Abs(ax-bx) < ahw+bhw && math.Abs(ay-by) < ahh+bhh
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
