package component

// Health - компонент здоровья. Value всегда в [0, Max].
type Health struct {
	Value float64
	Max   float64
}

// NewHealth - полное здоровье.
func NewHealth(max float64) Health {
	return Health{Value: max, Max: max}
}

// Damage уменьшает здоровье, не опуская ниже нуля. Возвращает true, если здоровье кончилось.
func (h *Health) Damage(amount float64) bool {
	if amount < 0 {
		amount = 0
	}
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
	return h.Value <= 0
}

// Heal восстанавливает здоровье не выше максимума.
func (h *Health) Heal(amount float64) {
	if amount < 0 {
		return
	}
	h.Value += amount
	if h.Value > h.Max {
		h.Value = h.Max
	}
}

// Percent - доля оставшегося здоровья для полосы здоровья.
func (h Health) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}
