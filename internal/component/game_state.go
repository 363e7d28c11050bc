package component

// Phase - фаза сцены
type Phase int

const (
	PhaseSetup    Phase = iota
	PhaseRunning        // симуляция идёт
	PhasePaused         // выбор улучшения или ручная пауза
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}
