// internal/state/session.go
package state

import (
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/gate"
	"go-survivors/pkg/render"
)

// Session - общие для всех состояний настройки запуска.
type Session struct {
	Balance  *config.Balance
	Skin     entity.Skin
	Seed     int64
	Gate     *gate.Manager // nil - без дневного лимита
	Renderer *render.SceneRenderer
}

// gamesRemaining - функция для HUD, nil без лимита.
func (s *Session) gamesRemaining() func() int {
	if s.Gate == nil {
		return nil
	}
	return s.Gate.GamesRemainingToday
}
