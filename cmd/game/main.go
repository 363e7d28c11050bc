// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/gate"
	"go-survivors/internal/state"
	"go-survivors/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	showDebug      bool
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
	if a.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), config.ScreenWidth-140, config.ScreenHeight-20)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".survivors"
	}
	return filepath.Join(dir, "go-survivors")
}

func main() {
	balancePath := flag.String("balance", "", "path to a YAML balance file (defaults are built in)")
	skinName := flag.String("skin", "default", "player skin: default, wizard or mesmer")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	dev := flag.Bool("dev", false, "use the development daily game limit and show TPS/FPS")
	noLimit := flag.Bool("no-limit", false, "disable the daily game limit")
	stateDir := flag.String("state", defaultStateDir(), "directory for the daily game record")
	skipMenu := flag.Bool("play", false, "start a run immediately, skipping the menu")
	flag.Parse()

	balance, err := config.LoadBalance(*balancePath)
	if err != nil {
		log.Fatalf("Failed to load balance: %v", err)
	}
	skin, err := entity.ParseSkin(*skinName)
	if err != nil {
		log.Fatalf("Failed to parse skin: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	session := &state.Session{
		Balance:  &balance,
		Skin:     skin,
		Seed:     *seed,
		Renderer: render.NewSceneRenderer(render.DefaultSceneColors()),
	}
	if !*noLimit {
		limit := balance.Gate.MaxGamesPerDay
		if *dev {
			limit = balance.Gate.DevMaxGamesPerDay
		}
		store := gate.NewFileStore(*stateDir)
		session.Gate = gate.NewManager(store, limit)
		log.Printf("Daily limit %d games, record at %s", limit, store.FilePath())
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, session))
	if *skipMenu {
		if err := state.StartGame(sm, session); err != nil {
			log.Printf("Cannot start a run: %v", err)
		}
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		showDebug:      *dev,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivors")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
