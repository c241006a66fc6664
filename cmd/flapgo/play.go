package main

import (
	"errors"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/flapgo/internal/assets"
	"chosenoffset.com/flapgo/internal/config"
	"chosenoffset.com/flapgo/internal/game"
	"chosenoffset.com/flapgo/internal/render"
	ebitenrender "chosenoffset.com/flapgo/internal/render/ebiten"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Space          - Boost upward
  Close window   - Quit

The process exits 0 on quit and 1 when the plane hits an obstacle.`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML, layered over the defaults")
}

// Terminal session results, reported through the engine loop.
var (
	errQuit      = errors.New("quit requested")
	errCollision = errors.New("collision")
)

// session adapts the game to the engine loop: it drains the input batch,
// computes the frame delta, and forwards updates and draws.
type session struct {
	game    *game.Game
	input   render.InputSource
	width   int
	height  int
	last    time.Time
	started bool
}

// Update handles one engine tick.
func (s *session) Update() error {
	for _, ev := range s.input.PollEvents() {
		switch e := ev.(type) {
		case render.EventQuit:
			return errQuit
		case render.EventKeyDown:
			if e.Key == "space" {
				s.game.HandleInput(game.ActionJump)
			}
		}
	}

	now := time.Now()
	if !s.started {
		s.last = now
		s.started = true
	}
	dt := now.Sub(s.last).Seconds()
	s.last = now

	if s.game.Update(dt) == game.OutcomeCollision {
		return errCollision
	}
	return nil
}

// Draw renders one frame.
func (s *session) Draw(screen render.Image) {
	screen.Fill(color.Black)
	s.game.Draw(screen)
}

// Layout reports the fixed logical screen size.
func (s *session) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flapgo",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	renderer := ebitenrender.NewRenderer()
	input := ebitenrender.NewInputSource()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	bundle, err := assets.Load(loader, cfg.AssetDir)
	if err != nil {
		logger.Fatal("failed to load assets, run `flapgo genassets` to generate placeholder art",
			"error", err)
	}

	g := game.New(cfg, bundle, renderer, logger)

	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle(cfg.Screen.Title)

	logger.Info("starting game",
		"screen_width", cfg.Screen.Width,
		"screen_height", cfg.Screen.Height,
		"scroll_speed", cfg.ScrollSpeed,
		"obstacles", len(cfg.Obstacles))

	err = engine.RunGame(&session{
		game:   g,
		input:  input,
		width:  cfg.Screen.Width,
		height: cfg.Screen.Height,
	})
	switch {
	case err == nil || errors.Is(err, errQuit):
		logger.Info("quit", "distance", g.Distance())
	case errors.Is(err, errCollision):
		logger.Info("game over", "distance", g.Distance())
		os.Exit(1)
	default:
		logger.Fatal("engine failed", "error", err)
	}
}
