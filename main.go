package main

import (
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/game"
)

// configEnv names the environment variable holding an optional config override.
const configEnv = "ORRERY_CONFIG"

func main() {
	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(os.Getenv(configEnv)); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if cfg.Screen.MSAA {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	if !rl.IsWindowReady() {
		slog.Error("failed to open window")
		os.Exit(1)
	}

	// Escape is handled as a key binding, not by raylib.
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(cfg, logger)
	if err != nil {
		rl.CloseWindow()
		slog.Error("failed to start viewer", "error", err)
		os.Exit(1)
	}

	for !g.Done() {
		g.Update()
		g.Draw()
	}

	slog.Info("viewer closed", "ticks", g.Tick())
	g.Unload()
	rl.CloseWindow()
}
