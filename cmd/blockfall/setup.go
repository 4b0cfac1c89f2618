package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// debugLogName is the file the --debug log goes to, inside os.TempDir().
const debugLogName = "blockfall-debug.log"

// newLogger returns the logger for interactive commands. The TUI owns the
// terminal, so logs only go to a file and only with --debug.
func newLogger() (*log.Logger, func()) {
	if !flagDebug {
		return log.New(io.Discard), func() {}
	}

	path := filepath.Join(os.TempDir(), debugLogName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open debug log: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// validateFlags checks the global flags that cobra cannot check by type.
func validateFlags() error {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or insane)", flagDifficulty)
		}
	}
	if flagLevel > config.MaxStartLevel {
		return fmt.Errorf("level %d out of range 0-%d", flagLevel, config.MaxStartLevel)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}
	return nil
}

// applyGameFlags passes config, difficulty and level flags to the modes.
func applyGameFlags() {
	blockfall.SetConfigPath(flagConfig)
	blockfall.SetDifficultyPreset(flagDifficulty)
	blockfall.SetStartLevel(flagLevel)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.StartLevel = flagLevel
	if p, ok := config.ParsePreset(flagDifficulty); ok && cfg.StartLevel < 0 {
		cfg.StartLevel = config.StartLevelForPreset(p)
	}
	return cfg
}
