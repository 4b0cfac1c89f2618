package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: blockfall).

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Space            - Hard drop
  Up, X            - Rotate clockwise
  Z                - Rotate counter-clockwise
  C                - Hold
  P/Esc            - Pause
  R                - Restart (paused or after game over)
  B                - Back (paused or after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty presets pick the starting level:
  easy   - level 0
  normal - level 3
  hard   - level 6
  insane - level 9

Examples:
  blockfall play
  blockfall play blockfall_endless
  blockfall play --difficulty hard
  blockfall play --level 7 --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "blockfall"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
		os.Exit(1)
	}
	if err := validateFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
