// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                  - Start menu to pick a mode and starting level
//	blockfall list             - List available modes
//	blockfall play [mode]      - Play a mode directly (default: blockfall)
//	blockfall scores [mode]    - Show high scores
//	blockfall serve            - Start SSH server for remote play
//	blockfall replay <script>  - Run a recorded input script headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible piece order
//	--db <path>           - Set database path (default: ~/.blockfall/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, insane
//	--level <n>           - Starting level 0-9
//	--debug               - Write a debug log to $TMPDIR/blockfall-debug.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - stack falling blocks in your terminal",
	Long: `Blockfall is a falling-block puzzle game for the terminal.

Complete horizontal rows to clear them. Every ten lines the level goes up
and pieces fall faster.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  scores   - View high scores
  serve    - Start SSH server for remote play
  replay   - Run recorded input scripts

Run without a command to open the start menu.

Examples:
  blockfall
  blockfall play --level 5
  blockfall play blockfall_endless
  blockfall serve --ssh :2222
  blockfall replay ./replays`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, insane")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", -1, "Starting level 0-9 (-1 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to $TMPDIR/blockfall-debug.log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}
