package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/replay"
)

var flagReplayBoard bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml|dir>",
	Short: "Run input scripts headlessly",
	Long: `Run one replay script, or every script in a directory, on a fresh
engine and print the outcome. Scripts with an expect block are checked and
the command fails if any expectation is not met.

Script format:
  name: tetris on an empty board
  seed: 42                 # random piece order, or
  pieces: [I, O, T]        # a fixed repeating sequence
  config:                  # optional engine overrides
    rows: 21
    cols: 10
    clear_delay: 0
  frames:
    - pressed: [left]      # keys that went down this frame
    - held: [soft_drop]    # keys held down
      dt: 0.016            # seconds, default 1/60
      repeat: 30           # run the frame 30 times
  expect:
    lines: 4
    state: running

Examples:
  blockfall replay ./replays/tetris.yaml
  blockfall replay ./replays --board`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayBoard, "board", false, "Print the final board of every script")
}

func runReplay(_ *cobra.Command, args []string) {
	scripts, err := loadScripts(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, s := range scripts {
		res, err := s.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", s.Name, err)
			failed++
			continue
		}

		fmt.Println(replay.Summary(s.Name, res))
		if flagReplayBoard || len(scripts) == 1 {
			fmt.Println(replay.FormatBoard(res.Snapshot))
			fmt.Println()
		}

		if err := s.Check(res); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", s.Name, err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d scripts failed\n", failed, len(scripts))
		os.Exit(1)
	}
}

func loadScripts(path string) ([]*replay.Script, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		scripts, err := replay.LoadDir(path)
		if err == nil && len(scripts) == 0 {
			err = errors.New("no replay scripts found in " + path)
		}
		return scripts, err
	}
	s, err := replay.Load(path)
	if err != nil {
		return nil, err
	}
	return []*replay.Script{s}, nil
}
