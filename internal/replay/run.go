package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

// ErrMismatch is wrapped by Check when a run does not meet its expectations.
var ErrMismatch = errors.New("replay: expectation mismatch")

// Result is the outcome of running a script.
type Result struct {
	Snapshot core.Snapshot
	Events   []core.Event
	Frames   int // engine updates performed, repeats included
}

// Run plays the script on a fresh engine.
func (s *Script) Run() (Result, error) {
	cfg, err := s.EngineConfig()
	if err != nil {
		return Result{}, err
	}
	engine, err := core.New(cfg, s.source())
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	var res Result
	res.Events = engine.Events()
	for i, f := range s.Frames {
		held, err := keySet(f.Held)
		if err != nil {
			return Result{}, fmt.Errorf("replay: frame %d: %w", i, err)
		}
		pressed, err := keySet(f.Pressed)
		if err != nil {
			return Result{}, fmt.Errorf("replay: frame %d: %w", i, err)
		}

		dt := f.DT
		if dt == 0 {
			dt = DefaultDelta
		}
		n := max(f.Repeat, 1)

		// Pressed is an edge: only the first repetition sees it.
		in := core.Input{Held: held, Pressed: pressed}
		for j := 0; j < n; j++ {
			engine.Update(dt, in)
			res.Events = append(res.Events, engine.Events()...)
			res.Frames++
			in.Pressed = 0
		}
	}
	res.Snapshot = engine.Snapshot()
	return res, nil
}

// Check compares a result with the script's expectations.
func (s *Script) Check(res Result) error {
	if s.Expect == nil {
		return nil
	}
	e := s.Expect
	snap := res.Snapshot

	var problems []string
	if e.Score != nil && *e.Score != snap.Score {
		problems = append(problems, fmt.Sprintf("score %d, want %d", snap.Score, *e.Score))
	}
	if e.Lines != nil && *e.Lines != snap.Lines {
		problems = append(problems, fmt.Sprintf("lines %d, want %d", snap.Lines, *e.Lines))
	}
	if e.Level != nil && *e.Level != snap.Level {
		problems = append(problems, fmt.Sprintf("level %d, want %d", snap.Level, *e.Level))
	}
	if e.State != "" && e.State != snap.State.String() {
		problems = append(problems, fmt.Sprintf("state %s, want %s", snap.State, e.State))
	}
	if e.Board != "" {
		want := strings.TrimSpace(e.Board)
		if got := FormatStack(snap); got != want {
			problems = append(problems, fmt.Sprintf("board\n%s\nwant\n%s", got, want))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(problems, "; "))
	}
	return nil
}

// FormatStack renders the locked cells of a snapshot, one line per row,
// '.' for empty cells and the piece letter otherwise.
func FormatStack(snap core.Snapshot) string {
	return format(snap, false)
}

// FormatBoard renders the snapshot like FormatStack and overlays the active
// piece in lower case.
func FormatBoard(snap core.Snapshot) string {
	return format(snap, true)
}

func format(snap core.Snapshot, withActive bool) string {
	grid := make([][]byte, snap.Rows)
	for r := range grid {
		grid[r] = make([]byte, snap.Cols)
		for c := range grid[r] {
			cell := snap.Cell(c, r)
			if cell == core.Empty {
				grid[r][c] = '.'
				continue
			}
			grid[r][c] = cell.Kind().String()[0]
		}
	}
	if withActive && snap.HasActive {
		letter := strings.ToLower(snap.Active.Kind.String())[0]
		for _, p := range snap.Active.Cells() {
			if p.Row >= 0 && p.Row < snap.Rows && p.Col >= 0 && p.Col < snap.Cols {
				grid[p.Row][p.Col] = letter
			}
		}
	}

	lines := make([]string, len(grid))
	for r, row := range grid {
		lines[r] = string(row)
	}
	return strings.Join(lines, "\n")
}

// Summary is a one-line description of a result.
func Summary(name string, res Result) string {
	snap := res.Snapshot
	return fmt.Sprintf("%s: %d frames, %.2fs, state %s, score %d, lines %d, level %d",
		name, res.Frames, snap.Elapsed, snap.State, snap.Score, snap.Lines, snap.Level)
}
