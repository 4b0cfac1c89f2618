// Package replay runs the engine headlessly from YAML scripts.
// A script fixes the seed (or the piece sequence), optional config
// overrides and a list of input frames, so a run can be reproduced exactly.
package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

// DefaultDelta is the frame duration used when a frame sets no dt.
const DefaultDelta = 1.0 / 60

// Script is the YAML structure of a replay file.
type Script struct {
	Name   string    `yaml:"name"`
	Seed   int64     `yaml:"seed"`
	Pieces []string  `yaml:"pieces,omitempty"`
	Config Overrides `yaml:"config,omitempty"`
	Frames []Frame   `yaml:"frames"`
	Expect *Expect   `yaml:"expect,omitempty"`

	// Path is the file the script was loaded from, if any.
	Path string `yaml:"-"`
}

// Overrides replaces selected fields of the default engine config.
type Overrides struct {
	Rows             *int     `yaml:"rows,omitempty"`
	Cols             *int     `yaml:"cols,omitempty"`
	StartLevel       *int     `yaml:"start_level,omitempty"`
	FallInterval     *float64 `yaml:"fall_interval,omitempty"`
	MinFallInterval  *float64 `yaml:"min_fall_interval,omitempty"`
	AutoShiftDelay   *float64 `yaml:"auto_shift_delay,omitempty"`
	SoftDropInterval *float64 `yaml:"soft_drop_interval,omitempty"`
	ClearDelay       *float64 `yaml:"clear_delay,omitempty"`
	TopOut           string   `yaml:"top_out,omitempty"`
	StartPaused      *bool    `yaml:"start_paused,omitempty"`
}

// Frame is one engine update, optionally repeated.
type Frame struct {
	DT      float64  `yaml:"dt,omitempty"`
	Held    []string `yaml:"held,omitempty"`
	Pressed []string `yaml:"pressed,omitempty"`
	Repeat  int      `yaml:"repeat,omitempty"`
}

// Expect lists what a run must end with. Unset fields are not checked.
type Expect struct {
	Score *int   `yaml:"score,omitempty"`
	Lines *int   `yaml:"lines,omitempty"`
	Level *int   `yaml:"level,omitempty"`
	State string `yaml:"state,omitempty"`
	Board string `yaml:"board,omitempty"`
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: yaml unmarshal: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	s.Path = path
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// LoadDir loads every .yaml/.yml script under root, sorted by path.
// Unlike level packs, a broken script is an error: replays are tests.
func LoadDir(root string) ([]*Script, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("replay: cannot scan %s: %w", root, err)
	}
	sort.Strings(paths)

	scripts := make([]*Script, 0, len(paths))
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

func (s *Script) validate() error {
	for i, name := range s.Pieces {
		if _, ok := core.ParseKind(name); !ok {
			return fmt.Errorf("replay: piece %d: unknown kind %q", i, name)
		}
	}
	for i, f := range s.Frames {
		if f.DT < 0 {
			return fmt.Errorf("replay: frame %d: negative dt", i)
		}
		if f.Repeat < 0 {
			return fmt.Errorf("replay: frame %d: negative repeat", i)
		}
		if _, err := keySet(f.Held); err != nil {
			return fmt.Errorf("replay: frame %d: %w", i, err)
		}
		if _, err := keySet(f.Pressed); err != nil {
			return fmt.Errorf("replay: frame %d: %w", i, err)
		}
	}
	if _, err := s.EngineConfig(); err != nil {
		return err
	}
	return nil
}

// keySet converts key names to a bitset.
func keySet(names []string) (core.KeySet, error) {
	var set core.KeySet
	for _, n := range names {
		k, ok := core.ParseKey(n)
		if !ok {
			return 0, fmt.Errorf("unknown key %q", n)
		}
		set = set.With(k)
	}
	return set, nil
}

// EngineConfig returns the engine configuration the script runs with:
// the engine defaults with the overrides applied.
func (s *Script) EngineConfig() (core.Config, error) {
	cfg := core.DefaultConfig()
	cfg.Seed = s.Seed

	o := s.Config
	setInt(&cfg.Rows, o.Rows)
	setInt(&cfg.Cols, o.Cols)
	setInt(&cfg.StartLevel, o.StartLevel)
	setFloat(&cfg.FallInterval, o.FallInterval)
	setFloat(&cfg.MinFallInterval, o.MinFallInterval)
	setFloat(&cfg.AutoShiftDelay, o.AutoShiftDelay)
	setFloat(&cfg.SoftDropInterval, o.SoftDropInterval)
	setFloat(&cfg.ClearDelay, o.ClearDelay)
	if o.TopOut != "" {
		cfg.TopOut = core.TopOutPolicy(o.TopOut)
	}
	if o.StartPaused != nil {
		cfg.StartPaused = *o.StartPaused
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("replay: %w", err)
	}
	return cfg, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// source returns the piece source for the script: the fixed sequence when
// one is given, otherwise nil so the engine seeds its own.
func (s *Script) source() core.PieceSource {
	if len(s.Pieces) == 0 {
		return nil
	}
	kinds := make([]core.Kind, len(s.Pieces))
	for i, name := range s.Pieces {
		kinds[i], _ = core.ParseKind(name)
	}
	return core.NewSequenceSource(kinds...)
}
