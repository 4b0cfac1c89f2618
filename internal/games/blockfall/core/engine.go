package core

import (
	"fmt"
	"math/rand"
)

// State is the engine's coarse lifecycle state.
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateLineClearPause
	StateGameOver
)

// String returns the snake_case name of the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateLineClearPause:
		return "line_clear_pause"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// PieceSource supplies the kinds that enter the next-piece queue.
type PieceSource interface {
	Next() Kind
}

type randomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a source that picks every kind independently and
// uniformly.
func NewRandomSource(seed int64) PieceSource {
	return &randomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randomSource) Next() Kind {
	return Kind(1 + s.rng.Intn(NumKinds))
}

type sequenceSource struct {
	kinds []Kind
	pos   int
}

// NewSequenceSource returns a source that cycles through kinds in order.
// Used for scripted replays and tests.
func NewSequenceSource(kinds ...Kind) PieceSource {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	return &sequenceSource{kinds: kinds}
}

func (s *sequenceSource) Next() Kind {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}

// Engine is the falling-block gameplay state machine.
// It is single-threaded: call Update once per frame and read Snapshot between
// calls.
type Engine struct {
	cfg   Config
	src   PieceSource
	board *Board

	state  State // running, line-clear pause or game over
	paused bool

	active   Piece
	locked   bool // active piece merged, spawn waits for the line-clear pause
	ghostRow int
	hold     Kind
	canHold  bool
	next     Kind

	score         int
	lines         int
	level         int
	fallInterval  float64
	levelProgress int

	leftTimer  float64
	rightTimer float64
	fallTimer  float64
	firstLeft  bool
	firstRight bool

	clearTimer float64
	clearing   []int // rows emptied and waiting to collapse
	cleared    []int // rows cleared during the last update
	elapsed    float64

	events []Event
}

// New creates an engine and spawns the first piece.
// A nil src uses a random source seeded from cfg.Seed.
func New(cfg Config, src PieceSource) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewRandomSource(cfg.Seed)
	}
	e := &Engine{
		cfg:   cfg,
		src:   src,
		board: NewBoard(cfg.Rows, cfg.Cols),
	}
	e.restart()
	e.paused = cfg.StartPaused
	return e, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(cfg Config, src PieceSource) *Engine {
	e, err := New(cfg, src)
	if err != nil {
		panic(fmt.Sprintf("core: %v", err))
	}
	return e
}

// Reset starts a new game with the engine's configuration.
// Pending events are discarded.
func (e *Engine) Reset() {
	e.events = nil
	e.restart()
	e.paused = e.cfg.StartPaused
}

// restart re-initialises all game state and spawns the first piece.
func (e *Engine) restart() {
	e.board.Reset()
	e.state = StateRunning
	e.hold = KindNone
	e.score = 0
	e.lines = 0
	e.level = e.cfg.StartLevel
	e.fallInterval = FallIntervalForLevel(e.cfg.FallInterval, e.cfg.StartLevel, e.cfg.MinFallInterval)
	e.levelProgress = 0
	e.leftTimer, e.rightTimer, e.fallTimer = 0, 0, 0
	e.firstLeft, e.firstRight = false, false
	e.locked = false
	e.clearTimer = 0
	e.clearing = nil
	e.cleared = nil
	e.elapsed = 0
	e.next = e.src.Next()
	e.spawn()
}

// Update advances the game by delta seconds using the given input snapshot.
func (e *Engine) Update(delta float64, in Input) {
	e.cleared = nil

	if in.JustPressed(KeyPause) && e.state != StateGameOver {
		e.paused = !e.paused
	}
	if e.paused || e.state == StateGameOver {
		return
	}

	if e.state == StateLineClearPause {
		e.clearTimer -= delta
		if e.clearTimer <= 0 {
			e.collapse(e.clearing)
			e.clearing = nil
			e.state = StateRunning
			if e.locked {
				e.spawn()
			}
		}
		return
	}

	e.elapsed += delta
	e.locked = false

	e.swapHold(in)
	e.ghostRow = e.dropRow()
	e.hardDrop(in)
	if e.state != StateRunning {
		return
	}
	if !e.locked {
		e.moveHorizontal(delta, in)
		e.moveVertical(delta, in)
	}
	if e.state != StateRunning {
		return
	}
	if !e.locked {
		e.rotate(in)
	}
	e.resolveLines()

	if e.locked && e.state == StateRunning {
		e.spawn()
	}
	if e.state == StateRunning {
		e.ghostRow = e.dropRow()
	}
}

// SetPaused pauses or resumes the game.
func (e *Engine) SetPaused(paused bool) {
	if e.state == StateGameOver {
		return
	}
	e.paused = paused
}

// spawnCol is the default column for a freshly spawned kind.
func (e *Engine) spawnCol(k Kind) int {
	return e.cfg.Cols/2 - ShapeOf(k, 0).Size()/2
}

// spawnPiece places kind at rotation 0 on the default spawn cursor.
func (e *Engine) spawnPiece(k Kind) Piece {
	return Piece{Kind: k, Rotation: 0, Col: e.spawnCol(k), Row: 0}
}

// spawn promotes the queued piece to active and draws a new next piece.
func (e *Engine) spawn() {
	e.active = e.spawnPiece(e.next)
	e.next = e.src.Next()
	e.fallTimer = 0
	e.canHold = true
	e.emit(Event{Kind: EventSpawn, Piece: e.active.Kind})

	if e.overlaps(e.active) {
		e.topOut()
		return
	}
	e.ghostRow = e.dropRow()
}

// topOut applies the configured policy when a spawn lands in the stack.
func (e *Engine) topOut() {
	e.emit(Event{
		Kind:  EventTopOut,
		Score: e.score,
		Lines: e.lines,
		Level: e.level,
	})
	if e.cfg.TopOut == TopOutGameOver {
		e.state = StateGameOver
		return
	}
	e.restart()
}

// swapHold exchanges the active piece with the hold slot.
// The swap is rejected without side effects if the incoming piece would
// overlap the stack at the spawn position.
func (e *Engine) swapHold(in Input) {
	if !in.JustPressed(KeyHold) || !e.canHold {
		return
	}

	incoming := e.hold
	fromQueue := incoming == KindNone
	if fromQueue {
		incoming = e.next
	}

	candidate := e.spawnPiece(incoming)
	if e.overlaps(candidate) {
		return
	}

	e.hold = e.active.Kind
	e.active = candidate
	if fromQueue {
		e.next = e.src.Next()
	}
	e.canHold = false
	e.fallTimer = 0
	e.emit(Event{Kind: EventHold, Piece: e.active.Kind})
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the current lifecycle state. A paused engine reports
// StatePaused regardless of what it was doing.
func (e *Engine) State() State {
	if e.paused && e.state != StateGameOver {
		return StatePaused
	}
	return e.state
}

// Paused reports whether the user paused the game.
func (e *Engine) Paused() bool {
	return e.paused
}

// Active returns the active piece and whether one is in play.
func (e *Engine) Active() (Piece, bool) {
	return e.active, e.state == StateRunning
}

// GhostRow returns the row the active piece would rest at after a hard drop.
func (e *Engine) GhostRow() int {
	return e.ghostRow
}

// Hold returns the held kind, or KindNone.
func (e *Engine) Hold() Kind {
	return e.hold
}

// CanHold reports whether a hold swap is allowed for the current piece.
func (e *Engine) CanHold() bool {
	return e.canHold
}

// Next returns the queued kind.
func (e *Engine) Next() Kind {
	return e.next
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int {
	return e.lines
}

// Level returns the current level.
func (e *Engine) Level() int {
	return e.level
}

// FallInterval returns the current gravity interval in seconds.
func (e *Engine) FallInterval() float64 {
	return e.fallInterval
}

// Elapsed returns the play time in seconds, excluding pauses.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}
