package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/status"
)

// State is the tick state machine position
type State uint8

const (
	StateRunning State = iota
	StateStopped
)

// StopReason records why the loop ended
type StopReason uint8

const (
	StopNone StopReason = iota
	StopWallCollision
	StopQuit
	StopFatal
)

func (r StopReason) String() string {
	switch r {
	case StopWallCollision:
		return "wall collision"
	case StopQuit:
		return "quit"
	case StopFatal:
		return "fatal error"
	default:
		return "running"
	}
}

// Result summarizes a finished session
type Result struct {
	Reason StopReason
	// Ticks counts completed ticks that did not end the game
	Ticks   int
	Length  int
	Pickups int
	Err     error
}

func (r Result) String() string {
	s := fmt.Sprintf("game over: %s after %d ticks, length %d, %d apples eaten", r.Reason, r.Ticks, r.Length, r.Pickups)
	if r.Err != nil {
		s += ": " + r.Err.Error()
	}
	return s
}

// SoundPlayer receives gameplay cues
type SoundPlayer interface {
	PlayPickup()
	PlayCrash()
}

// Option customizes a Game at construction
type Option func(*Game)

// WithRenderer routes draw calls to r
func WithRenderer(r render.Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithRandom sets the apple placement source
func WithRandom(rng Random) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the structured logger
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithStats publishes session counters into reg
func WithStats(reg *status.Registry) Option {
	return func(g *Game) { g.stats = reg }
}

// WithSounds plays cues on pickups and crashes
func WithSounds(s SoundPlayer) Option {
	return func(g *Game) { g.sounds = s }
}

// Game owns the snake and apple field and advances them on a fixed tick
// Only the heading is shared with other goroutines
type Game struct {
	cfg  config.Config
	grid core.Area

	heading *Heading
	snake   *Snake
	apples  *AppleField

	renderer render.Renderer
	rng      Random
	sounds   SoundPlayer
	log      zerolog.Logger

	state   State
	reason  StopReason
	ticks   int
	pickups int

	// Cached metric pointers
	stats         *status.Registry
	statTicks     *atomic.Int64
	statPickups   *atomic.Int64
	statLength    *atomic.Int64
	statApples    *atomic.Int64
	statSaturated *atomic.Int64
	statRunning   *atomic.Bool
}

// NewGame validates cfg and lays out the initial snake and apples
func NewGame(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		grid:     cfg.Grid(),
		heading:  NewHeading(cfg.Heading),
		renderer: nopRenderer{},
		sounds:   nopSounds{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRandom(cfg.Seed)
	}
	if g.stats == nil {
		g.stats = status.NewRegistry()
	}
	g.statTicks = g.stats.Ints.Get(status.KeyTicks)
	g.statPickups = g.stats.Ints.Get(status.KeyPickups)
	g.statLength = g.stats.Ints.Get(status.KeyLength)
	g.statApples = g.stats.Ints.Get(status.KeyApples)
	g.statSaturated = g.stats.Ints.Get(status.KeySaturated)
	g.statRunning = g.stats.Bools.Get(status.KeyRunning)

	g.snake = NewSnake(cfg.Start, cfg.Length, cfg.Heading)
	g.apples = NewAppleField(g.grid, cfg.Density, g.rng)

	target := TargetCount(cfg.Width, cfg.Height, cfg.Length, cfg.Density)
	if err := g.apples.SpawnInitial(target, g.snake); err != nil {
		if !errors.Is(err, ErrNoFreeCell) {
			return nil, errors.Wrap(err, "spawn apples")
		}
		g.log.Warn().Int("target", target).Int("placed", g.apples.Len()).Msg("board saturated at spawn")
	}
	g.publish()

	g.log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("length", cfg.Length).
		Stringer("heading", cfg.Heading).
		Int("apples", g.apples.Len()).
		Dur("tick", cfg.TickInterval).
		Msg("game created")

	return g, nil
}

// Heading returns the shared direction slot for the input listener
func (g *Game) Heading() *Heading {
	return g.heading
}

// Snake returns the body. Not safe to use while Run is active
func (g *Game) Snake() *Snake {
	return g.snake
}

// Apples returns the apple field. Not safe to use while Run is active
func (g *Game) Apples() *AppleField {
	return g.apples
}

// State returns the current state machine position
func (g *Game) State() State {
	return g.state
}

// Result reports the session outcome so far
func (g *Game) Result() Result {
	return Result{
		Reason:  g.reason,
		Ticks:   g.ticks,
		Length:  g.snake.Len(),
		Pickups: g.pickups,
	}
}

// Draw paints the full board: background, body, apples
func (g *Game) Draw() {
	r := g.renderer
	r.Clear()
	r.HideCursor()
	for y := 0; y < g.grid.Height; y++ {
		r.MoveCursor(0, y)
		for x := 0; x < g.grid.Width; x++ {
			r.Draw(render.SymbolBackground)
		}
	}
	for i := 0; i < g.snake.Len(); i++ {
		g.drawAt(g.snake.At(i), render.SymbolSnake)
	}
	for _, p := range g.apples.Positions() {
		g.drawAt(p, render.SymbolApple)
	}
	r.Flush()
}

// Tick advances the game by one step
// The move is applied before the wall check, so an off-grid head is the head for the tick that ends the game
func (g *Game) Tick() State {
	if g.state == StateStopped {
		return g.state
	}

	dir := g.heading.Load()
	tail, removed := g.snake.Step(dir, false)
	if removed && !g.snake.Occupies(tail) {
		g.drawAt(tail, render.SymbolBackground)
	}
	head := g.snake.Head()
	g.drawAt(head, render.SymbolSnake)
	g.statTicks.Add(1)

	if !g.grid.Contains(head) {
		g.state = StateStopped
		g.reason = StopWallCollision
		g.renderer.Flush()
		g.sounds.PlayCrash()
		g.publish()
		g.log.Info().Stringer("head", head).Int("ticks", g.ticks).Msg("wall collision")
		return g.state
	}

	if g.apples.Remove(head) {
		g.eat(head, tail)
	}

	g.ticks++
	g.publish()
	g.renderer.Flush()
	return g.state
}

// eat grows the body by re-attaching this tick's tail and refills the field
func (g *Game) eat(head, tail core.Point) {
	g.snake.PushBack(tail)
	g.drawAt(tail, render.SymbolSnake)
	g.pickups++
	g.statPickups.Add(1)
	g.sounds.PlayPickup()

	p, added, err := g.apples.Replenish(g.snake)
	switch {
	case err != nil:
		// Saturation skips the refill for this tick
		g.statSaturated.Add(1)
		g.log.Warn().Err(err).Int("length", g.snake.Len()).Msg("replenish skipped")
	case added:
		g.drawAt(p, render.SymbolApple)
	}

	g.log.Debug().
		Stringer("at", head).
		Int("length", g.snake.Len()).
		Int("apples", g.apples.Len()).
		Bool("replenished", added).
		Msg("apple eaten")
}

// Run ticks on the configured interval until the snake hits a wall or ctx is cancelled
// A cancellation cause of core.ErrQuit or context.Canceled reports StopQuit; any other cause is fatal
func (g *Game) Run(ctx context.Context) Result {
	g.statRunning.Store(true)
	defer g.statRunning.Store(false)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return g.cancelled(ctx)
		}

		if g.Tick() == StateStopped {
			return g.Result()
		}

		timer.Reset(g.cfg.TickInterval)
		select {
		case <-ctx.Done():
			return g.cancelled(ctx)
		case <-timer.C:
		}
	}
}

func (g *Game) cancelled(ctx context.Context) Result {
	cause := context.Cause(ctx)
	g.state = StateStopped

	res := g.Result()
	if errors.Is(cause, core.ErrQuit) || errors.Is(cause, context.Canceled) {
		g.reason = StopQuit
		res.Reason = StopQuit
		g.log.Info().Int("ticks", g.ticks).Msg("quit")
		return res
	}

	g.reason = StopFatal
	res.Reason = StopFatal
	res.Err = cause
	g.log.Error().Err(cause).Int("ticks", g.ticks).Msg("session aborted")
	return res
}

// drawAt skips cells with a negative coordinate, they cannot be addressed on the display
func (g *Game) drawAt(p core.Point, s render.Symbol) {
	if !p.Visible() {
		return
	}
	g.renderer.MoveCursor(p.X, p.Y)
	g.renderer.Draw(s)
}

func (g *Game) publish() {
	g.statLength.Store(int64(g.snake.Len()))
	g.statApples.Store(int64(g.apples.Len()))
}

type nopRenderer struct{}

func (nopRenderer) Clear()              {}
func (nopRenderer) MoveCursor(x, y int) {}
func (nopRenderer) HideCursor()         {}
func (nopRenderer) ShowCursor()         {}
func (nopRenderer) Draw(render.Symbol)  {}
func (nopRenderer) Flush()              {}

type nopSounds struct{}

func (nopSounds) PlayPickup() {}
func (nopSounds) PlayCrash()  {}
