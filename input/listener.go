package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/core"
)

// Source blocks until the next terminal event; nil means the source was closed
type Source interface {
	PollEvent() tcell.Event
}

// Turner applies relative turns to the shared heading
type Turner interface {
	TurnLeft()
	TurnRight()
}

// Listener translates key events into turns or a session shutdown
// It never touches the snake or the apples
type Listener struct {
	src    Source
	turner Turner
	keys   *KeyTable
	log    zerolog.Logger
}

// NewListener creates a listener with the default key table
func NewListener(src Source, turner Turner, log zerolog.Logger) *Listener {
	return &Listener{
		src:    src,
		turner: turner,
		keys:   DefaultKeyTable(),
		log:    log,
	}
}

// SetKeyTable replaces the bindings, must be called before Run
func (l *Listener) SetKeyTable(kt *KeyTable) {
	l.keys = kt
}

// Run blocks reading events until quit, failure, or the source closes
// Quit cancels with core.ErrQuit; an input error cancels with that error so the game loop aborts
func (l *Listener) Run(cancel context.CancelCauseFunc) {
	for {
		ev := l.src.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized
			return

		case *tcell.EventError:
			err := errors.Wrap(ev, "input source")
			l.log.Error().Err(err).Msg("input failure")
			cancel(err)
			return

		case *tcell.EventKey:
			if l.handleKey(ev, cancel) {
				return
			}
		}
	}
}

// handleKey returns true when the session was cancelled
func (l *Listener) handleKey(ev *tcell.EventKey, cancel context.CancelCauseFunc) bool {
	intent := l.keys.Lookup(ev)
	switch intent {
	case IntentTurnLeft:
		l.turner.TurnLeft()
	case IntentTurnRight:
		l.turner.TurnRight()
	case IntentQuit:
		l.log.Info().Msg("quit requested")
		cancel(core.ErrQuit)
		return true
	default:
		return false
	}
	l.log.Debug().Stringer("intent", intent).Msg("turn")
	return false
}
