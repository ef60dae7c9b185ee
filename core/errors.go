package core

import "github.com/pkg/errors"

// ErrQuit is the cancellation cause sent when the player asks to leave
var ErrQuit = errors.New("quit requested")
