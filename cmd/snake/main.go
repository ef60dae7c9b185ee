package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/status"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, opts, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 2
	}

	logger, logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "snake: stdin is not a terminal")
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: failed to initialize terminal: %v\n", err)
		return 1
	}

	renderer := render.NewTerminalRenderer(screen, render.NewPalette(cfg.Theme))

	// Terminal restore, shared by the normal path and the crash handler
	restore := func() {
		renderer.ShowCursor()
		renderer.Clear()
		renderer.Flush()
		screen.Fini()
	}
	core.SetCrashCleanup(restore)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	stats := status.NewRegistry()
	gameOpts := []engine.Option{
		engine.WithRenderer(renderer),
		engine.WithLogger(logger),
		engine.WithStats(stats),
		engine.WithRandom(engine.NewRandom(cfg.Seed)),
	}

	if cfg.Sound {
		cues := audio.NewCuePlayer()
		if err := cues.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn().Err(err).Msg("audio initialization failed")
		} else {
			defer cues.Close()
			gameOpts = append(gameOpts, engine.WithSounds(cues))
		}
	}

	game, err := engine.NewGame(cfg, gameOpts...)
	if err != nil {
		restore()
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}
	game.Draw()

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	listener := input.NewListener(screen, game.Heading(), logger)
	core.Go(func() { listener.Run(cancel) })

	res := game.Run(ctx)

	// Single cleanup for wall collision, quit, and fatal input
	restore()

	fmt.Println(res)
	for _, s := range stats.Snapshot() {
		fmt.Printf("  %-18s %d\n", s.Key, s.Value)
	}

	if res.Reason == engine.StopFatal {
		return 1
	}
	return 0
}
