package main

import (
	"flag"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/snake/config"
)

// options carries process-level switches that are not part of the game configuration
type options struct {
	debug bool
}

// loadConfig parses args, loads the optional config file and applies explicitly set flags over it
func loadConfig(args []string, stderr io.Writer) (config.Config, options, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts       options
		configPath = fs.String("config", "", "YAML config file")
		width      = fs.Int("width", config.DefaultWidth, "grid width")
		height     = fs.Int("height", config.DefaultHeight, "grid height")
		tick       = fs.Duration("tick", config.DefaultTickInterval, "tick interval")
		length     = fs.Int("length", config.DefaultLength, "initial snake length")
		density    = fs.Float64("density", config.DefaultDensity, "apple density (0..1)")
		seed       = fs.Uint64("seed", 0, "random seed (0 = time based)")
		sound      = fs.Bool("sound", false, "enable audio cues")
	)
	fs.BoolVar(&opts.debug, "debug", false, "write debug log to logs/")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, opts, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, opts, err
	}

	// Only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.SetHeight(*height)
		case "tick":
			cfg.TickInterval = *tick
		case "length":
			cfg.Length = *length
		case "density":
			cfg.Density = *density
		case "seed":
			cfg.Seed = *seed
		case "sound":
			cfg.Sound = *sound
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, opts, errors.Wrap(err, "configuration")
	}
	if cfg.TickInterval < time.Millisecond {
		return cfg, opts, errors.Errorf("tick interval %v is below 1ms", cfg.TickInterval)
	}
	return cfg, opts, nil
}
