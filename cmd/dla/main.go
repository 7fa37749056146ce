package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/lixenwraith/dla/app"
	"github.com/lixenwraith/dla/audio"
	"github.com/lixenwraith/dla/core"
	"github.com/lixenwraith/dla/engine"
	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/parameter/visual"
	"github.com/lixenwraith/dla/preset"
	"github.com/lixenwraith/dla/terminal"
)

// options is the parsed command line
type options struct {
	preset       string
	particles    int
	seedPattern  string
	seed         uint64
	theme        string
	colorMode    string
	neighborhood string
	boundary     string
	spawn        string
	speed        int
	color        string
	headless     bool
	size         string
	export       string
	sound        bool
	debug        bool

	set map[string]bool // flags given explicitly, only these override the preset
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("dla", flag.ContinueOnError)
	fs.StringVar(&o.preset, "preset", "", "Load parameters from a TOML preset `file`")
	fs.IntVar(&o.particles, "particles", 0, "Particle budget (100-10000)")
	fs.StringVar(&o.seedPattern, "seed-pattern", "", "Seed pattern: point, line, cross, circle, ring, block, noise, scatter, multipoint, starburst")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 picks a new one on every reset")
	fs.StringVar(&o.theme, "theme", "", "Theme name")
	fs.StringVar(&o.colorMode, "color-mode", "", "Particle coloring: age, distance, density, direction")
	fs.StringVar(&o.neighborhood, "neighborhood", "", "Contact neighborhood: vonneumann, moore, extended")
	fs.StringVar(&o.boundary, "boundary", "", "Boundary: clamp, wrap, bounce, stick, absorb")
	fs.StringVar(&o.spawn, "spawn", "", "Spawn mode: circle, edges, corners, random, top, bottom, left, right")
	fs.IntVar(&o.speed, "speed", 0, "Walkers in flight (1-100)")
	fs.StringVar(&o.color, "color", "auto", "Terminal color: auto, truecolor, 256")
	fs.BoolVar(&o.headless, "headless", false, "Run without a terminal and print a report")
	fs.StringVar(&o.size, "size", "", "Headless lattice size `WxH`")
	fs.StringVar(&o.export, "export", "", "Export target `file`; headless writes it on exit")
	fs.BoolVar(&o.sound, "sound", false, "Play a chime on completion")
	fs.BoolVar(&o.debug, "debug", false, "Write logs to logs/dla.log")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// parseSize reads a WxH lattice size
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

// buildConfig resolves defaults, the optional preset, then explicit flags
// Returns the unknown preset keys for the caller to report
func buildConfig(o options) (*parameter.Params, parameter.Visual, []string, error) {
	p := parameter.Default()
	v := parameter.DefaultVisual()
	var unknown []string

	if o.preset != "" {
		doc, err := preset.LoadFile(o.preset)
		if err != nil {
			return nil, v, nil, err
		}
		*p = doc.Params
		v = doc.Visual
		unknown = doc.Unknown
	}

	var err error
	if o.set["particles"] {
		p.Particles = o.particles
	}
	if o.set["speed"] {
		p.Speed = o.speed
	}
	if o.set["seed"] {
		p.RandomSeed = o.seed
	}
	if o.set["seed-pattern"] {
		if p.SeedPattern, err = parameter.ParseSeedPattern(o.seedPattern); err != nil {
			return nil, v, nil, err
		}
	}
	if o.set["neighborhood"] {
		if p.Neighborhood, err = parameter.ParseNeighborhood(o.neighborhood); err != nil {
			return nil, v, nil, err
		}
	}
	if o.set["boundary"] {
		if p.Boundary, err = parameter.ParseBoundary(o.boundary); err != nil {
			return nil, v, nil, err
		}
	}
	if o.set["spawn"] {
		if p.SpawnMode, err = parameter.ParseSpawnMode(o.spawn); err != nil {
			return nil, v, nil, err
		}
	}
	if o.set["color-mode"] {
		if v.ColorMode, err = parameter.ParseColorMode(o.colorMode); err != nil {
			return nil, v, nil, err
		}
	}
	if o.set["theme"] {
		id, ok := visual.ParseTheme(o.theme)
		if !ok {
			return nil, v, nil, fmt.Errorf("unknown theme %q", o.theme)
		}
		v.Theme = id
	}

	p.Clamp()
	v.Clamp()
	return p, v, unknown, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if logFile := setupLogging(o.debug); logFile != nil {
		defer logFile.Close()
	}

	p, v, unknown, err := buildConfig(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dla: %v\n", err)
		os.Exit(2)
	}
	for _, k := range unknown {
		fmt.Fprintf(os.Stderr, "dla: warning: unknown preset key %q ignored\n", k)
		log.Printf("dla: unknown preset key %q", k)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if o.headless {
		if err := runHeadless(ctx, o, p, v); err != nil {
			fmt.Fprintf(os.Stderr, "dla: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runInteractive(ctx, o, p, v); err != nil {
		fmt.Fprintf(os.Stderr, "dla: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless(ctx context.Context, o options, p *parameter.Params, v parameter.Visual) error {
	w, h := parameter.HeadlessWidth, parameter.HeadlessHeight
	if o.size != "" {
		var err error
		if w, h, err = parseSize(o.size); err != nil {
			return err
		}
	}

	e, r := app.RunHeadless(ctx, p, w, h, 0, log.Default())
	if err := r.Fprint(os.Stdout); err != nil {
		return err
	}
	if o.export != "" {
		if err := exportState(o.export, e, v); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved %s\n", o.export)
	}
	return nil
}

func exportState(path string, e *engine.Engine, v parameter.Visual) error {
	return preset.SaveFile(path, preset.FromState(e.ExportState(), v))
}

func runInteractive(ctx context.Context, o options, p *parameter.Params, v parameter.Visual) error {
	mode, err := terminal.ParseColorMode(o.color)
	if err != nil {
		return err
	}
	screen, err := terminal.New(mode)
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
		screen.Fini()
		core.SetCrashTerminal(nil)
	}()

	cfg := app.Config{
		Params:     p,
		Visual:     v,
		ExportPath: o.export,
		Logger:     log.Default(),
	}
	if o.sound {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("dla: audio unavailable: %v (continuing without audio)", err)
		} else {
			defer player.Cleanup()
			cfg.Sound = player
		}
	}

	log.Printf("dla: interactive start color=%s", screen.ColorMode())
	return app.New(screen, cfg).Run(ctx)
}
