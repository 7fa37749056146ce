package app

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dla/core"
	"github.com/lixenwraith/dla/engine"
	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/preset"
	"github.com/lixenwraith/dla/render"
	"github.com/lixenwraith/dla/terminal"
)

// Sound plays the completion chime, satisfied by *audio.Player
type Sound interface {
	PlayChime() bool
	ToggleMute() bool
	IsEnabled() bool
}

// Config wires an App to its collaborators
type Config struct {
	Params     *parameter.Params // nil uses defaults
	Visual     parameter.Visual
	ExportPath string // fixed export target; empty writes a timestamped file under ExportDir
	ExportDir  string
	Clock      Clock
	Sound      Sound
	Logger     *log.Logger
}

// App is the cooperative single-threaded control loop: input, tick budget, render, present
type App struct {
	screen *terminal.Screen
	engine *engine.Engine
	canvas *render.Canvas
	params *parameter.Params
	visual parameter.Visual

	clock  Clock
	sound  Sound
	logger *log.Logger

	exportPath string
	exportDir  string

	panelVisible bool
	paused       bool
	focus        int
	scroll       int

	status      string
	statusUntil time.Time

	chimedGen uint64 // generation whose completion was already announced
}

// New creates the app and an engine sized to the screen
func New(screen *terminal.Screen, cfg Config) *App {
	a := &App{
		screen:       screen,
		params:       cfg.Params,
		visual:       cfg.Visual,
		clock:        cfg.Clock,
		sound:        cfg.Sound,
		logger:       cfg.Logger,
		exportPath:   cfg.ExportPath,
		exportDir:    cfg.ExportDir,
		panelVisible: true,
	}
	if a.params == nil {
		a.params = parameter.Default()
	}
	if a.clock == nil {
		a.clock = SystemClock{}
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard, "", 0)
	}
	a.params.Clamp()
	a.visual.Clamp()

	area, _, _ := a.layout()
	w, h := engine.SimulationSize(area.W, area.H, a.visual.Matrix)
	a.engine = engine.New(a.params, w, h, engine.WithLogger(a.logger))
	a.canvas = render.NewCanvas(area.W, area.H)
	return a
}

// Engine returns the simulation driven by the loop
func (a *App) Engine() *engine.Engine { return a.engine }

// Params returns the live parameter set
func (a *App) Params() *parameter.Params { return a.params }

// Visual returns the current visual settings
func (a *App) Visual() parameter.Visual { return a.visual }

// Paused reports whether ticking is suspended
func (a *App) Paused() bool { return a.paused }

// Status returns the transient status message, empty once expired
func (a *App) Status() string {
	if a.status == "" || !a.clock.Now().Before(a.statusUntil) {
		return ""
	}
	return a.status
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = a.clock.Now().Add(parameter.StatusMessageTimeout)
}

// layout splits the screen into canvas and side panel below the title rule and above the status bar
func (a *App) layout() (canvas, panel terminal.Region, hasPanel bool) {
	root := a.screen.Region()
	body := root.Sub(0, parameter.TopMargin, root.W, root.H-parameter.TopMargin-parameter.BottomMargin)
	if a.panelVisible && root.W >= parameter.SidePanelMinCols {
		panel = body.Sub(0, 0, parameter.SidePanelWidth, body.H)
		canvas = body.Sub(parameter.SidePanelWidth, 0, body.W-parameter.SidePanelWidth, body.H)
		return canvas, panel, true
	}
	return body, terminal.Region{}, false
}

// relayout resizes canvas and lattice to the current screen; the engine regenerates only if its size changed
func (a *App) relayout() {
	area, _, _ := a.layout()
	a.canvas.Resize(area.W, area.H)
	w, h := engine.SimulationSize(area.W, area.H, a.visual.Matrix)
	a.engine.Resize(w, h)
}

// reset regenerates the structure with the current parameters
func (a *App) reset() {
	a.engine.Reset()
	a.setStatus("Reset: " + a.params.SeedPattern.String())
}

// Step runs engine ticks until the per-frame budget or tick cap is spent
// Returns the number of ticks run
func (a *App) Step() int {
	n := 0
	if !a.paused {
		start := a.clock.Now()
		for n < parameter.MaxTicksPerFrame && !a.engine.IsComplete() {
			a.engine.Tick()
			n++
			if a.clock.Now().Sub(start) >= parameter.TickBudget {
				break
			}
		}
	}
	a.checkComplete()
	return n
}

// checkComplete announces a finished structure once per generation
func (a *App) checkComplete() {
	gen := a.engine.Generation()
	if !a.engine.IsComplete() || a.chimedGen == gen {
		return
	}
	a.chimedGen = gen
	st := a.engine.Stats()
	a.logger.Printf("app: structure complete gen=%d particles=%d ticks=%d", gen, a.engine.ParticleCount(), st.Ticks)
	if a.sound != nil {
		a.sound.PlayChime()
	}
}

// export writes the parameters and structure summary as TOML
func (a *App) export() {
	path := a.exportPath
	if path == "" {
		path = filepath.Join(a.exportDir, "dla-"+a.clock.Now().Format("20060102-150405")+".toml")
	}
	doc := preset.FromState(a.engine.ExportState(), a.visual)
	if err := preset.SaveFile(path, doc); err != nil {
		a.logger.Printf("app: export failed: %v", err)
		a.setStatus("Export failed: " + err.Error())
		return
	}
	a.logger.Printf("app: exported %s", path)
	a.setStatus("Saved " + path)
}

// HandleEvent applies one terminal event, returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.relayout()
	}
	return true
}

// Run drives the loop until quit or ctx cancellation
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	a.logger.Printf("app: loop start")
	a.Draw()
	for {
		select {
		case <-ctx.Done():
			a.logger.Printf("app: loop cancelled")
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.logger.Printf("app: quit")
				return nil
			}
			a.Draw()
		case <-ticker.C:
			a.Step()
			a.Draw()
		}
	}
}
