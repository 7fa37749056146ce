package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dla/engine"
	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/preset"
	"github.com/lixenwraith/dla/terminal"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// fakeSound counts chimes
type fakeSound struct {
	chimes  int
	enabled bool
}

func (f *fakeSound) PlayChime() bool {
	f.chimes++
	return f.enabled
}

func (f *fakeSound) ToggleMute() bool {
	f.enabled = !f.enabled
	return f.enabled
}

func (f *fakeSound) IsEnabled() bool { return f.enabled }

func newTestApp(t *testing.T, cfg Config) (*App, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := terminal.NewWithScreen(sim, terminal.ColorModeTrueColor)
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(120, 40)
	t.Cleanup(s.Fini)

	if cfg.Params == nil {
		cfg.Params = parameter.Default()
		cfg.Params.RandomSeed = 7
	}
	if cfg.Visual == (parameter.Visual{}) {
		cfg.Visual = parameter.DefaultVisual()
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMockClock(testStart, 0)
	}
	return New(s, cfg), sim
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// row reads one screen line back as text
func row(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	return span(sim, y, 0, w)
}

// span reads columns [x0, x1) of one screen line
func span(sim tcell.SimulationScreen, y, x0, x1 int) string {
	var b strings.Builder
	for x := x0; x < x1; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestNewSizesEngineToCanvas(t *testing.T) {
	a, _ := newTestApp(t, Config{})

	cols := 120 - parameter.SidePanelWidth
	rows := 40 - parameter.TopMargin - parameter.BottomMargin
	wantW, wantH := engine.SimulationSize(cols, rows, parameter.MatrixBraille)
	w, h := a.Engine().Size()
	if w != wantW || h != wantH {
		t.Errorf("Expected lattice %dx%d, got %dx%d", wantW, wantH, w, h)
	}
	if a.Engine().Generation() != 1 {
		t.Errorf("Expected generation 1, got %d", a.Engine().Generation())
	}
}

func TestStepRespectsTickBudget(t *testing.T) {
	clock := NewMockClock(testStart, 0)
	a, _ := newTestApp(t, Config{Clock: clock})

	if n := a.Step(); n != parameter.MaxTicksPerFrame {
		t.Errorf("Expected %d ticks with a frozen clock, got %d", parameter.MaxTicksPerFrame, n)
	}

	// each clock read costs a quarter of the budget
	clock.SetStep(parameter.TickBudget / 4)
	if n := a.Step(); n != 4 {
		t.Errorf("Expected 4 ticks within budget, got %d", n)
	}
	if got := a.Engine().Stats().Ticks; got != parameter.MaxTicksPerFrame+4 {
		t.Errorf("Expected %d engine ticks, got %d", parameter.MaxTicksPerFrame+4, got)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	a, _ := newTestApp(t, Config{})

	if !a.HandleEvent(key(' ')) {
		t.Fatal("Expected space not to quit")
	}
	if !a.Paused() {
		t.Fatal("Expected paused after space")
	}
	if n := a.Step(); n != 0 {
		t.Errorf("Expected no ticks while paused, got %d", n)
	}

	a.HandleEvent(key(' '))
	if a.Paused() {
		t.Error("Expected resumed after second space")
	}
	if n := a.Step(); n == 0 {
		t.Error("Expected ticks after resume")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"q", key('q'), false},
		{"Escape", special(tcell.KeyEscape), false},
		{"CtrlC", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{"Unbound rune", key('z'), true},
		{"Unbound key", special(tcell.KeyF5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t, Config{})
			if got := a.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPatternKeysReset(t *testing.T) {
	tests := []struct {
		r    rune
		want parameter.SeedPattern
	}{
		{'1', parameter.SeedPoint},
		{'5', parameter.SeedRing},
		{'9', parameter.SeedMultipoint},
		{'0', parameter.SeedStarburst},
	}
	a, _ := newTestApp(t, Config{})
	gen := a.Engine().Generation()
	for _, tt := range tests {
		a.HandleEvent(key(tt.r))
		gen++
		if a.Params().SeedPattern != tt.want {
			t.Errorf("Key %q: expected pattern %s, got %s", tt.r, tt.want, a.Params().SeedPattern)
		}
		if a.Engine().Generation() != gen {
			t.Errorf("Key %q: expected generation %d, got %d", tt.r, gen, a.Engine().Generation())
		}
	}
}

func TestFieldAdjustment(t *testing.T) {
	a, _ := newTestApp(t, Config{})

	a.HandleEvent(special(tcell.KeyRight))
	if a.Params().Particles != 5100 {
		t.Errorf("Expected particles 5100, got %d", a.Params().Particles)
	}
	a.HandleEvent(key('a'))
	a.HandleEvent(key('a'))
	if a.Params().Particles != 4900 {
		t.Errorf("Expected particles 4900, got %d", a.Params().Particles)
	}

	a.HandleEvent(special(tcell.KeyUp))
	if a.focus != len(fields)-1 {
		t.Errorf("Expected focus to wrap to %d, got %d", len(fields)-1, a.focus)
	}
	a.HandleEvent(special(tcell.KeyDown))
	a.HandleEvent(special(tcell.KeyDown))
	if fields[a.focus].label != "Speed" {
		t.Errorf("Expected Speed focused, got %s", fields[a.focus].label)
	}

	speed := a.Params().Speed
	a.HandleEvent(key('+'))
	if a.Params().Speed != speed+1 {
		t.Errorf("Expected speed %d, got %d", speed+1, a.Params().Speed)
	}
}

func TestFieldsClampAtLimits(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	idx := fieldIndex("Stickiness")
	for i := 0; i < 50; i++ {
		a.applyField(idx, -1)
	}
	if a.Params().Stickiness != parameter.StickinessMin {
		t.Errorf("Expected stickiness floor %v, got %v", parameter.StickinessMin, a.Params().Stickiness)
	}

	// walk step drift stays on the 0.1 grid
	idx = fieldIndex("Walk step")
	for i := 0; i < 7; i++ {
		a.applyField(idx, 1)
	}
	if got := a.Params().WalkStep; got != round2(got) {
		t.Errorf("Expected rounded walk step, got %v", got)
	}
}

func TestEveryFieldAdjusts(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	for i, f := range fields {
		a.applyField(i, 1)
		a.applyField(i, -1)
		if f.value(a) == "" {
			t.Errorf("%s: expected a value, got empty", f.label)
		}
	}
	if fieldIndex("Nope") != -1 {
		t.Error("Expected -1 for an unknown field")
	}
}

func TestDotMatrixRelayout(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	a.HandleEvent(key('m'))
	if a.Visual().Matrix != parameter.MatrixQuadrant {
		t.Fatalf("Expected quadrant matrix, got %s", a.Visual().Matrix)
	}
	area, _, _ := a.layout()
	wantW, wantH := engine.SimulationSize(area.W, area.H, parameter.MatrixQuadrant)
	if w, h := a.Engine().Size(); w != wantW || h != wantH {
		t.Errorf("Expected lattice %dx%d, got %dx%d", wantW, wantH, w, h)
	}
}

func TestResizeEvent(t *testing.T) {
	a, sim := newTestApp(t, Config{})
	gen := a.Engine().Generation()

	sim.SetSize(160, 50)
	a.HandleEvent(tcell.NewEventResize(160, 50))

	cols := 160 - parameter.SidePanelWidth
	rows := 50 - parameter.TopMargin - parameter.BottomMargin
	wantW, wantH := engine.SimulationSize(cols, rows, parameter.MatrixBraille)
	if w, h := a.Engine().Size(); w != wantW || h != wantH {
		t.Errorf("Expected lattice %dx%d, got %dx%d", wantW, wantH, w, h)
	}
	if a.Engine().Generation() != gen+1 {
		t.Errorf("Expected a reset on resize, got generation %d", a.Engine().Generation())
	}
}

func TestPanelHiddenWhenNarrow(t *testing.T) {
	a, sim := newTestApp(t, Config{})
	sim.SetSize(80, 30)
	a.HandleEvent(tcell.NewEventResize(80, 30))

	if _, _, hasPanel := a.layout(); hasPanel {
		t.Error("Expected no panel below the minimum width")
	}
	wantW, wantH := engine.SimulationSize(80, 30-parameter.TopMargin-parameter.BottomMargin, parameter.MatrixBraille)
	if w, h := a.Engine().Size(); w != wantW || h != wantH {
		t.Errorf("Expected lattice %dx%d, got %dx%d", wantW, wantH, w, h)
	}

	sim.SetSize(120, 40)
	a.HandleEvent(tcell.NewEventResize(120, 40))
	a.HandleEvent(key('v'))
	if _, _, hasPanel := a.layout(); hasPanel {
		t.Error("Expected panel toggled off")
	}
}

func TestChimeOncePerGeneration(t *testing.T) {
	p := parameter.Default()
	p.Particles = parameter.ParticlesMin
	p.SeedPattern = parameter.SeedRing // ring seeds alone exceed the budget
	p.RandomSeed = 3
	sound := &fakeSound{enabled: true}
	a, _ := newTestApp(t, Config{Params: p, Sound: sound})

	if !a.Engine().IsComplete() {
		t.Fatal("Expected structure complete after seeding")
	}
	a.Step()
	a.Step()
	if sound.chimes != 1 {
		t.Errorf("Expected 1 chime, got %d", sound.chimes)
	}

	a.HandleEvent(key('r'))
	a.Step()
	if sound.chimes != 2 {
		t.Errorf("Expected a second chime after reset, got %d", sound.chimes)
	}
}

func TestSoundToggle(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	a.HandleEvent(key('u'))
	if a.Status() != "Sound unavailable" {
		t.Errorf("Expected unavailable status, got %q", a.Status())
	}

	sound := &fakeSound{enabled: true}
	a, _ = newTestApp(t, Config{Sound: sound})
	a.HandleEvent(key('u'))
	if sound.enabled || a.Status() != "Sound off" {
		t.Errorf("Expected sound off, got enabled=%v status=%q", sound.enabled, a.Status())
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	clock := NewMockClock(testStart, 0)
	p := parameter.Default()
	p.RandomSeed = 99
	p.Boundary = parameter.BoundaryBounce
	a, _ := newTestApp(t, Config{Params: p, Clock: clock, ExportPath: path})
	a.Step()

	a.HandleEvent(key('e'))
	if !strings.HasPrefix(a.Status(), "Saved") {
		t.Fatalf("Expected saved status, got %q", a.Status())
	}

	doc, err := preset.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if doc.Params != *a.Params() {
		t.Errorf("Expected params %+v, got %+v", *a.Params(), doc.Params)
	}
	if doc.Structure == nil || doc.Structure.Ticks != a.Engine().Stats().Ticks {
		t.Errorf("Expected structure with %d ticks, got %+v", a.Engine().Stats().Ticks, doc.Structure)
	}

	clock.Advance(parameter.StatusMessageTimeout)
	if a.Status() != "" {
		t.Errorf("Expected status to expire, got %q", a.Status())
	}
}

func TestExportTimestampedName(t *testing.T) {
	dir := t.TempDir()
	a, _ := newTestApp(t, Config{ExportDir: dir})
	a.HandleEvent(key('x'))

	want := filepath.Join(dir, "dla-20250101-000000.toml")
	if _, err := preset.LoadFile(want); err != nil {
		t.Errorf("Expected export at %s: %v", want, err)
	}
}

func TestExportFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	a, _ := newTestApp(t, Config{ExportPath: filepath.Join(blocker, "x.toml")})
	a.export()
	if !strings.HasPrefix(a.Status(), "Export failed") {
		t.Errorf("Expected failure status, got %q", a.Status())
	}
}

func TestDraw(t *testing.T) {
	a, sim := newTestApp(t, Config{})
	a.Step()
	a.HandleEvent(key(' '))
	a.Draw()

	if title := row(sim, 0); !strings.Contains(title, "DLA") {
		t.Errorf("Expected title rule, got %q", title)
	}
	if bar := row(sim, 40-parameter.BottomMargin); !strings.Contains(bar, "PAUSED") {
		t.Errorf("Expected paused marker, got %q", bar)
	}
	if hints := row(sim, 39); !strings.Contains(hints, "quit") {
		t.Errorf("Expected key hints, got %q", hints)
	}

	var panel strings.Builder
	for y := 0; y < 40; y++ {
		panel.WriteString(span(sim, y, 0, parameter.SidePanelWidth))
	}
	for _, want := range []string{"Parameters", "Particles", "Keys"} {
		if !strings.Contains(panel.String(), want) {
			t.Errorf("Expected panel to contain %q", want)
		}
	}
}

func TestDrawScrollsToFocus(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	for i := 0; i < len(fields)-1; i++ {
		a.HandleEvent(special(tcell.KeyDown))
	}
	a.Draw()
	if a.scroll == 0 {
		t.Error("Expected the field list to scroll to the last field")
	}
	if a.focus < a.scroll {
		t.Errorf("Expected focus %d visible from scroll %d", a.focus, a.scroll)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	a, sim := newTestApp(t, Config{})
	if err := sim.PostEvent(key('q')); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Run(ctx); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
	if ctx.Err() != nil {
		t.Error("Expected quit before the timeout")
	}
}
