package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dla/parameter/visual"
	"github.com/lixenwraith/dla/render"
)

func newTestScreen(t *testing.T, mode ColorMode, w, h int) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim, mode)
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorModeAuto, false},
		{"auto", ColorModeAuto, false},
		{"TrueColor", ColorModeTrueColor, false},
		{"24bit", ColorModeTrueColor, false},
		{"256", ColorMode256, false},
		{"16", ColorModeAuto, true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q): expected error=%v, got %v", tt.in, tt.wantErr, err)
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, k := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(k, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("Expected truecolor from COLORTERM, got %s", got)
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if got := DetectColorMode(); got != ColorMode256 {
		t.Errorf("Expected 256 fallback, got %s", got)
	}

	t.Setenv("TERM", "xterm-direct")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("Expected truecolor from TERM, got %s", got)
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    visual.RGB
		want uint8
	}{
		{"Black", visual.RGB{R: 0, G: 0, B: 0}, 16},
		{"White", visual.RGB{R: 255, G: 255, B: 255}, 231},
		{"Red", visual.RGB{R: 255, G: 0, B: 0}, 196},
		{"Green", visual.RGB{R: 0, G: 255, B: 0}, 46},
		{"Blue", visual.RGB{R: 0, G: 0, B: 255}, 21},
		{"Mid gray", visual.RGB{R: 128, G: 128, B: 128}, 244},
		{"Orange", visual.RGB{R: 255, G: 135, B: 0}, 208},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.c); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestBlitUsesColorMode(t *testing.T) {
	fg := visual.RGB{R: 255, G: 0, B: 0}
	bg := visual.RGB{R: 0, G: 0, B: 0}

	g := render.NewGrid(3, 2)
	g.Background = bg
	g.Set(1, 1, '⣿', fg)

	for _, mode := range []ColorMode{ColorModeTrueColor, ColorMode256} {
		s := newTestScreen(t, mode, 10, 4)
		s.Region().Sub(2, 1, 8, 3).Blit(g)

		r, style := s.content(3, 2)
		if r != '⣿' {
			t.Errorf("%s: expected braille glyph at (3,2), got %q", mode, r)
		}
		gotFg, gotBg, _ := style.Decompose()
		if gotFg != Color(fg, mode) || gotBg != Color(bg, mode) {
			t.Errorf("%s: expected fg %v bg %v, got %v %v", mode, Color(fg, mode), Color(bg, mode), gotFg, gotBg)
		}
	}

	if Color(fg, ColorMode256) != tcell.PaletteColor(196) {
		t.Error("Expected palette color in 256 mode")
	}
	if Color(fg, ColorModeTrueColor) != tcell.NewRGBColor(255, 0, 0) {
		t.Error("Expected RGB color in truecolor mode")
	}
}

func TestBlitClipsToRegion(t *testing.T) {
	s := newTestScreen(t, ColorModeTrueColor, 6, 3)
	g := render.NewGrid(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			g.Set(x, y, 'x', visual.White)
		}
	}
	s.Region().Sub(0, 0, 4, 2).Blit(g)

	if r, _ := s.content(3, 1); r != 'x' {
		t.Errorf("Expected blit inside region, got %q", r)
	}
	if r, _ := s.content(4, 0); r == 'x' {
		t.Error("Expected blit clipped at region width")
	}
	if r, _ := s.content(0, 2); r == 'x' {
		t.Error("Expected blit clipped at region height")
	}
}

func TestRegionDrawing(t *testing.T) {
	s := newTestScreen(t, ColorModeTrueColor, 12, 5)
	root := s.Region()

	inner := root.Sub(1, 0, 10, 4).Card("Params", visual.White, visual.Black)
	if inner.X != 2 || inner.Y != 1 || inner.W != 8 || inner.H != 2 {
		t.Errorf("Expected inner region (2,1,8,2), got (%d,%d,%d,%d)", inner.X, inner.Y, inner.W, inner.H)
	}
	if r, _ := s.content(1, 0); r != '╭' {
		t.Errorf("Expected top-left corner, got %q", r)
	}
	if r, _ := s.content(10, 3); r != '╯' {
		t.Errorf("Expected bottom-right corner, got %q", r)
	}
	if r, _ := s.content(3, 0); r != 'P' {
		t.Errorf("Expected centered title, got %q", r)
	}

	end := inner.Text(0, 0, "speed 20 and more", visual.White, visual.Black, tcell.AttrNone)
	if end != inner.W {
		t.Errorf("Expected text truncated at %d, got %d", inner.W, end)
	}
	if r, _ := s.content(10, 1); r != '│' {
		t.Errorf("Expected border untouched by truncated text, got %q", r)
	}

	status := root.Sub(0, 4, 12, 1)
	status.Progress(0, 0, 4, 0.5, visual.White, visual.Black)
	if r, _ := s.content(1, 4); r != progressFull {
		t.Errorf("Expected filled progress cell, got %q", r)
	}
	if r, _ := s.content(2, 4); r != progressEmpty {
		t.Errorf("Expected empty progress cell, got %q", r)
	}
	status.TextRight(0, "ok", visual.White, visual.Black, tcell.AttrNone)
	if r, _ := s.content(11, 4); r != 'k' {
		t.Errorf("Expected right-aligned text, got %q", r)
	}
}

func TestSubClipsNegative(t *testing.T) {
	r := Region{X: 5, Y: 5, W: 10, H: 10}
	sub := r.Sub(-3, 8, 6, 6)
	if sub.X != 5 || sub.Y != 13 || sub.W != 3 || sub.H != 2 {
		t.Errorf("Expected (5,13,3,2), got (%d,%d,%d,%d)", sub.X, sub.Y, sub.W, sub.H)
	}
	if empty := r.Inset(6); empty.W != 0 || empty.H != 0 {
		t.Errorf("Expected empty inset, got %dx%d", empty.W, empty.H)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"theme", 10, "theme"},
		{"deepspace", 5, "deep…"},
		{"ab", 1, "a"},
		{"ab", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q,%d): expected %q, got %q", tt.in, tt.n, tt.want, got)
		}
	}
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0, csiRIS} {
		if !bytes.Contains(buf.Bytes(), seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
