package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dla/parameter/visual"
)

// Screen wraps a tcell screen with the color mode resolved once at creation
type Screen struct {
	screen   tcell.Screen
	mode     ColorMode
	finiOnce sync.Once
}

// New creates a screen on the controlling terminal
func New(mode ColorMode) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s, mode), nil
}

// NewWithScreen wraps an existing tcell screen, e.g. a simulation screen in tests
func NewWithScreen(s tcell.Screen, mode ColorMode) *Screen {
	if mode == ColorModeAuto {
		mode = DetectColorMode()
	}
	return &Screen{screen: s, mode: mode}
}

// Init enters raw mode and the alternate screen, hides the cursor
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.HideCursor()
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	s.finiOnce.Do(s.screen.Fini)
}

// ColorMode returns the resolved color capability
func (s *Screen) ColorMode() ColorMode { return s.mode }

// Size returns current terminal dimensions
func (s *Screen) Size() (width, height int) { return s.screen.Size() }

// Style builds a tcell style from theme colors in the screen's color mode
func (s *Screen) Style(fg, bg visual.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg, s.mode)).Background(Color(bg, s.mode))
}

// Clear fills the whole screen with the background color
func (s *Screen) Clear(bg visual.RGB) {
	s.screen.Fill(' ', s.Style(bg, bg))
}

// Region returns the full screen as a drawing region
func (s *Screen) Region() Region {
	w, h := s.Size()
	return Region{s: s, W: w, H: h}
}

// Show flushes pending changes to the terminal
func (s *Screen) Show() { s.screen.Show() }

// Sync forces full redraw
func (s *Screen) Sync() { s.screen.Sync() }

// PollEvent blocks until next input event, nil after Fini
func (s *Screen) PollEvent() tcell.Event { return s.screen.PollEvent() }

// PostEvent injects a synthetic event
func (s *Screen) PostEvent(ev tcell.Event) error { return s.screen.PostEvent(ev) }

// content reads back one cell, used by tests
func (s *Screen) content(x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.screen.GetContent(x, y)
	return r, style
}
