package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dla/parameter"
)

// keyHint is one line of the panel key legend
type keyHint struct {
	keys string
	desc string
}

var keyHints = []keyHint{
	{"↑↓", "select"},
	{"←→", "adjust"},
	{"spc", "pause"},
	{"r", "reset"},
	{"0-9", "seed pattern"},
	{"+-", "speed"},
	{"t T", "theme"},
	{"c", "color mode"},
	{"e", "export"},
	{"v", "panel"},
	{"u", "sound"},
	{"q", "quit"},
}

// patternKey maps digit keys to seed patterns, 1 is the first and 0 the tenth
func patternKey(r rune) (parameter.SeedPattern, bool) {
	switch {
	case r >= '1' && r <= '9':
		return parameter.SeedPattern(r - '1'), true
	case r == '0':
		return parameter.SeedStarburst, true
	}
	return 0, false
}

// handleKey applies one key press, returns false on quit
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveFocus(-1)
		return true
	case tcell.KeyDown:
		a.moveFocus(1)
		return true
	case tcell.KeyLeft:
		a.applyField(a.focus, -1)
		return true
	case tcell.KeyRight:
		a.applyField(a.focus, 1)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	if p, ok := patternKey(r); ok {
		a.params.SeedPattern = p
		a.reset()
		return true
	}

	switch r {
	case 'q':
		return false
	case ' ':
		a.paused = !a.paused
	case 'r':
		a.reset()
	case 'w', 'k':
		a.moveFocus(-1)
	case 's', 'j':
		a.moveFocus(1)
	case 'a', 'h':
		a.applyField(a.focus, -1)
	case 'd', 'l':
		a.applyField(a.focus, 1)
	case '+', '=':
		a.applyField(fieldIndex("Speed"), 1)
	case '-', '_':
		a.applyField(fieldIndex("Speed"), -1)
	case 't':
		a.applyField(fieldIndex("Theme"), 1)
	case 'T':
		a.applyField(fieldIndex("Theme"), -1)
	case 'c':
		a.applyField(fieldIndex("Color mode"), 1)
	case 'm':
		a.applyField(fieldIndex("Dots"), 1)
	case 'i':
		a.applyField(fieldIndex("Invert"), 1)
	case 'b':
		a.applyField(fieldIndex("Boundary"), 1)
	case 'n':
		a.applyField(fieldIndex("Neighborhood"), 1)
	case 'p':
		a.applyField(fieldIndex("Spawn"), 1)
	case 'e', 'x':
		a.export()
	case 'v':
		a.panelVisible = !a.panelVisible
		a.relayout()
	case 'u':
		a.toggleSound()
	}
	return true
}

// moveFocus steps the selected panel field, wrapping at both ends
func (a *App) moveFocus(delta int) {
	n := len(fields)
	a.focus = ((a.focus+delta)%n + n) % n
}

func (a *App) toggleSound() {
	if a.sound == nil {
		a.setStatus("Sound unavailable")
		return
	}
	if a.sound.ToggleMute() {
		a.setStatus("Sound on")
	} else {
		a.setStatus("Sound off")
	}
}
