package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/parameter/visual"
	"github.com/lixenwraith/dla/terminal"
)

const (
	statusCardRows = 7
	keysCardRows   = 14
	minParamRows   = 5
)

const hintLine = "↑↓ select  ←→ adjust  spc pause  r reset  e export  v panel  q quit"

// Draw renders one full frame and presents it
func (a *App) Draw() {
	theme := a.visual.Theme.Theme()
	a.screen.Clear(theme.Background)
	root := a.screen.Region()

	a.drawTitle(root.Sub(0, 0, root.W, parameter.TopMargin), &theme)

	area, panel, hasPanel := a.layout()
	area.Blit(a.canvas.Render(a.engine.Snapshot(), a.visual))
	if hasPanel {
		a.drawPanel(panel, &theme)
	}

	a.drawStatusBar(root.Sub(0, root.H-parameter.BottomMargin, root.W, parameter.BottomMargin), &theme)
	a.screen.Show()
}

func (a *App) drawTitle(r terminal.Region, theme *visual.Theme) {
	r.HLine(0, theme.Border, theme.Background)
	w, h := a.engine.Size()
	r.Text(2, 0, fmt.Sprintf(" DLA %dx%d ", w, h), theme.Text, theme.Background, tcell.AttrBold)
	r.TextRight(0, " "+theme.Name+" ", theme.DimText, theme.Background, tcell.AttrNone)
}

// stateLabel names the loop state shown in the status card
func (a *App) stateLabel() string {
	switch {
	case a.engine.IsComplete():
		return "COMPLETE"
	case a.paused:
		return "PAUSED"
	default:
		return "RUNNING"
	}
}

func (a *App) drawPanel(r terminal.Region, theme *visual.Theme) {
	bg := theme.Background

	status := r.Sub(0, 0, r.W, statusCardRows).Card("DLA", theme.Border, bg)
	st := a.engine.Stats()
	status.Text(0, 0, fmt.Sprintf("%d / %d", a.engine.ParticleCount(), a.params.Particles), theme.Text, bg, tcell.AttrBold)
	status.TextRight(0, a.stateLabel(), theme.Highlight, bg, tcell.AttrBold)
	status.Progress(0, 1, status.W, a.engine.Progress(), theme.Particle, bg)
	status.Text(0, 2, fmt.Sprintf("radius %.1f", a.engine.GrowthRadius()), theme.DimText, bg, tcell.AttrNone)
	status.TextRight(2, fmt.Sprintf("walkers %d", a.engine.ActiveWalkers()), theme.DimText, bg, tcell.AttrNone)
	status.Text(0, 3, fmt.Sprintf("esc %d  t/o %d  abs %d", st.Escaped, st.TimedOut, st.Absorbed), theme.DimText, bg, tcell.AttrNone)
	status.Text(0, 4, fmt.Sprintf("ticks %d", st.Ticks), theme.DimText, bg, tcell.AttrNone)

	rest := r.H - statusCardRows
	paramRows := rest
	showKeys := rest-keysCardRows >= minParamRows
	if showKeys {
		paramRows = rest - keysCardRows
	}

	params := r.Sub(0, statusCardRows, r.W, paramRows).Card("Parameters", theme.Border, bg)
	a.drawFields(params, theme)

	if showKeys {
		keys := r.Sub(0, statusCardRows+paramRows, r.W, keysCardRows).Card("Keys", theme.Border, bg)
		for i, k := range keyHints {
			x := keys.Text(0, i, k.keys, theme.Highlight, bg, tcell.AttrBold)
			keys.Text(max(x+1, 5), i, k.desc, theme.DimText, bg, tcell.AttrNone)
		}
	}
}

// drawFields lists the adjustable fields, scrolled so the focused one stays visible
func (a *App) drawFields(r terminal.Region, theme *visual.Theme) {
	if r.H <= 0 {
		return
	}
	if a.focus < a.scroll {
		a.scroll = a.focus
	}
	if a.focus >= a.scroll+r.H {
		a.scroll = a.focus - r.H + 1
	}
	a.scroll = min(max(a.scroll, 0), max(len(fields)-r.H, 0))

	bg := theme.Background
	for row := 0; row < r.H; row++ {
		idx := a.scroll + row
		if idx >= len(fields) {
			break
		}
		f := &fields[idx]
		fg, attr := theme.DimText, tcell.AttrNone
		if idx == a.focus {
			fg, attr = theme.Text, tcell.AttrReverse
		}
		r.Text(0, row, f.label, fg, bg, attr)
		r.TextRight(row, f.value(a), fg, bg, attr)
	}
}

func (a *App) drawStatusBar(r terminal.Region, theme *visual.Theme) {
	bg := theme.Background
	p := a.params
	summary := fmt.Sprintf(" %s  %s  %s  %s  %d/%d  r=%.1f",
		p.SeedPattern, p.Neighborhood, p.Boundary, p.SpawnMode,
		a.engine.ParticleCount(), p.Particles, a.engine.GrowthRadius())
	r.Text(0, 0, summary, theme.Text, bg, tcell.AttrNone)

	right := ""
	if a.sound != nil && a.sound.IsEnabled() {
		right += parameter.AudioStr
	}
	switch {
	case a.engine.IsComplete():
		right += parameter.DoneStr
	case a.paused:
		right += parameter.PausedStr
	}
	if right != "" {
		r.TextRight(0, right, theme.Highlight, bg, tcell.AttrBold)
	}

	if msg := a.Status(); msg != "" {
		r.Text(1, 1, msg, theme.Highlight, bg, tcell.AttrNone)
	} else {
		r.Text(1, 1, hintLine, theme.DimText, bg, tcell.AttrNone)
	}
}
