package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/dla/engine"
	"github.com/lixenwraith/dla/parameter"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// Report is the end-of-run summary printed by headless mode
type Report struct {
	Params  parameter.Params
	Summary engine.Summary
	Elapsed time.Duration
	Samples []float64 // growth radius history, oldest first
}

// New assembles a report from the engine's export state and a radius history
func New(st engine.State, elapsed time.Duration, samples []float64) Report {
	return Report{Params: st.Params, Summary: st.Structure, Elapsed: elapsed, Samples: samples}
}

// Render formats the report as a stat table followed by the growth chart
func (r Report) Render() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("DLA RUN SUMMARY") + "\n")

	sum := r.Summary
	status := warnStyle.Render("INCOMPLETE")
	if sum.Complete {
		status = doneStyle.Render("COMPLETE")
	}

	rows := [][2]string{
		{"Status", status},
		{"Lattice", fmt.Sprintf("%dx%d", sum.Width, sum.Height)},
		{"Seed pattern", r.Params.SeedPattern.String()},
		{"Random seed", fmt.Sprintf("%d", sum.RandomSeed)},
		{"Neighborhood", r.Params.Neighborhood.String()},
		{"Boundary", r.Params.Boundary.String()},
		{"Spawn", r.Params.SpawnMode.String()},
		{"Attached", fmt.Sprintf("%d / %d (%d seeds)", sum.Attached, r.Params.Particles, sum.SeedCount)},
		{"Growth radius", fmt.Sprintf("%.1f", sum.GrowthRadius)},
		{"Ticks", fmt.Sprintf("%d", sum.Ticks)},
		{"Stuck", fmt.Sprintf("%d", sum.Stuck)},
		{"Escaped", fmt.Sprintf("%d", sum.Escaped)},
		{"Timed out", fmt.Sprintf("%d", sum.TimedOut)},
		{"Absorbed", fmt.Sprintf("%d", sum.Absorbed)},
		{"Rejected", fmt.Sprintf("%d", sum.Rejected)},
		{"Elapsed", r.Elapsed.Round(time.Millisecond).String()},
	}
	if sum.Ticks > 0 && r.Elapsed > 0 {
		rows = append(rows, [2]string{"Ticks/s", fmt.Sprintf("%.0f", float64(sum.Ticks)/r.Elapsed.Seconds())})
	}

	var table strings.Builder
	for i, row := range rows {
		if i > 0 {
			table.WriteByte('\n')
		}
		table.WriteString(labelStyle.Render(row[0]) + valueStyle.Render(row[1]))
	}
	s.WriteString(boxStyle.Render(table.String()) + "\n")

	if chart := r.Chart(); chart != "" {
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	return s.String()
}

// Chart plots the growth radius history, empty with fewer than two samples
func (r Report) Chart() string {
	if len(r.Samples) < 2 {
		return ""
	}
	return asciigraph.Plot(r.Samples,
		asciigraph.Height(parameter.ReportGraphHeight),
		asciigraph.Width(parameter.ReportGraphWidth),
		asciigraph.Caption("growth radius"),
	)
}

// Fprint writes the rendered report
func (r Report) Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, r.Render()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
