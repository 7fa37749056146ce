package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/dla/engine"
	"github.com/lixenwraith/dla/parameter"
)

func TestRecorderStride(t *testing.T) {
	r := NewRecorder(4)
	for i := 1; i <= 3; i++ {
		r.Record(float64(i))
	}
	if r.Len() != 3 || r.Stride() != 1 {
		t.Fatalf("Expected 3 samples at stride 1, got %d at %d", r.Len(), r.Stride())
	}

	r.Record(4) // fills, compacts to [2 4]
	if got := r.Samples(); len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("Expected [2 4] after compaction, got %v", got)
	}
	if r.Stride() != 2 {
		t.Errorf("Expected stride 2, got %d", r.Stride())
	}

	r.Record(5) // skipped
	r.Record(6) // kept
	if got := r.Samples(); len(got) != 3 || got[2] != 6 {
		t.Errorf("Expected [2 4 6], got %v", got)
	}
}

func TestRecorderStaysBounded(t *testing.T) {
	r := NewRecorder(parameter.ReportSamples)
	for i := 0; i < 100000; i++ {
		r.Record(float64(i))
	}
	if r.Len() >= parameter.ReportSamples {
		t.Errorf("Expected fewer than %d samples, got %d", parameter.ReportSamples, r.Len())
	}
	s := r.Samples()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			t.Fatalf("Expected increasing history, got %v then %v at %d", s[i-1], s[i], i)
		}
	}

	r.Reset()
	if r.Len() != 0 || r.Stride() != 1 {
		t.Errorf("Expected empty recorder at stride 1 after reset, got %d at %d", r.Len(), r.Stride())
	}
}

func TestReportRender(t *testing.T) {
	p := parameter.Default()
	p.Particles = 120
	p.Speed = 50
	p.RandomSeed = 21
	p.MaxIterations = 2000
	e := engine.New(p, 64, 64)
	rec := NewRecorder(parameter.ReportSamples)
	for i := 0; i < 2000 && !e.IsComplete(); i++ {
		e.Tick()
		rec.Record(e.GrowthRadius())
	}

	r := New(e.ExportState(), 1500*time.Millisecond, rec.Samples())
	out := r.Render()
	for _, want := range []string{"DLA RUN SUMMARY", "64x64", "point", "moore", "/ 120", "growth radius", "1.5s", "Ticks/s"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected report to contain %q\n%s", want, out)
		}
	}

	var buf bytes.Buffer
	if err := r.Fprint(&buf); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if buf.String() != out {
		t.Error("Expected Fprint to write the rendered report")
	}
}

func TestReportWithoutHistory(t *testing.T) {
	r := Report{Params: *parameter.Default(), Summary: engine.Summary{Width: 10, Height: 10}}
	if r.Chart() != "" {
		t.Error("Expected no chart without samples")
	}
	out := r.Render()
	if !strings.Contains(out, "INCOMPLETE") {
		t.Errorf("Expected incomplete status\n%s", out)
	}
	if strings.Contains(out, "Ticks/s") {
		t.Error("Expected no rate without ticks")
	}
}
